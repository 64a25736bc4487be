package useragent

import (
	"regexp"
	"strings"
)

// Browser represents browser information
type Browser struct {
	Name    string
	Version string
}

// browserPattern defines a pattern for detecting a browser.
// A pattern matches when any keyword is present and no exclude is.
type browserPattern struct {
	name     string
	keywords []string
	excludes []string
	regex    *regexp.Regexp
}

// extractVersion extracts the first capture group, capped at 20 characters.
func extractVersion(ua string, regex *regexp.Regexp) string {
	if regex == nil {
		return ""
	}
	matches := regex.FindStringSubmatch(ua)
	if len(matches) > 1 {
		version := matches[1]
		if len(version) > 20 {
			version = version[:20]
		}
		return version
	}
	return ""
}

func (p browserPattern) matches(ua string) bool {
	found := false
	for _, keyword := range p.keywords {
		if strings.Contains(ua, keyword) {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	for _, exclude := range p.excludes {
		if strings.Contains(ua, exclude) {
			return false
		}
	}
	return true
}

// browserPatterns are checked in order; vendor browsers built on Chromium come
// before Chrome itself, and Safari comes last since everyone claims it.
var browserPatterns = []browserPattern{
	{
		name:     BrowserEdge,
		keywords: []string{"edg/", "edge/", "edga/", "edgios/"},
		regex:    regexp.MustCompile(`(?:edge|edga|edgios|edg)/([\d.]+)`),
	},
	{
		name:     BrowserSamsung,
		keywords: []string{"samsungbrowser"},
		regex:    regexp.MustCompile(`samsungbrowser/([\d.]+)`),
	},
	{
		name:     BrowserUC,
		keywords: []string{"ucbrowser", "ucweb"},
		regex:    regexp.MustCompile(`uc ?browser/([\d.]+)`),
	},
	{
		name:     BrowserQQ,
		keywords: []string{"qqbrowser", "mqqbrowser"},
		regex:    regexp.MustCompile(`m?qqbrowser/([\d.]+)`),
	},
	{
		name:     BrowserHuawei,
		keywords: []string{"huaweibrowser"},
		regex:    regexp.MustCompile(`huaweibrowser/([\d.]+)`),
	},
	{
		name:     BrowserVivo,
		keywords: []string{"vivobrowser"},
		regex:    regexp.MustCompile(`vivobrowser/([\d.]+)`),
	},
	{
		name:     BrowserMIUI,
		keywords: []string{"miuibrowser"},
		regex:    regexp.MustCompile(`miuibrowser/([\d.]+)`),
	},
	{
		name:     BrowserYandex,
		keywords: []string{"yabrowser", "yandexbrowser"},
		regex:    regexp.MustCompile(`(?:yabrowser|yandexbrowser)/([\d.]+)`),
	},
	{
		name:     BrowserVivaldi,
		keywords: []string{"vivaldi"},
		regex:    regexp.MustCompile(`vivaldi/([\d.]+)`),
	},
	{
		name:     BrowserBrave,
		keywords: []string{"brave"},
		regex:    regexp.MustCompile(`brave/([\d.]+)`),
	},
	{
		name:     BrowserSilk,
		keywords: []string{"silk/"},
		regex:    regexp.MustCompile(`silk/([\d.]+)`),
	},
	{
		name:     BrowserOpera,
		keywords: []string{"opr/", "opera", "opios/"},
		regex:    regexp.MustCompile(`(?:opr|opios|version|opera)[/ ]([\d.]+)`),
	},
	{
		name:     BrowserIEMobile,
		keywords: []string{"iemobile"},
		regex:    regexp.MustCompile(`iemobile/([\d.]+)`),
	},
	{
		name:     BrowserChrome,
		keywords: []string{"chrome/", "crios/", "chromium/"},
		regex:    regexp.MustCompile(`(?:chrome|crios|chromium)/([\d.]+)`),
	},
	{
		name:     BrowserFirefox,
		keywords: []string{"firefox/", "fxios/"},
		excludes: []string{"seamonkey"},
		regex:    regexp.MustCompile(`(?:firefox|fxios)/([\d.]+)`),
	},
	{
		name:     BrowserIE,
		keywords: []string{"msie "},
		regex:    regexp.MustCompile(`msie ([\d.]+)`),
	},
	{
		name:     BrowserIE,
		keywords: []string{"trident/"},
		regex:    regexp.MustCompile(`rv:([\d.]+)`),
	},
	{
		name:     BrowserSafari,
		keywords: []string{"safari/"},
		excludes: []string{"android"},
		regex:    regexp.MustCompile(`version/([\d.]+)`),
	},
}

// ParseBrowser parses the browser information from a lower-cased user agent string.
func ParseBrowser(lowerUA string) Browser {
	if lowerUA == "" {
		return Browser{}
	}

	for _, pattern := range browserPatterns {
		if pattern.matches(lowerUA) {
			return Browser{
				Name:    pattern.name,
				Version: extractVersion(lowerUA, pattern.regex),
			}
		}
	}

	return Browser{}
}
