package useragent

import (
	"regexp"
	"strconv"
	"strings"
)

// Engine represents the rendering engine of a browser
type Engine struct {
	Name    string
	Version string
}

// Chrome switched from WebKit to Blink with version 28.
const firstBlinkChromeMajor = 28

var (
	edgeHTMLVersion = regexp.MustCompile(`edge/([\d.]+)`)
	tridentVersion  = regexp.MustCompile(`trident/([\d.]+)`)
	prestoVersion   = regexp.MustCompile(`presto/([\d.]+)`)
	chromeVersion   = regexp.MustCompile(`(?:chrome|crios|chromium)/([\d.]+)`)
	webkitVersion   = regexp.MustCompile(`applewebkit/([\d.]+)`)
	geckoVersion    = regexp.MustCompile(`rv:([\d.]+)\) gecko/`)
)

// ParseEngine detects the rendering engine from a lower-cased user agent string.
// Order matters: Chromium UAs also claim AppleWebKit and "like Gecko".
func ParseEngine(lowerUA string) Engine {
	switch {
	case lowerUA == "":
		return Engine{}
	case strings.Contains(lowerUA, "edge/"):
		return Engine{Name: EngineEdgeHTML, Version: extractVersion(lowerUA, edgeHTMLVersion)}
	case strings.Contains(lowerUA, "trident/"):
		return Engine{Name: EngineTrident, Version: extractVersion(lowerUA, tridentVersion)}
	case strings.Contains(lowerUA, "presto/"):
		return Engine{Name: EnginePresto, Version: extractVersion(lowerUA, prestoVersion)}
	case strings.Contains(lowerUA, "chrome/") || strings.Contains(lowerUA, "chromium/"):
		v := extractVersion(lowerUA, chromeVersion)
		if major(v) >= firstBlinkChromeMajor {
			return Engine{Name: EngineBlink, Version: v}
		}
		return Engine{Name: EngineWebKit, Version: extractVersion(lowerUA, webkitVersion)}
	case strings.Contains(lowerUA, "applewebkit/"):
		return Engine{Name: EngineWebKit, Version: extractVersion(lowerUA, webkitVersion)}
	case strings.Contains(lowerUA, "gecko/"):
		return Engine{Name: EngineGecko, Version: extractVersion(lowerUA, geckoVersion)}
	}
	return Engine{}
}

// major returns the leading integer of a version, or -1.
func major(v string) int {
	if i := strings.IndexByte(v, '.'); i >= 0 {
		v = v[:i]
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return -1
	}
	return n
}
