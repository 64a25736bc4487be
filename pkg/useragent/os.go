package useragent

import (
	"regexp"
	"strings"
)

// OS represents operating system information
type OS struct {
	Name    string
	Version string
}

// OS detection keyword sets optimized for common traffic patterns
var (
	windowsPhoneKeywords = newKeywordSet("windows phone")
	windowsKeywords      = newKeywordSet("windows")
	iOSKeywords          = newKeywordSet("iphone", "ipad", "ipod")
	macOSKeywords        = newKeywordSet("macintosh", "mac os x")
	harmonyOSKeywords    = newKeywordSet("harmonyos")
	androidKeywords      = newKeywordSet("android")
	fireOSKeywords       = newKeywordSet("kindle", "silk")
	chromeOSKeywords     = newKeywordSet("cros ", "chromeos", "chrome os")
	linuxKeywords        = newKeywordSet("linux", "ubuntu", "debian", "fedora", "mint", "x11")
)

// Windows NT kernel versions mapped to marketing versions.
var windowsNTVersions = map[string]string{
	"10.0": "10",
	"6.3":  "8.1",
	"6.2":  "8",
	"6.1":  "7",
	"6.0":  "Vista",
	"5.2":  "XP",
	"5.1":  "XP",
	"5.0":  "2000",
}

var (
	windowsNTVersion    = regexp.MustCompile(`windows nt ([\d.]+)`)
	windowsPhoneVersion = regexp.MustCompile(`windows phone(?: os)? ([\d.]+)`)
	macOSVersion        = regexp.MustCompile(`mac os x (\d+(?:[._]\d+)*)`)
	iOSVersion          = regexp.MustCompile(`(?:iphone|cpu) os (\d+(?:_\d+)*)`)
	androidVersion      = regexp.MustCompile(`android[ /]?(\d+(?:\.\d+)*)`)
	harmonyOSVersion    = regexp.MustCompile(`harmonyos[ /]?(\d+(?:\.\d+)*)`)
	chromeOSVersion     = regexp.MustCompile(`cros \S+ (\d+(?:\.\d+)*)`)
)

// ParseOS identifies operating systems using keyword matching.
// Order reflects typical web traffic patterns: Windows first, then mobile OSes.
func ParseOS(lowerUA string) OS {
	if lowerUA == "" {
		return OS{}
	}

	// Windows dominates desktop traffic, check it first
	if windowsKeywords.contains(lowerUA) {
		if windowsPhoneKeywords.contains(lowerUA) {
			return OS{Name: OSWindowsPhone, Version: extractVersion(lowerUA, windowsPhoneVersion)}
		}
		return OS{Name: OSWindows, Version: windowsNTVersions[extractVersion(lowerUA, windowsNTVersion)]}
	}

	if iOSKeywords.contains(lowerUA) {
		return OS{Name: OSiOS, Version: dotted(extractVersion(lowerUA, iOSVersion))}
	}

	if macOSKeywords.contains(lowerUA) {
		return OS{Name: OSMacOS, Version: dotted(extractVersion(lowerUA, macOSVersion))}
	}

	// HarmonyOS devices also announce Android for compatibility
	if harmonyOSKeywords.contains(lowerUA) {
		return OS{Name: OSHarmonyOS, Version: extractVersion(lowerUA, harmonyOSVersion)}
	}

	// Fire OS is Android underneath; Kindle/Silk markers win
	if fireOSKeywords.contains(lowerUA) {
		return OS{Name: OSFireOS}
	}

	if androidKeywords.contains(lowerUA) {
		return OS{Name: OSAndroid, Version: extractVersion(lowerUA, androidVersion)}
	}

	if chromeOSKeywords.contains(lowerUA) {
		return OS{Name: OSChromeOS, Version: extractVersion(lowerUA, chromeOSVersion)}
	}

	if linuxKeywords.contains(lowerUA) {
		return OS{Name: OSLinux}
	}

	return OS{}
}

// dotted converts underscore-separated versions ("10_15_7") to dotted form.
func dotted(v string) string {
	return strings.ReplaceAll(v, "_", ".")
}
