package useragent

import (
	"regexp"
	"strings"
)

// Device represents the hardware a request came from
type Device struct {
	Type  string
	Brand string
	Model string
}

// keywordSet optimizes keyword lookups using map structure for O(1) access
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

func (k keywordSet) contains(s string) bool {
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// Keyword sets organized by device type for efficient classification.
// Bot detection includes social media crawlers and monitoring tools.
var (
	botKeywords     = newKeywordSet("bot", "spider", "crawler", "archiver", "lighthouse", "slurp", "daum", "sogou", "yeti", "facebookexternalhit", "twitter", "slack", "linkedin", "whatsapp", "telegram", "discord", "camo asset", "monitor", "analyzer", "validator", "fetcher", "scraper", "feedparser", "appengine-google", "java/", "python-requests", "curl/", "wget/")
	tvKeywords      = newKeywordSet("smart-tv", "smarttv", "appletv", "googletv", "android tv", "hbbtv", "webos", "tizen", "bravia", "netcast", "tv device")
	consoleKeywords = newKeywordSet("playstation", "xbox", "nintendo", "wiiu")
	tabletKeywords  = newKeywordSet("tablet", "kindle", "silk", "playbook")
	mobileKeywords  = newKeywordSet("mobile", "iphone", "ipod", "android", "windows phone", "iemobile", "blackberry", "nokia", "opera mini")
	desktopKeywords = newKeywordSet("windows", "macintosh", "mac os x", "linux", "x11", "ubuntu", "fedora", "debian", "chromeos", "cros ")

	// Device brand detection based on common UA patterns
	samsungWords = newKeywordSet("samsung", "sm-", "gt-")
	huaweiWords  = newKeywordSet("huawei", "hwa-", "honor", "h60-", "h30-", "mediapad", "agassi")
	xiaomiWords  = newKeywordSet("xiaomi", "redmi", "miui", "mi ")
	oppoWords    = newKeywordSet("oppo", "cph1", "cph2")
	vivoWords    = newKeywordSet("vivo", "viv-", "v1730", "v1731")
	kindleWords  = newKeywordSet("kindle", "silk", "kftt", "kfjwi")
	surfaceWords = newKeywordSet("touch", "tablet")
)

// androidModel captures the device token of an Android UA:
// "Android 11; SM-G991B)" or "Android 4.4; en-us; Nexus 5 Build/KRT16M)".
var androidModel = regexp.MustCompile(`(?i)android[ /]?[\d.]*;(?: [a-z]{2}[-_][a-z]{2};)? ([^;)]+?)(?: build/[^;)]*)?[;)]`)

// ParseDeviceType classifies devices using fast string matching.
// Order matters: iOS devices first (common), then Android logic, then fallbacks.
func ParseDeviceType(lowerUA string) string {
	if lowerUA == "" {
		return Unknown
	}

	// iOS devices have unambiguous identifiers
	if strings.Contains(lowerUA, "ipad") {
		return DeviceTypeTablet
	}

	if strings.Contains(lowerUA, "iphone") || strings.Contains(lowerUA, "ipod") {
		return DeviceTypeMobile
	}

	if botKeywords.contains(lowerUA) {
		return DeviceTypeBot
	}

	if tvKeywords.contains(lowerUA) {
		return DeviceTypeTV
	}

	if consoleKeywords.contains(lowerUA) {
		return DeviceTypeConsole
	}

	// Android tablets omit 'Mobile' keyword, unlike phones
	if strings.Contains(lowerUA, "android") {
		if !strings.Contains(lowerUA, "mobile") {
			return DeviceTypeTablet
		}
		return DeviceTypeMobile
	}

	if tabletKeywords.contains(lowerUA) {
		return DeviceTypeTablet
	}

	if mobileKeywords.contains(lowerUA) {
		return DeviceTypeMobile
	}

	// Windows tablets require special detection before general desktop matching
	if strings.Contains(lowerUA, "windows") && surfaceWords.contains(lowerUA) {
		return DeviceTypeTablet
	}

	if desktopKeywords.contains(lowerUA) {
		return DeviceTypeDesktop
	}

	return Unknown
}

// ParseDevice detects type, brand and model. The original-case UA is needed
// because models are reported verbatim ("SM-G991B", "Pixel 5").
func ParseDevice(ua string) Device {
	lowerUA := strings.ToLower(ua)
	deviceType := ParseDeviceType(lowerUA)
	brand, model := parseBrandModel(ua, lowerUA, deviceType)
	return Device{Type: deviceType, Brand: brand, Model: model}
}

func parseBrandModel(ua, lowerUA, deviceType string) (string, string) {
	switch deviceType {
	case DeviceTypeMobile, DeviceTypeTablet:
	case DeviceTypeConsole:
		switch {
		case strings.Contains(lowerUA, "playstation"):
			return BrandSony, ModelPlayStation
		case strings.Contains(lowerUA, "xbox"):
			return BrandMicrosoft, ModelXbox
		case strings.Contains(lowerUA, "nintendo"):
			return BrandNintendo, ModelNintendoSwitch
		}
		return Unknown, Unknown
	default:
		return Unknown, Unknown
	}

	// Apple devices have unambiguous identifiers
	switch {
	case strings.Contains(lowerUA, "ipad"):
		return BrandApple, ModelIPad
	case strings.Contains(lowerUA, "iphone"):
		return BrandApple, ModelIPhone
	case strings.Contains(lowerUA, "ipod"):
		return BrandApple, ModelIPod
	}

	// Microsoft Surface detection via Windows + touch indicators
	if deviceType == DeviceTypeTablet && strings.Contains(lowerUA, "windows") && surfaceWords.contains(lowerUA) {
		return BrandMicrosoft, ModelSurface
	}

	model := androidModelToken(ua)

	// Ordered by global market share for faster common-case detection
	switch {
	case kindleWords.contains(lowerUA):
		if model == "" {
			model = ModelKindleFire
		}
		return BrandAmazon, model
	case samsungWords.contains(lowerUA):
		return BrandSamsung, model
	case huaweiWords.contains(lowerUA):
		return BrandHuawei, model
	case xiaomiWords.contains(lowerUA):
		return BrandXiaomi, model
	case oppoWords.contains(lowerUA):
		return BrandOppo, model
	case vivoWords.contains(lowerUA):
		return BrandVivo, model
	}

	return Unknown, model
}

// androidModelToken extracts the model token, ignoring generic placeholders.
func androidModelToken(ua string) string {
	m := androidModel.FindStringSubmatch(ua)
	if len(m) < 2 {
		return Unknown
	}
	model := strings.TrimSpace(m[1])
	switch strings.ToLower(model) {
	case "k", "mobile", "tablet", "wv", "u", "linux":
		return Unknown
	}
	return model
}
