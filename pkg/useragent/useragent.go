package useragent

import "strings"

// UserAgent contains the parsed information from a user agent string
type UserAgent struct {
	userAgent string
	browser   Browser
	engine    Engine
	os        OS
	device    Device
	bot       Bot
}

// String returns the user agent as a string
func (ua UserAgent) String() string { return ua.userAgent }

// UserAgent returns the full user agent string
func (ua UserAgent) UserAgent() string { return ua.userAgent }

func (ua UserAgent) Browser() Browser { return ua.browser }
func (ua UserAgent) Engine() Engine   { return ua.engine }
func (ua UserAgent) OS() OS           { return ua.os }
func (ua UserAgent) Device() Device   { return ua.device }

// Bot returns bot details; zero for non-bots.
func (ua UserAgent) Bot() Bot { return ua.bot }

// DeviceType returns the device type (mobile, desktop, tablet, bot, ...)
func (ua UserAgent) DeviceType() string { return ua.device.Type }

// IsBot returns true if the user agent is a bot
func (ua UserAgent) IsBot() bool { return ua.device.Type == DeviceTypeBot }

// IsMobile returns true for phones and tablets
func (ua UserAgent) IsMobile() bool {
	return ua.device.Type == DeviceTypeMobile || ua.device.Type == DeviceTypeTablet
}

// IsDesktop returns true if the user agent is a desktop device
func (ua UserAgent) IsDesktop() bool { return ua.device.Type == DeviceTypeDesktop }

// IsTablet returns true if the user agent is a tablet device
func (ua UserAgent) IsTablet() bool { return ua.device.Type == DeviceTypeTablet }

// IsTouch returns true for touch-first devices
func (ua UserAgent) IsTouch() bool {
	return ua.IsMobile() || strings.Contains(strings.ToLower(ua.userAgent), "touch")
}

// IsUnknown returns true if the device type could not be determined
func (ua UserAgent) IsUnknown() bool { return ua.device.Type == Unknown }

// Parse parses a user agent string. Even when an error is returned, the
// UserAgent carries whatever could be detected.
func Parse(ua string) (UserAgent, error) {
	if strings.TrimSpace(ua) == "" {
		return UserAgent{userAgent: ua}, ErrEmptyUserAgent
	}

	// Lower-cased once for all keyword matching
	lowerUA := strings.ToLower(ua)

	result := UserAgent{
		userAgent: ua,
		device:    ParseDevice(ua),
	}

	if result.IsBot() {
		result.bot = ParseBot(ua)
	}

	result.os = ParseOS(lowerUA)
	result.browser = ParseBrowser(lowerUA)
	result.engine = ParseEngine(lowerUA)

	if result.IsUnknown() {
		// Nothing recognizable at all indicates a malformed UA string
		if result.os.Name == Unknown && result.browser.Name == Unknown {
			return result, ErrMalformedUserAgent
		}
		return result, ErrUnknownDevice
	}

	return result, nil
}
