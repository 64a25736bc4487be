package useragent_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/uabench/pkg/useragent"
)

func TestParseDeviceType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		expected string
	}{
		{name: "desktop", ua: chromeDesktopUA, expected: useragent.DeviceTypeDesktop},
		{name: "iphone", ua: safariMobileUA, expected: useragent.DeviceTypeMobile},
		{name: "android tablet", ua: androidTabletUA, expected: useragent.DeviceTypeTablet},
		{name: "android phone", ua: samsungBrowserUA, expected: useragent.DeviceTypeMobile},
		{name: "bot", ua: googlebotUA, expected: useragent.DeviceTypeBot},
		{name: "curl", ua: "curl/8.4.0", expected: useragent.DeviceTypeBot},
		{
			name:     "smart tv",
			ua:       "Mozilla/5.0 (SMART-TV; Linux; Tizen 6.0) AppleWebKit/537.36 (KHTML, like Gecko) SamsungBrowser/4.0 Chrome/76.0.3809.146 TV Safari/537.36",
			expected: useragent.DeviceTypeTV,
		},
		{
			name:     "console",
			ua:       "Mozilla/5.0 (PlayStation; PlayStation 5/2.26) AppleWebKit/605.1.15 (KHTML, like Gecko)",
			expected: useragent.DeviceTypeConsole,
		},
		{
			name:     "windows touch",
			ua:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64; Touch) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
			expected: useragent.DeviceTypeTablet,
		},
		{name: "empty", ua: "", expected: useragent.Unknown},
		{name: "unknown", ua: "SomeClient/1.0", expected: useragent.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, useragent.ParseDeviceType(strings.ToLower(tt.ua)))
		})
	}
}

func TestParseDevice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		expected useragent.Device
	}{
		{
			name:     "iphone",
			ua:       safariMobileUA,
			expected: useragent.Device{Type: useragent.DeviceTypeMobile, Brand: useragent.BrandApple, Model: useragent.ModelIPhone},
		},
		{
			name:     "ipad",
			ua:       "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1",
			expected: useragent.Device{Type: useragent.DeviceTypeTablet, Brand: useragent.BrandApple, Model: useragent.ModelIPad},
		},
		{
			name:     "samsung phone",
			ua:       samsungBrowserUA,
			expected: useragent.Device{Type: useragent.DeviceTypeMobile, Brand: useragent.BrandSamsung, Model: "SM-G991B"},
		},
		{
			name:     "model with locale and build",
			ua:       "Mozilla/5.0 (Linux; U; Android 4.4.2; en-us; Nexus 5 Build/KOT49H) AppleWebKit/534.30 (KHTML, like Gecko) Version/4.0 Mobile Safari/534.30",
			expected: useragent.Device{Type: useragent.DeviceTypeMobile, Model: "Nexus 5"},
		},
		{
			name:     "kindle",
			ua:       "Mozilla/5.0 (Linux; U; Android 4.0.3; en-us; KFTT Build/IML74K) AppleWebKit/535.19 (KHTML, like Gecko) Silk/3.4 Mobile Safari/535.19 Silk-Accelerated=true",
			expected: useragent.Device{Type: useragent.DeviceTypeMobile, Brand: useragent.BrandAmazon, Model: "KFTT"},
		},
		{
			name:     "reduced android UA has no model",
			ua:       "Mozilla/5.0 (Linux; Android 10; K) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36",
			expected: useragent.Device{Type: useragent.DeviceTypeMobile},
		},
		{
			name:     "xbox",
			ua:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64; Xbox; Xbox One) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/70.0.3538.102 Safari/537.36 Edge/18.19041",
			expected: useragent.Device{Type: useragent.DeviceTypeConsole, Brand: useragent.BrandMicrosoft, Model: useragent.ModelXbox},
		},
		{
			name:     "surface",
			ua:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64; Touch) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
			expected: useragent.Device{Type: useragent.DeviceTypeTablet, Brand: useragent.BrandMicrosoft, Model: useragent.ModelSurface},
		},
		{
			name:     "desktop has no brand",
			ua:       chromeDesktopUA,
			expected: useragent.Device{Type: useragent.DeviceTypeDesktop},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, useragent.ParseDevice(tt.ua))
		})
	}
}
