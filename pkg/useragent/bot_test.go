package useragent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/uabench/pkg/useragent"
)

func TestParseBot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		expected useragent.Bot
	}{
		{
			name:     "known crawler",
			ua:       googlebotUA,
			expected: useragent.Bot{Name: "Googlebot", Type: useragent.BotTypeCrawler},
		},
		{
			name:     "social agent",
			ua:       "facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)",
			expected: useragent.Bot{Name: "Facebook External Hit", Type: useragent.BotTypeSocial},
		},
		{
			name:     "feed fetcher",
			ua:       "Feedly/1.0 (+http://www.feedly.com/fetcher.html; like FeedFetcher-Google)",
			expected: useragent.Bot{Name: "Unknown Bot", Type: useragent.BotTypeFeedFetcher},
		},
		{
			name:     "site monitor",
			ua:       "Mozilla/5.0 (compatible; UptimeRobot/2.0; http://www.uptimerobot.com/)",
			expected: useragent.Bot{Name: "Uptimerobot", Type: useragent.BotTypeSiteMonitor},
		},
		{
			name:     "extracted name",
			ua:       "Mozilla/5.0 (compatible; AhrefsBot/7.0; +http://ahrefs.com/robot/)",
			expected: useragent.Bot{Name: "Ahrefsbot", Type: useragent.BotTypeCrawler},
		},
		{
			name:     "command line tool",
			ua:       "curl/8.4.0",
			expected: useragent.Bot{Name: "curl", Type: useragent.BotTypeGeneric},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, useragent.ParseBot(tt.ua))
		})
	}
}
