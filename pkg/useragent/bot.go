package useragent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Bot represents an automated client
type Bot struct {
	Name string
	Type string
}

// knownBots maps UA keywords to bot names, checked in order.
var knownBots = []struct {
	keyword string
	name    string
}{
	{"googlebot", "Googlebot"},
	{"adsbot-google", "AdsBot Google"},
	{"bingbot", "Bingbot"},
	{"yandexbot", "YandexBot"},
	{"baiduspider", "Baiduspider"},
	{"duckduckbot", "DuckDuckBot"},
	{"twitterbot", "Twitterbot"},
	{"facebookexternalhit", "Facebook External Hit"},
	{"linkedinbot", "LinkedInBot"},
	{"slackbot", "Slackbot"},
	{"telegrambot", "TelegramBot"},
	{"appengine-google", "Google App Engine"},
	{"python-requests", "Python Requests"},
	{"curl/", "curl"},
	{"wget/", "Wget"},
}

// Common bot name patterns compiled only once for efficiency
var botNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([a-z0-9\-_]+bot)`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+spider)`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+crawler)`),
}

// botTypes classifies bots by keyword, checked in order.
var botTypes = []struct {
	keywords keywordSet
	botType  string
}{
	{newKeywordSet("feed", "rss", "podcast"), BotTypeFeedFetcher},
	{newKeywordSet("monitor", "uptime", "pingdom", "statuscake"), BotTypeSiteMonitor},
	{newKeywordSet("facebookexternalhit", "twitterbot", "linkedinbot", "slackbot", "telegrambot", "whatsapp", "discord"), BotTypeSocial},
	{newKeywordSet("validator", "lighthouse", "analyzer", "pagespeed"), BotTypeValidator},
	{newKeywordSet("bot", "spider", "crawler", "slurp", "archiver"), BotTypeCrawler},
}

// ParseBot returns the bot name and type. It assumes the UA was already
// classified as a bot; unrecognized bots get a generic name and type.
func ParseBot(ua string) Bot {
	lowerUA := strings.ToLower(ua)
	return Bot{Name: botName(ua, lowerUA), Type: botType(lowerUA)}
}

func botName(ua, lowerUA string) string {
	for _, bot := range knownBots {
		if strings.Contains(lowerUA, bot.keyword) {
			return bot.name
		}
	}

	// Slower path: regex matching for dynamic extraction
	for _, pattern := range botNamePatterns {
		if m := pattern.FindStringSubmatch(ua); len(m) > 1 {
			// Casers are stateful and must not be shared across goroutines
			return cases.Title(language.English).String(strings.ToLower(m[1]))
		}
	}

	return "Unknown Bot"
}

func botType(lowerUA string) string {
	for _, t := range botTypes {
		if t.keywords.contains(lowerUA) {
			return t.botType
		}
	}
	return BotTypeGeneric
}
