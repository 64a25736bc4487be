// Package useragent is the in-house User-Agent parser taking part in the
// benchmark next to third-party libraries.
//
// It identifies:
//   - Browser name and version – Chrome, Safari, Firefox, Edge, …
//   - Rendering engine and version – Blink, WebKit, Gecko, Trident, …
//   - Operating system and version – Windows, Mac OS X, iOS, Android, …
//   - Device type, brand and model – desktop, mobile, tablet, tv, console, bot
//   - Bot name and type for crawlers, feed fetchers and monitors
//
// Parsing is performed with plain-string look-ups and pre-compiled regular
// expressions. Names are reported the way most parsers spell them ("Mac OS X",
// "Internet Explorer"), so the harmonization step of the benchmark sees the
// same kind of variation it sees from third-party libraries.
//
// # Architecture
//
// The entry point is Parse, which orchestrates dedicated parsers living in
// their own files: device.go, os.go, browser.go, engine.go and bot.go. Common
// string constants reside in constants.go, errors in errors.go.
//
//	┌────────────┐  UA string ┌───────────────┐
//	│   Parse    │──────────▶│  device.go    │──┐
//	└────────────┘            └───────────────┘  │
//	    │         ┌───────────────┐              │
//	    ├────────▶│ os.go         │──────────────┤
//	    │         └───────────────┘              │
//	    │         ┌───────────────┐              ├──► UserAgent
//	    ├────────▶│ browser.go    │──────────────┤
//	    │         │ engine.go     │              │
//	    │         └───────────────┘              │
//	    │         ┌───────────────┐              │
//	    └────────▶│ bot.go        │──────────────┘
//	              └───────────────┘
//
// # Usage
//
//	ua, err := useragent.Parse(raw)
//	if err != nil {
//	    // ErrEmptyUserAgent, ErrUnknownDevice, ErrMalformedUserAgent
//	}
//	ua.Browser().Name // "Chrome"
//	ua.OS().Version   // "10"
//
// Unknown values are reported as empty strings.
//
// # Error Handling
//
// Parse may return the following sentinel errors, all usable with errors.Is:
// ErrEmptyUserAgent, ErrMalformedUserAgent and ErrUnknownDevice. The returned
// UserAgent carries whatever could be detected even when an error is returned.
package useragent
