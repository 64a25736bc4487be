// Package harmonize maps the many spellings parsers use for the same thing
// onto one canonical value, so that answers from different user agent parsers
// can be compared fairly ("MSIE", "IEMobile" and "Internet Explorer" all become
// "IE").
//
// Each semantic Field has a Harmonizer. Most fields use a substitution
// harmonizer driven by an ordered RuleSet: for every rule, in order, every
// synonym found inside the value (case-insensitively) is replaced by the rule's
// canonical value. Rules are applied in sequence, so a later rule may rewrite
// text produced by an earlier one. The Version field uses version.Harmonize
// instead of substitution rules.
//
// The default rule tables live in rules.yaml, embedded into the binary and
// decoded once on first use. Custom tables can be loaded with LoadRules and
// turned into a Registry with NewRegistry.
//
// # Usage
//
//	h := harmonize.Default().For(harmonize.BrowserName)
//	h.Value("Chrome Mobile")                 // "Chrome"
//	h.Values([]string{"MSIE", "", "Opera"})  // ["IE", "", "Opera"]
//
// An empty string is an absent value and is passed through unchanged.
//
// # Validation
//
// Validate reports rule sets where two canonical values claim the same synonym.
// This is an authoring mistake in the tables rather than a runtime condition,
// and the default tables are checked by a unit test.
package harmonize
