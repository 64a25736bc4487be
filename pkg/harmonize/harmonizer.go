package harmonize

import (
	"regexp"

	"github.com/dmitrymomot/uabench/pkg/version"
)

// Harmonizer reduces raw values of one field to canonical values.
// Implementations are safe for concurrent use.
type Harmonizer interface {
	// Value harmonizes a single value. Absent ("") stays absent.
	Value(value string) string
	// Values harmonizes every element, preserving order, count and absents.
	Values(values []string) []string
}

type replacement struct {
	pattern   *regexp.Regexp
	canonical string
}

// substitution applies ordered, case-insensitive substring replacements.
type substitution struct {
	replacements []replacement
}

// NewSubstitution compiles rules into a Harmonizer. Synonyms are matched
// literally and case-insensitively; rules run in order, synonyms left to right.
func NewSubstitution(rules []Rule) Harmonizer {
	var reps []replacement
	for _, rule := range rules {
		for _, syn := range rule.Synonyms {
			if syn == "" {
				continue
			}
			reps = append(reps, replacement{
				pattern:   regexp.MustCompile(`(?i)` + regexp.QuoteMeta(syn)),
				canonical: rule.Canonical,
			})
		}
	}
	return substitution{replacements: reps}
}

func (s substitution) Value(value string) string {
	if value == "" {
		return value
	}
	for _, r := range s.replacements {
		value = r.pattern.ReplaceAllLiteralString(value, r.canonical)
	}
	return value
}

func (s substitution) Values(values []string) []string {
	return mapValues(s, values)
}

// versionHarmonizer reduces versions to their coarse major.minor form.
type versionHarmonizer struct{}

func (versionHarmonizer) Value(value string) string {
	return version.Harmonize(value)
}

func (h versionHarmonizer) Values(values []string) []string {
	return mapValues(h, values)
}

// identity keeps values unchanged; used for fields without rules.
type identity struct{}

func (identity) Value(value string) string { return value }

func (h identity) Values(values []string) []string {
	return mapValues(h, values)
}

func mapValues(h Harmonizer, values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = h.Value(v)
	}
	return out
}
