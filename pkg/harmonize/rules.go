package harmonize

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRulesDocument []byte

// Rule maps a set of synonyms onto one canonical value.
type Rule struct {
	Canonical string   `yaml:"canonical"`
	Synonyms  []string `yaml:"synonyms"`
}

// RuleSet is the ordered list of rules for one field.
type RuleSet struct {
	Field Field  `yaml:"field"`
	Rules []Rule `yaml:"rules"`
}

var (
	defaultRuleSets     []RuleSet
	defaultRuleSetsErr  error
	defaultRuleSetsOnce sync.Once
)

// DefaultRuleSets returns a copy of the embedded rule tables.
// It panics if the embedded document is invalid, which is a build-time mistake.
func DefaultRuleSets() []RuleSet {
	defaultRuleSetsOnce.Do(func() {
		defaultRuleSets, defaultRuleSetsErr = LoadRules(bytes.NewReader(defaultRulesDocument))
	})
	if defaultRuleSetsErr != nil {
		panic(fmt.Sprintf("harmonize: embedded rules: %v", defaultRuleSetsErr))
	}
	return cloneRuleSets(defaultRuleSets)
}

// LoadRules decodes a YAML rules document. The document is a list of
// {field, rules: [{canonical, synonyms}]} entries; order is preserved.
func LoadRules(r io.Reader) ([]RuleSet, error) {
	var sets []RuleSet
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sets); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Join(ErrFailedToLoadRules, ErrInvalidRuleSetFile, err)
	}

	seen := make(map[Field]struct{}, len(sets))
	for _, set := range sets {
		if !set.Field.Valid() {
			return nil, errors.Join(ErrFailedToLoadRules, fmt.Errorf("%w: %q", ErrUnknownField, set.Field))
		}
		if _, dup := seen[set.Field]; dup {
			return nil, errors.Join(ErrFailedToLoadRules, fmt.Errorf("%w: %s", ErrDuplicateRuleSet, set.Field))
		}
		seen[set.Field] = struct{}{}

		if set.Field == Version && len(set.Rules) > 0 {
			return nil, errors.Join(ErrFailedToLoadRules, ErrVersionFieldRules)
		}
		for _, rule := range set.Rules {
			if strings.TrimSpace(rule.Canonical) == "" {
				return nil, errors.Join(ErrFailedToLoadRules, fmt.Errorf("%w: field %s", ErrEmptyCanonical, set.Field))
			}
		}
	}

	return sets, nil
}

// Conflict describes a synonym claimed by more than one canonical value.
type Conflict struct {
	Field      Field
	Synonym    string
	Canonicals []string
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s: %q claimed by %s", c.Field, c.Synonym, strings.Join(c.Canonicals, ", "))
}

// Conflicts lists every synonym (compared case-insensitively) that belongs to
// more than one canonical value within the same rule set.
func Conflicts(sets []RuleSet) []Conflict {
	var conflicts []Conflict
	for _, set := range sets {
		owners := make(map[string][]string)
		var order []string
		for _, rule := range set.Rules {
			for _, syn := range rule.Synonyms {
				key := strings.ToLower(syn)
				if _, ok := owners[key]; !ok {
					order = append(order, key)
				}
				if !contains(owners[key], rule.Canonical) {
					owners[key] = append(owners[key], rule.Canonical)
				}
			}
		}
		for _, key := range order {
			if len(owners[key]) > 1 {
				conflicts = append(conflicts, Conflict{Field: set.Field, Synonym: key, Canonicals: owners[key]})
			}
		}
	}
	return conflicts
}

// Validate returns ErrDuplicateSynonym listing every conflict found, or nil.
func Validate(sets []RuleSet) error {
	conflicts := Conflicts(sets)
	if len(conflicts) == 0 {
		return nil
	}
	errs := make([]error, 0, len(conflicts)+1)
	errs = append(errs, ErrDuplicateSynonym)
	for _, c := range conflicts {
		errs = append(errs, errors.New(c.String()))
	}
	return errors.Join(errs...)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func cloneRuleSets(sets []RuleSet) []RuleSet {
	out := make([]RuleSet, len(sets))
	for i, set := range sets {
		rules := make([]Rule, len(set.Rules))
		for j, rule := range set.Rules {
			rules[j] = Rule{Canonical: rule.Canonical, Synonyms: append([]string(nil), rule.Synonyms...)}
		}
		out[i] = RuleSet{Field: set.Field, Rules: rules}
	}
	return out
}
