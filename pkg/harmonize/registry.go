package harmonize

import (
	"fmt"
	"sync"
)

// Registry dispatches field tags to their harmonizers. It is immutable after
// construction and safe for concurrent use.
type Registry struct {
	harmonizers map[Field]Harmonizer
}

// NewRegistry builds a registry from rule sets. Fields without a rule set get
// an identity harmonizer; the Version field always uses version harmonization.
func NewRegistry(sets []RuleSet) (*Registry, error) {
	if err := Validate(sets); err != nil {
		return nil, err
	}

	r := &Registry{harmonizers: make(map[Field]Harmonizer, len(Fields))}
	for _, f := range Fields {
		r.harmonizers[f] = identity{}
	}
	for _, set := range sets {
		if !set.Field.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, set.Field)
		}
		if set.Field == Version {
			if len(set.Rules) > 0 {
				return nil, ErrVersionFieldRules
			}
			continue
		}
		if len(set.Rules) > 0 {
			r.harmonizers[set.Field] = NewSubstitution(set.Rules)
		}
	}
	r.harmonizers[Version] = versionHarmonizer{}

	return r, nil
}

// For returns the harmonizer of a field. Unknown fields get an identity
// harmonizer so evaluation never fails on a tag typo; use ParseField to
// validate tags coming from outside.
func (r *Registry) For(f Field) Harmonizer {
	if h, ok := r.harmonizers[f]; ok {
		return h
	}
	return identity{}
}

// Value is a shortcut for r.For(f).Value(value).
func (r *Registry) Value(f Field, value string) string {
	return r.For(f).Value(value)
}

// Values is a shortcut for r.For(f).Values(values).
func (r *Registry) Values(f Field, values []string) []string {
	return r.For(f).Values(values)
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the registry built from the embedded rule tables.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		r, err := NewRegistry(DefaultRuleSets())
		if err != nil {
			panic(fmt.Sprintf("harmonize: default registry: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}
