package harmonize

import "errors"

var (
	ErrUnknownField       = errors.New("unknown harmonization field")
	ErrDuplicateSynonym   = errors.New("synonym claimed by more than one canonical value")
	ErrDuplicateRuleSet   = errors.New("rule set defined more than once for a field")
	ErrEmptyCanonical     = errors.New("rule has an empty canonical value")
	ErrFailedToLoadRules  = errors.New("failed to load harmonization rules")
	ErrVersionFieldRules  = errors.New("version field does not accept substitution rules")
	ErrInvalidRuleSetFile = errors.New("invalid harmonization rules document")
)
