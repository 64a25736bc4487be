package version

import (
	"regexp"
	"strings"
)

// separator splits a numeric run into its components.
var separator = regexp.MustCompile(`[._]`)

// numericRun matches a dotted or underscored run of digits, e.g. "10", "5.3.1" or "10_15_7".
var numericRun = regexp.MustCompile(`\d+(?:[._]\d*)*`)

// disallowedAliases are pre-release qualifiers that are dropped instead of kept as alias.
var disallowedAliases = map[string]struct{}{
	"a":        {},
	"alpha":    {},
	"prealpha": {},
	"b":        {},
	"beta":     {},
	"prebeta":  {},
	"rc":       {},
}

// Parts holds the structured components of a version. Empty fields are absent.
type Parts struct {
	Major string
	Minor string
	Patch string
	Alias string
}

// IsZero reports whether all parts are absent.
func (p Parts) IsZero() bool {
	return p == Parts{}
}

// Parse splits a raw version string into its parts.
// Strings made only of zeros, dots and underscores ("0.0.0", "..") carry no
// signal and yield zero Parts.
func Parse(raw string) Parts {
	if isNoise(raw) {
		return Parts{}
	}

	var p Parts
	if run := numericRun.FindString(raw); run != "" {
		// Empty components ("5..1") stay in place and map to absent parts.
		components := separator.Split(run, -1)
		if len(components) > 0 {
			p.Major = normalizeNumber(components[0])
		}
		if len(components) > 1 {
			p.Minor = normalizeNumber(components[1])
		}
		if len(components) > 2 {
			p.Patch = normalizeNumber(components[2])
		}
	}

	for _, fragment := range numericRun.Split(raw, -1) {
		fragment = strings.Trim(fragment, " \t\r\n-")
		if fragment == "" {
			continue
		}
		if _, skip := disallowedAliases[fragment]; skip {
			continue
		}
		p.Alias = fragment
	}

	return p
}

// Reconstruct builds the complete representation of a version from its parts.
// Patch is only kept when minor is present. The alias, when set, prefixes the
// numeric part as "alias - major.minor.patch".
func Reconstruct(major, minor, patch, alias string) string {
	if major == "" && alias == "" {
		return ""
	}

	v := major
	if minor != "" {
		v += "." + minor
		if patch != "" {
			v += "." + patch
		}
	}

	if alias != "" {
		if v == "" {
			return alias
		}
		return alias + " - " + v
	}

	return v
}

// Version is a structured version whose complete representation stays in sync
// with its parts. The zero value is an absent version.
type Version struct {
	major    string
	minor    string
	patch    string
	alias    string
	complete string
}

// New builds a Version from its parts.
func New(major, minor, patch, alias string) Version {
	v := Version{major: major, minor: minor, patch: patch, alias: alias}
	v.calculateComplete()
	return v
}

// FromString builds a Version by parsing a raw version string.
func FromString(raw string) Version {
	var v Version
	v.SetComplete(raw)
	return v
}

func (v Version) Major() string    { return v.major }
func (v Version) Minor() string    { return v.minor }
func (v Version) Patch() string    { return v.patch }
func (v Version) Alias() string    { return v.alias }
func (v Version) Complete() string { return v.complete }

// String returns the complete representation.
func (v Version) String() string { return v.complete }

// IsAbsent reports whether the version holds no information.
func (v Version) IsAbsent() bool { return v.complete == "" }

// Parts returns the structured components.
func (v Version) Parts() Parts {
	return Parts{Major: v.major, Minor: v.minor, Patch: v.patch, Alias: v.alias}
}

func (v *Version) SetMajor(major string) {
	v.major = major
	v.calculateComplete()
}

func (v *Version) SetMinor(minor string) {
	v.minor = minor
	v.calculateComplete()
}

func (v *Version) SetPatch(patch string) {
	v.patch = patch
	v.calculateComplete()
}

func (v *Version) SetAlias(alias string) {
	v.alias = alias
	v.calculateComplete()
}

// SetComplete hydrates all parts from a raw version string.
// The raw string is kept as-is unless it carries no signal, in which case the
// whole version becomes absent.
func (v *Version) SetComplete(raw string) {
	if isNoise(raw) {
		raw = ""
	}
	p := Parse(raw)
	v.major, v.minor, v.patch, v.alias = p.Major, p.Minor, p.Patch, p.Alias
	v.complete = raw
}

func (v *Version) calculateComplete() {
	v.complete = Reconstruct(v.major, v.minor, v.patch, v.alias)
}

// isNoise reports whether raw consists only of zeros, dots and underscores.
func isNoise(raw string) bool {
	return strings.Trim(raw, "0._") == ""
}

// normalizeNumber drops leading zeros so that "07" and "7" compare equal.
func normalizeNumber(s string) string {
	if s == "" {
		return ""
	}
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
