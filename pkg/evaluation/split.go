package evaluation

import "strings"

// Separator joins the values of several parsers into one string.
const Separator = "~~~"

// Split recovers the ordered values from a Separator-joined string.
// A nil joined string yields an empty sequence; an empty one yields a single
// empty value.
func Split(joined *string) []string {
	if joined == nil {
		return []string{}
	}
	return strings.Split(*joined, Separator)
}

// Join is the inverse of Split. A nil or empty values slice yields nil.
func Join(values []string) *string {
	if len(values) == 0 {
		return nil
	}
	s := strings.Join(values, Separator)
	return &s
}
