package version

import (
	"regexp"
	"strings"
)

// coarseRun matches the major and, when present, minor component of a version.
// Anything after the minor component (patch, build, alias) is discarded.
var coarseRun = regexp.MustCompile(`\d+(?:[.,]\d*)?`)

// Harmonize reduces a version string to a coarse "major.minor" form for loose
// comparison between parsers. A lone major gets ".0" appended. Strings without
// any digits are returned unchanged, and absent stays absent.
func Harmonize(raw string) string {
	if raw == "" {
		return ""
	}

	run := coarseRun.FindString(raw)
	if run == "" {
		return raw
	}

	if !strings.Contains(run, ".") {
		run += ".0"
	}

	return run
}
