package harmonize_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uabench/pkg/harmonize"
)

func TestDefaultRuleSetsCollapseSynonyms(t *testing.T) {
	t.Parallel()

	registry := harmonize.Default()
	for _, set := range harmonize.DefaultRuleSets() {
		h := registry.For(set.Field)
		for _, rule := range set.Rules {
			for _, syn := range rule.Synonyms {
				assert.Equal(t, rule.Canonical, h.Value(syn), "%s: %q", set.Field, syn)
				assert.Equal(t, rule.Canonical, h.Value(strings.ToUpper(syn)), "%s: %q upper-cased", set.Field, syn)
				assert.Equal(t, rule.Canonical, h.Value(strings.ToLower(syn)), "%s: %q lower-cased", set.Field, syn)
			}
		}
	}
}

func TestAbsentPassthrough(t *testing.T) {
	t.Parallel()

	registry := harmonize.Default()
	for _, f := range harmonize.Fields {
		assert.Empty(t, registry.Value(f, ""), f.String())
	}
}

func TestBrowserName(t *testing.T) {
	t.Parallel()

	h := harmonize.Default().For(harmonize.BrowserName)
	tests := map[string]string{
		"MSIE":              "IE",
		"Internet Explorer": "IE",
		"IEMobile":          "IE",
		"IE Mobile":         "IE",
		"Chrome Mobile":     "Chrome",
		"chrome dev":        "Chrome",
		"Opera Mini":        "Opera",
		"Firefox":           "Firefox",
		"Safari":            "Safari",
		"360 Phone Browser": "360 Browser",
	}
	for in, expected := range tests {
		assert.Equal(t, expected, h.Value(in), in)
	}
}

func TestOSName(t *testing.T) {
	t.Parallel()

	h := harmonize.Default().For(harmonize.OSName)
	tests := map[string]string{
		"Mac OS X":             "OS X",
		"Mac OS":               "OS X",
		"Mac":                  "OS X",
		"iPhone OS":            "iOS",
		"GNU/Linux":            "Linux",
		"Symbian OS Series 60": "Symbian",
		"Nokia Series 40":      "Symbian",
		"Win7":                 "Windows",
		"Windows XP":           "Windows",
		"Android":              "Android",
	}
	for in, expected := range tests {
		assert.Equal(t, expected, h.Value(in), in)
	}
}

func TestRulesApplyInOrder(t *testing.T) {
	t.Parallel()

	// The second rule rewrites the output of the first one.
	h := harmonize.NewSubstitution([]harmonize.Rule{
		{Canonical: "Family", Synonyms: []string{"Alias"}},
		{Canonical: "Brand", Synonyms: []string{"Family"}},
	})
	assert.Equal(t, "Brand", h.Value("alias"))
	assert.Equal(t, "Brand X", h.Value("ALIAS X"))

	reversed := harmonize.NewSubstitution([]harmonize.Rule{
		{Canonical: "Brand", Synonyms: []string{"Family"}},
		{Canonical: "Family", Synonyms: []string{"Alias"}},
	})
	assert.Equal(t, "Family", reversed.Value("alias"))
}

func TestSubstringReplacement(t *testing.T) {
	t.Parallel()

	h := harmonize.NewSubstitution([]harmonize.Rule{
		{Canonical: "Windows", Synonyms: []string{"Windows 8"}},
	})
	assert.Equal(t, "Windows.1", h.Value("Windows 8.1"))
	assert.Equal(t, "Windows / Windows", h.Value("windows 8 / WINDOWS 8"))
	assert.Equal(t, "a.b*c", harmonize.NewSubstitution([]harmonize.Rule{
		{Canonical: "x", Synonyms: []string{"a.c"}},
	}).Value("a.b*c"), "synonyms are literal, not patterns")
}

func TestValuesPreservesShape(t *testing.T) {
	t.Parallel()

	h := harmonize.Default().For(harmonize.BrowserName)
	in := []string{"MSIE", "", "MSIE", "Chrome Mobile", ""}
	out := h.Values(in)
	require.Len(t, out, len(in))
	assert.Equal(t, []string{"IE", "", "IE", "Chrome", ""}, out)
	assert.Equal(t, []string{"MSIE", "", "MSIE", "Chrome Mobile", ""}, in, "input is not modified")

	assert.Empty(t, h.Values(nil))
}

func TestVersionField(t *testing.T) {
	t.Parallel()

	h := harmonize.Default().For(harmonize.Version)
	assert.Equal(t, []string{"10.2", "10.2", "7.0", ""}, h.Values([]string{"10.2.5", "10.2.9 beta", "7", ""}))
}

func TestIdentityFields(t *testing.T) {
	t.Parallel()

	registry := harmonize.Default()
	assert.Equal(t, "iPhone 12 Pro", registry.Value(harmonize.DeviceModel, "iPhone 12 Pro"))
	assert.Equal(t, "WebKit", registry.Value(harmonize.EngineName, "WebKit"))
	assert.Equal(t, "value", registry.Value(harmonize.Field("unknown"), "value"))
}

func BenchmarkOSNameValue(b *testing.B) {
	h := harmonize.Default().For(harmonize.OSName)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Value("Symbian OS Series 60")
	}
}
