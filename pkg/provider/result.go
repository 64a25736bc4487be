package provider

import (
	"time"

	"github.com/dmitrymomot/uabench/pkg/version"
)

type Browser struct {
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

type Engine struct {
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

type OS struct {
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

type Device struct {
	Model    string `json:"model,omitempty" yaml:"model,omitempty"`
	Brand    string `json:"brand,omitempty" yaml:"brand,omitempty"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	IsMobile bool   `json:"is_mobile,omitempty" yaml:"is_mobile,omitempty"`
	IsTouch  bool   `json:"is_touch,omitempty" yaml:"is_touch,omitempty"`
}

type Bot struct {
	IsBot bool   `json:"is_bot,omitempty" yaml:"is_bot,omitempty"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Result is one parser's answer for one user agent. Empty strings mean the
// parser produced no value.
type Result struct {
	Browser Browser `json:"browser" yaml:"browser"`
	Engine  Engine  `json:"engine" yaml:"engine"`
	OS      OS      `json:"os" yaml:"os"`
	Device  Device  `json:"device" yaml:"device"`
	Bot     Bot     `json:"bot" yaml:"bot"`

	ParseTime time.Duration `json:"parse_time" yaml:"-"`
	// Raw is the library's own answer, kept for debugging only.
	Raw any `json:"-" yaml:"-"`
}

// Value returns the result's value for the named column, or "" for unknown
// columns.
func (r Result) Value(column string) string {
	switch column {
	case ColumnBrowserName:
		return r.Browser.Name
	case ColumnBrowserVersion:
		return r.Browser.Version
	case ColumnEngineName:
		return r.Engine.Name
	case ColumnEngineVersion:
		return r.Engine.Version
	case ColumnOSName:
		return r.OS.Name
	case ColumnOSVersion:
		return r.OS.Version
	case ColumnDeviceModel:
		return r.Device.Model
	case ColumnDeviceBrand:
		return r.Device.Brand
	case ColumnDeviceType:
		return r.Device.Type
	case ColumnBotName:
		return r.Bot.Name
	case ColumnBotType:
		return r.Bot.Type
	}
	return ""
}

// Normalized returns r with every version passed through the version
// canonicalizer, so noise like "0.0.0" becomes empty.
func (r Result) Normalized() Result {
	r.Browser.Version = normalizeVersion(r.Browser.Version)
	r.Engine.Version = normalizeVersion(r.Engine.Version)
	r.OS.Version = normalizeVersion(r.OS.Version)
	return r
}

func normalizeVersion(raw string) string {
	var v version.Version
	v.SetComplete(raw)
	return v.Complete()
}
