package harmonize

import "fmt"

// Field is a semantic field tag selecting which harmonizer applies.
type Field string

const (
	BrowserName Field = "browserName"
	// Version is shared by browser, engine and OS versions.
	Version     Field = "version"
	EngineName  Field = "engineName"
	OSName      Field = "osName"
	DeviceModel Field = "deviceModel"
	DeviceBrand Field = "deviceBrand"
	DeviceType  Field = "deviceType"
	BotName     Field = "botName"
	BotType     Field = "botType"
)

// Fields lists every known field tag.
var Fields = []Field{
	BrowserName,
	Version,
	EngineName,
	OSName,
	DeviceModel,
	DeviceBrand,
	DeviceType,
	BotName,
	BotType,
}

// String implements fmt.Stringer.
func (f Field) String() string { return string(f) }

// Valid reports whether f is a known field tag.
func (f Field) Valid() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

// ParseField converts a field tag string into a Field.
func ParseField(s string) (Field, error) {
	f := Field(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
	return f, nil
}
