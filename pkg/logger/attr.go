package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Provider records the parser provider name.
func Provider(name string) slog.Attr {
	return slog.String("provider", name)
}

// Field records the harmonization field or result column.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// UserAgentID records the user agent identifier. Nil yields an empty Attr.
func UserAgentID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("user_agent_id", id)
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Duration records elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
