package sanitize

import (
	"log/slog"
)

// ReplaceAttr is a slog ReplaceAttr hook that redacts excluded fields and
// scrubs secret-shaped values out of string attributes.
func ReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	if Instance.FieldExcluded(a.Key) {
		return slog.String(a.Key, redactedStr)
	}
	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, Instance.SanitizeString(a.Value.String()))
	}
	return a
}
