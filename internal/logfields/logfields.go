// Package logfields holds the canonical slog attribute keys used across the
// build so log output keeps a stable shape.
package logfields

import "log/slog"

const (
	KeyPath       = "path"
	KeyDest       = "dest"
	KeyTitle      = "title"
	KeyStage      = "stage"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyTemplate   = "template"
	KeyError      = "error"
)

func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Dest(p string) slog.Attr         { return slog.String(KeyDest, p) }
func Title(t string) slog.Attr        { return slog.String(KeyTitle, t) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Template(name string) slog.Attr  { return slog.String(KeyTemplate, name) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
