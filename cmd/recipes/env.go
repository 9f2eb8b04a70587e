package main

import (
	"io"
	"log/slog"
	"os"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer

	// Getenv and Environ read process environment variables.
	Getenv  func(string) string
	Environ func() []string

	// SetMaxProcs tunes the runtime; nil skips it.
	SetMaxProcs func(*slog.Logger)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Getenv:      os.Getenv,
		Environ:     os.Environ,
		SetMaxProcs: setMaxProcs,
	}
}
