package main

import (
	"io"
	"log/slog"
	"os"
	"os/exec"

	book2docx "github.com/alnah/go-book2docx"
)

// EnvPandoc names the variable holding the pandoc executable.
const EnvPandoc = "MDBOOK_DOCX_PANDOC"

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdin        io.Reader
	Stdout       io.Writer
	Stderr       io.Writer
	Getenv       func(string) string
	LookPath     func(string) (string, error)
	Runner       book2docx.CommandRunner
	NewConverter func(binary string, logger *slog.Logger) book2docx.Converter
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Getenv:   os.Getenv,
		LookPath: exec.LookPath,
		Runner:   &book2docx.ExecRunner{},
		NewConverter: func(binary string, logger *slog.Logger) book2docx.Converter {
			return book2docx.NewPandocConverter(binary, logger)
		},
	}
}

// pandocBinary picks the executable: flag, then environment, then PATH lookup name.
func (e *Environment) pandocBinary(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := e.Getenv(EnvPandoc); v != "" {
		return v
	}
	return book2docx.DefaultPandocBinary
}
