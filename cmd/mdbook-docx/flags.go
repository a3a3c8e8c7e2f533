package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	pandoc  string
	quiet   bool
	verbose bool
}

// renderFlags holds flags for the render command (the default).
type renderFlags struct {
	common commonFlags
	config string
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	common commonFlags
	book   string
	json   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVar(&f.pandoc, "pandoc", "", "pandoc executable (default $"+EnvPandoc+" or pandoc on PATH)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only log errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log chapter selection and pandoc command lines")
}

// parseRenderFlags parses render flags. mdBook passes no arguments, so
// every flag is optional.
func parseRenderFlags(args []string, stderr io.Writer) (*renderFlags, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &renderFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "YAML documents file name or path, replaces [output.docx]")
	addCommonFlags(fs, &f.common)
	fs.Usage = func() { printRenderUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// parseDoctorFlags parses doctor flags.
func parseDoctorFlags(args []string, stderr io.Writer) (*doctorFlags, error) {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &doctorFlags{}

	fs.StringVarP(&f.book, "book", "b", ".", "book root directory (holding book.toml)")
	fs.BoolVar(&f.json, "json", false, "print the report as JSON")
	addCommonFlags(fs, &f.common)
	fs.Usage = func() { printDoctorUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
