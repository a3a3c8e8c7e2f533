package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdbook-docx [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "An mdBook renderer producing Word documents through pandoc.")
	fmt.Fprintln(w, "Without a command it reads mdBook's render context from stdin.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Build the documents in [output.docx] (default)")
	fmt.Fprintln(w, "  doctor     Check pandoc and the configured template/merge files")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdbook-docx help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdbook-docx [render] [flags] < render-context.json")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build every document listed in [output.docx] of book.toml.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       YAML documents file, replaces [output.docx]")
	fmt.Fprintln(w, "      --pandoc <path>       pandoc executable")
	fmt.Fprintln(w, "  -q, --quiet               Only log errors")
	fmt.Fprintln(w, "  -v, --verbose             Log chapter selection and pandoc command lines")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  "+EnvPandoc+"        pandoc executable when --pandoc is not given")
	fmt.Fprintln(w, "  MDBOOK_DOCX_LOG           Log level: debug, info, warn, error")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration (book.toml):")
	fmt.Fprintln(w, "  [[output.docx.documents]]")
	fmt.Fprintln(w, "  filename = \"guide.docx\"          # default output.docx")
	fmt.Fprintln(w, "  template = \"reference.docx\"      # pandoc --reference-doc")
	fmt.Fprintln(w, "  include = [\"intro.md\", \"part1/*\"] # default [\"*\"]")
	fmt.Fprintln(w, "  offset_headings_by = -1")
	fmt.Fprintln(w, "  prepend = [\"cover.docx\"]")
	fmt.Fprintln(w, "  append = [\"back.docx\"]")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdbook-docx doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that pandoc runs and that every template, prepend and append")
	fmt.Fprintln(w, "file referenced by book.toml exists and can be read.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -b, --book <dir>          Book root (default .)")
	fmt.Fprintln(w, "      --json                Print the report as JSON")
	fmt.Fprintln(w, "      --pandoc <path>       pandoc executable")
}

// printHelp prints help for a named command.
func printHelp(w io.Writer, command string) int {
	switch command {
	case "", "help":
		printUsage(w)
	case "render":
		printRenderUsage(w)
	case "doctor":
		printDoctorUsage(w)
	case "version":
		fmt.Fprintln(w, "Usage: mdbook-docx version")
	default:
		fmt.Fprintf(w, "unknown command %q\n\n", command)
		printUsage(w)
		return ExitUsage
	}
	return ExitSuccess
}
