package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	flag "github.com/spf13/pflag"

	book2docx "github.com/alnah/go-book2docx"
	"github.com/alnah/go-book2docx/internal/config"
	"github.com/alnah/go-book2docx/internal/docxcheck"
	"github.com/alnah/go-book2docx/internal/fileutil"
	"github.com/alnah/go-book2docx/internal/hints"
)

// Doctor statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string      `json:"status"`
	Pandoc    pandocInfo  `json:"pandoc"`
	Book      bookInfo    `json:"book"`
	Documents []docReport `json:"documents,omitempty"`
	Env       envInfo     `json:"environment"`
	Warnings  []string    `json:"warnings,omitempty"`
	Errors    []string    `json:"errors,omitempty"`
}

// pandocInfo holds pandoc detection results.
type pandocInfo struct {
	Found   bool   `json:"found"`
	Binary  string `json:"binary"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// bookInfo describes the book.toml that was checked.
type bookInfo struct {
	Root      string `json:"root"`
	Config    bool   `json:"config_found"`
	Documents int    `json:"documents"`
}

// docReport holds the checks for one configured document.
type docReport struct {
	Filename string       `json:"filename"`
	Include  []string     `json:"include"`
	Template *fileReport  `json:"template,omitempty"`
	Prepend  []fileReport `json:"prepend,omitempty"`
	Append   []fileReport `json:"append,omitempty"`
}

// fileReport is the state of one file referenced by a document.
type fileReport struct {
	Path       string `json:"path"`
	OK         bool   `json:"ok"`
	Paragraphs int    `json:"paragraphs,omitempty"`
	Tables     int    `json:"tables,omitempty"`
	Problem    string `json:"problem,omitempty"`
}

// envInfo holds platform details.
type envInfo struct {
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	Container bool   `json:"container"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	flags, err := parseDoctorFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}

	ctx, stop := signalContext(context.Background())
	defer stop()

	result := runDoctor(ctx, env, flags)

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(ctx context.Context, env *Environment, flags *doctorFlags) *doctorResult {
	result := &doctorResult{
		Status: statusReady,
		Env: envInfo{
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			Container: hints.IsInContainer(),
		},
	}

	checkPandoc(ctx, env, env.pandocBinary(flags.common.pandoc), result)
	checkBook(flags.book, result)

	if len(result.Errors) > 0 {
		result.Status = statusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = statusWarnings
	}
	return result
}

// checkPandoc locates pandoc and asks for its version.
func checkPandoc(ctx context.Context, env *Environment, binary string, result *doctorResult) {
	result.Pandoc.Binary = binary

	path, err := env.LookPath(binary)
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("pandoc not found (%s); install it or set %s", binary, EnvPandoc))
		return
	}
	result.Pandoc.Found = true
	result.Pandoc.Path = path

	stdout, _, err := env.Runner.Run(ctx, nil, path, "--version")
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("could not get pandoc version: %v", err))
		return
	}
	first, _, _ := strings.Cut(strings.TrimSpace(stdout), "\n")
	result.Pandoc.Version = strings.TrimSpace(first)
}

// checkBook loads book.toml and checks every document it configures.
func checkBook(root string, result *doctorResult) {
	abs, err := filepath.Abs(root)
	if err == nil {
		root = abs
	}
	result.Book.Root = root

	cfg, err := config.LoadBookTOML(root)
	if err != nil {
		if errors.Is(err, config.ErrBookConfigNotFound) {
			result.Warnings = append(result.Warnings, err.Error())
			return
		}
		result.Errors = append(result.Errors, err.Error())
		return
	}
	result.Book.Config = true

	list := cfg.DocumentList()
	result.Book.Documents = len(list.Documents)
	for _, doc := range list.Documents {
		result.Documents = append(result.Documents, checkDocument(root, doc, result))
	}
}

// checkDocument validates patterns and referenced files of one document.
func checkDocument(root string, doc book2docx.DocumentSpec, result *doctorResult) docReport {
	doc = doc.WithDefaults(root)
	report := docReport{Filename: doc.Filename, Include: doc.Include}

	if _, err := book2docx.CompilePatterns(doc.Include); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", doc.Filename, err))
	}

	if doc.Template != "" {
		fr := checkFile(fileutil.ResolveUnder(root, doc.Template), true)
		if !fr.OK {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: template %s", doc.Filename, fr.Problem))
		}
		report.Template = &fr
	}

	for _, p := range doc.Prepend {
		fr := checkFile(fileutil.ResolveUnder(root, p), false)
		if !fr.OK {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: prepend %s", doc.Filename, fr.Problem))
		}
		report.Prepend = append(report.Prepend, fr)
	}
	for _, p := range doc.Append {
		fr := checkFile(fileutil.ResolveUnder(root, p), false)
		if !fr.OK {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: append %s", doc.Filename, fr.Problem))
		}
		report.Append = append(report.Append, fr)
	}
	return report
}

// checkFile reports whether path exists and, for .docx files, parses.
// Templates must be .docx; merge inputs may be any format pandoc reads.
func checkFile(path string, mustBeDocx bool) fileReport {
	fr := fileReport{Path: path}

	if !docxcheck.IsDocx(path) {
		switch {
		case mustBeDocx:
			fr.Problem = fmt.Sprintf("%s is not a .docx file", path)
		case !fileutil.FileExists(path):
			fr.Problem = fmt.Sprintf("%s does not exist", path)
		default:
			fr.OK = true
		}
		return fr
	}

	summary, err := docxcheck.Inspect(path)
	if err != nil {
		fr.Problem = err.Error()
		return fr
	}
	fr.OK = true
	fr.Paragraphs = summary.Paragraphs
	fr.Tables = summary.Tables
	return fr
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "mdbook-docx doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Pandoc")
	if r.Pandoc.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Pandoc.Path)
		if r.Pandoc.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Pandoc.Version)
		}
	} else {
		fmt.Fprintf(w, "  [ERROR] %s not found\n", r.Pandoc.Binary)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Book")
	fmt.Fprintf(w, "  Root: %s\n", r.Book.Root)
	if r.Book.Config {
		fmt.Fprintf(w, "  [OK] book.toml: %d document(s)\n", r.Book.Documents)
	}
	for _, d := range r.Documents {
		fmt.Fprintf(w, "  %s  include=[%s]\n", d.Filename, strings.Join(d.Include, ", "))
		if d.Template != nil {
			printFileReport(w, "template", *d.Template)
		}
		for _, f := range d.Prepend {
			printFileReport(w, "prepend", f)
		}
		for _, f := range d.Append {
			printFileReport(w, "append", f)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintln(w, "  [OK] Container: detected")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: READY")
	case statusWarnings:
		fmt.Fprintln(w, "Status: READY (with warnings)")
	default:
		fmt.Fprintln(w, "Status: NOT READY")
	}
}

func printFileReport(w io.Writer, role string, f fileReport) {
	if !f.OK {
		fmt.Fprintf(w, "    [ERROR] %s: %s\n", role, f.Problem)
		return
	}
	if docxcheck.IsDocx(f.Path) {
		fmt.Fprintf(w, "    [OK] %s: %s (%d paragraphs, %d tables)\n", role, f.Path, f.Paragraphs, f.Tables)
		return
	}
	fmt.Fprintf(w, "    [OK] %s: %s\n", role, f.Path)
}
