package book2docx

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-book2docx/internal/process"
)

// DefaultPandocBinary is looked up on PATH when no binary is configured.
const DefaultPandocBinary = "pandoc"

// Pandoc exit codes that signal undecodable input.
const (
	pandocUTF8DecodingError  = 92
	pandocUnsupportedCharset = 94
)

// CommandRunner abstracts command execution to enable testing without real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, stdin io.Reader, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, stdin io.Reader, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- binary is operator-configured
	process.Isolate(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdin = stdin
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// PandocConverter converts documents by invoking the pandoc CLI.
type PandocConverter struct {
	Runner CommandRunner
	Binary string
	Logger *slog.Logger
}

// NewPandocConverter creates a PandocConverter with a real command runner.
// An empty binary selects DefaultPandocBinary.
func NewPandocConverter(binary string, logger *slog.Logger) *PandocConverter {
	if binary == "" {
		binary = DefaultPandocBinary
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PandocConverter{Runner: &ExecRunner{}, Binary: binary, Logger: logger}
}

// Convert runs pandoc once for req. Piped requests read markdown from stdin;
// file requests let pandoc infer input formats from extensions.
func (c *PandocConverter) Convert(ctx context.Context, req Request) error {
	if err := req.validate(); err != nil {
		return err
	}

	args := pandocArgs(req)
	var stdin io.Reader
	if req.piped() {
		stdin = strings.NewReader(req.Content)
	}

	c.logger().Debug("running pandoc", "cmdline", c.binary()+" "+strings.Join(args, " "))

	_, stderr, err := c.Runner.Run(ctx, stdin, c.binary(), args...)
	if err != nil {
		return classifyRunError(ctx, err, stderr)
	}
	return nil
}

// pandocArgs renders the full argument list: options first, then formats,
// output and finally any file inputs in order. The writer is always docx;
// file inputs keep their reader inferred from each extension.
func pandocArgs(req Request) []string {
	args := req.Options.Args()
	if req.piped() {
		args = append(args, "--from="+inputFormatArg())
	}
	args = append(args, "--to="+OutputFormat, "--output="+req.Output)
	args = append(args, req.Inputs...)
	return args
}

// classifyRunError maps a runner failure to a ConverterError cause.
func classifyRunError(ctx context.Context, err error, stderr string) error {
	stderr = strings.TrimSpace(stderr)

	if ctx.Err() != nil {
		return &ConverterError{Cause: ErrConverterIO, ExitCode: -1, Stderr: stderr, Err: ctx.Err()}
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return &ConverterError{Cause: ErrConverterNotFound, ExitCode: -1, Err: err}
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return &ConverterError{Cause: ErrConverterIO, ExitCode: -1, Stderr: stderr, Err: err}
	}

	code := exitErr.ExitCode()
	cause := ErrConverterFailed
	if code == pandocUTF8DecodingError || code == pandocUnsupportedCharset || !utf8.ValidString(stderr) {
		cause = ErrBadEncoding
	}
	if !utf8.ValidString(stderr) {
		stderr = strings.ToValidUTF8(stderr, "�")
	}
	return &ConverterError{Cause: cause, ExitCode: code, Stderr: stderr, Err: err}
}

func (c *PandocConverter) binary() string {
	if c.Binary == "" {
		return DefaultPandocBinary
	}
	return c.Binary
}

func (c *PandocConverter) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
