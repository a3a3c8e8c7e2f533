package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	flag "github.com/spf13/pflag"

	book2docx "github.com/alnah/go-book2docx"
	"github.com/alnah/go-book2docx/internal/config"
	"github.com/alnah/go-book2docx/internal/hints"
	"github.com/alnah/go-book2docx/internal/lock"
	"github.com/alnah/go-book2docx/internal/logging"
	"github.com/alnah/go-book2docx/internal/mdbook"
)

// runRenderCmd reads the render context from stdin and builds every
// configured document. Success is silent unless verbose.
func runRenderCmd(args []string, env *Environment) int {
	flags, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}

	logger := newLogger(env, flags.common)

	ctx, stop := signalContext(context.Background())
	defer stop()

	if err := render(ctx, flags, env, logger); err != nil {
		if hint := hintFor(err); hint != "" {
			logger.Error(err.Error(), "hint", hint)
		} else {
			logger.Error(err.Error())
		}
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// render runs the renderer against one render context.
func render(ctx context.Context, flags *renderFlags, env *Environment, logger *slog.Logger) error {
	in, err := mdbook.Read(env.Stdin)
	if err != nil {
		return err
	}

	cfg, err := loadDocuments(flags.config, in.Section)
	if err != nil {
		return err
	}
	list := cfg.DocumentList()
	if len(list.Documents) == 0 {
		logger.Debug("no documents configured")
		return nil
	}

	dirLock, err := acquireLock(ctx, book2docx.DestinationDir(in.Context), logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := dirLock.Unlock(); err != nil {
			logger.Warn("releasing lock", "error", err)
		}
	}()

	binary := env.pandocBinary(flags.common.pandoc)
	logger.Debug("rendering", "root", in.Context.Root, "documents", len(list.Documents), "pandoc", binary)

	r := book2docx.NewRenderer(
		book2docx.WithLogger(logger),
		book2docx.WithConverter(env.NewConverter(binary, logger)),
	)
	return r.RenderAll(ctx, in.Context, list)
}

// acquireLock takes the destination lock, waiting while another renderer
// holds it.
func acquireLock(ctx context.Context, dir string, logger *slog.Logger) (*lock.DirLock, error) {
	dirLock, err := lock.New(dir)
	if err != nil {
		return nil, err
	}
	ok, err := dirLock.TryLock()
	if err != nil {
		return nil, err
	}
	if ok {
		return dirLock, nil
	}

	logger.Info("destination in use by another renderer, waiting", "lock", dirLock.Path())
	if err := dirLock.Lock(ctx); err != nil {
		return nil, err
	}
	return dirLock, nil
}

// loadDocuments returns the document list: a standalone YAML file when
// --config is set, otherwise the [output.docx] table of book.toml.
func loadDocuments(configFlag string, section []byte) (*config.Config, error) {
	if configFlag != "" {
		return config.LoadConfig(configFlag)
	}
	return config.FromSection(section)
}

// newLogger builds the process logger. --verbose and --quiet override the
// level taken from the environment.
func newLogger(env *Environment, f commonFlags) *slog.Logger {
	level, levelErr := logging.LevelFromEnv(env.Getenv)
	switch {
	case f.verbose:
		level = slog.LevelDebug
	case f.quiet:
		level = slog.LevelError
	}

	logger := logging.New(env.Stderr, level)
	if levelErr != nil {
		logger.Warn(fmt.Sprintf("%v, using info", levelErr), "variable", logging.EnvLevel)
	}
	return logger
}

// hintFor returns an actionable hint for known failures, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, book2docx.ErrConverterNotFound):
		return hints.ForConverterNotFound()
	case errors.Is(err, book2docx.ErrMissingInputFile):
		return hints.ForMissingInput()
	case errors.Is(err, book2docx.ErrBadEncoding):
		return hints.ForBadEncoding()
	case errors.Is(err, book2docx.ErrNoMatchingChapters):
		return hints.ForNoMatchingChapters()
	case errors.Is(err, config.ErrDuplicateFilename):
		return hints.ForDuplicateFilename()
	case errors.Is(err, config.ErrConfigNotFound):
		var nf *config.NotFoundError
		if errors.As(err, &nf) {
			return hints.ForConfigNotFound(nf.Tried)
		}
		return hints.ForConfigNotFound(nil)
	}
	return ""
}
