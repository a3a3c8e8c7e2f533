// Package logging provides the renderer's console log format:
//
//	2006-01-02 15:04:05 [LEVEL] (component): message key=value
//
// Lines go to stderr so the host can relay them; stdout stays unused.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// EnvLevel is the environment variable holding the log level.
const EnvLevel = "MDBOOK_DOCX_LOG"

// DefaultComponent names lines logged without a component attribute.
const DefaultComponent = "mdbook-docx"

const timeLayout = "2006-01-02 15:04:05"

// ParseLevel maps debug, info, warn/warning and error (any case) to a
// level. Empty input means info.
func ParseLevel(s string) (slog.Level, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "":
		return slog.LevelInfo, nil
	case "warning":
		s = "warn"
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}

// LevelFromEnv reads EnvLevel through getenv. Unknown values fall back to
// info and are reported through the returned error.
func LevelFromEnv(getenv func(string) string) (slog.Level, error) {
	return ParseLevel(getenv(EnvLevel))
}

// New returns a logger writing to w. Levels are colored when w is a
// terminal and NO_COLOR is unset.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(NewHandler(w, &Options{Level: level, Color: wantsColor(w)}))
}

func wantsColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Options configures a Handler.
type Options struct {
	Level slog.Leveler
	Color bool
}

// Handler is a slog.Handler producing one plain-text line per record.
type Handler struct {
	mu        *sync.Mutex
	w         io.Writer
	level     slog.Leveler
	color     bool
	component string
	prefix    string
	attrs     []slog.Attr
}

// NewHandler creates a Handler. A nil opts logs at info without color.
func NewHandler(w io.Writer, opts *Options) *Handler {
	h := &Handler{mu: &sync.Mutex{}, w: w, level: slog.LevelInfo, component: DefaultComponent}
	if opts != nil {
		if opts.Level != nil {
			h.level = opts.Level
		}
		h.color = opts.Color
	}
	return h
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	component := h.component
	var extra []slog.Attr
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "component" && h.prefix == "" {
			component = a.Value.String()
			return true
		}
		extra = append(extra, a)
		return true
	})

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	var b strings.Builder
	b.WriteString(ts.Format(timeLayout))
	b.WriteString(" [")
	b.WriteString(h.levelText(r.Level))
	b.WriteString("] (")
	b.WriteString(component)
	b.WriteString("): ")
	b.WriteString(escapeNewlines(r.Message))
	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	for _, a := range extra {
		writeAttr(&b, h.prefix, a)
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := h.clone()
	for _, a := range attrs {
		if a.Key == "component" && h.prefix == "" {
			nh.component = a.Value.String()
			continue
		}
		if h.prefix != "" {
			a.Key = h.prefix + a.Key
		}
		nh.attrs = append(nh.attrs, a)
	}
	return nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := h.clone()
	nh.prefix = h.prefix + name + "."
	return nh
}

func (h *Handler) clone() *Handler {
	nh := *h
	nh.attrs = append([]slog.Attr(nil), h.attrs...)
	return &nh
}

func (h *Handler) levelText(l slog.Level) string {
	text := l.String()
	if !h.color {
		return text
	}
	var c *color.Color
	switch {
	case l >= slog.LevelError:
		c = color.New(color.FgRed, color.Bold)
	case l >= slog.LevelWarn:
		c = color.New(color.FgYellow)
	case l >= slog.LevelInfo:
		c = color.New(color.FgGreen)
	default:
		c = color.New(color.FgCyan)
	}
	c.EnableColor()
	return c.Sprint(text)
}

// escapeNewlines keeps one record on one line.
func escapeNewlines(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.NewReplacer("\r\n", `\n`, "\n", `\n`, "\r", `\r`).Replace(s)
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(b, prefix+a.Key+".", ga)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(formatValue(a.Value))
}

func formatValue(v slog.Value) string {
	var s string
	switch v.Kind() {
	case slog.KindString:
		s = v.String()
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	default:
		s = fmt.Sprint(v.Any())
	}
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
