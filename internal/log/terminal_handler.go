package log

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	ansiReset  = "\033[0m"
	ansiDim    = "\033[2m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

// terminalHandler renders records as single coloured lines for
// interactive use, level tag first so severities line up in a column:
//
//	INFO  15:04:05 matched jobs user_id=user_17... count=12
//
// Attributes bound via WithAttrs are rendered once into a prefix string
// instead of being re-walked on every record.
type terminalHandler struct {
	out    io.Writer
	level  slog.Leveler
	prefix string
	group  string
	mu     *sync.Mutex
}

func newTerminalHandler(w io.Writer, opts *slog.HandlerOptions) *terminalHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &terminalHandler{
		out:   w,
		level: level,
		mu:    &sync.Mutex{},
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *terminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle renders a record as one coloured line and writes it.
func (h *terminalHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.Grow(192)

	style, tag := levelTag(r.Level)
	b.WriteString(style)
	b.WriteString(tag)
	b.WriteString(ansiReset)
	b.WriteByte(' ')

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	b.WriteString(ansiDim)
	b.WriteString(ts.Format(time.TimeOnly))
	b.WriteString(ansiReset)
	b.WriteByte(' ')

	b.WriteString(r.Message)
	b.WriteString(h.prefix)

	r.Attrs(func(a slog.Attr) bool {
		renderAttr(&b, a, h.group)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

// WithAttrs returns a handler that carries attrs, pre-rendered, on every
// subsequent record.
func (h *terminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(h.prefix)
	for _, a := range attrs {
		renderAttr(&b, a, h.group)
	}
	clone := *h
	clone.prefix = b.String()
	return &clone
}

// WithGroup returns a handler that dot-prefixes subsequent attribute
// keys with name.
func (h *terminalHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.group = h.group + name + "."
	return &clone
}

func levelTag(level slog.Level) (style, tag string) {
	switch {
	case level < slog.LevelInfo:
		return ansiDim, "DEBUG"
	case level < slog.LevelWarn:
		return ansiGreen, "INFO "
	case level < slog.LevelError:
		return ansiYellow, "WARN "
	default:
		return ansiRed + ansiBold, "ERROR"
	}
}

func renderAttr(b *strings.Builder, a slog.Attr, group string) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		sub := group
		if a.Key != "" {
			sub = group + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			renderAttr(b, ga, sub)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(keyStyle(a.Key))
	b.WriteString(group)
	b.WriteString(a.Key)
	b.WriteString(ansiReset)
	b.WriteByte('=')
	b.WriteString(renderValue(a.Value))
}

// keyStyle picks the key colour; error-ish keys get red so failures
// stand out when scanning a scrollback.
func keyStyle(key string) string {
	if key == "error" || key == "err" {
		return ansiRed
	}
	return ansiCyan
}

func renderValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if needsQuoting(s) {
			return strconv.Quote(s)
		}
		return s
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	default:
		return v.String()
	}
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r <= ' ' || r == '"' || r == '=' || r == 0x7f {
			return true
		}
	}
	return false
}
