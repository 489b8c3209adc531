// Package logging provides the slog setup shared by the CLI, the HTTP server and the roadmap service.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

type contextKey string

const slogAttrs contextKey = "slogAttrs"

// ContextHandler adds attributes stored in a context.Context to every record
// before passing it to the wrapped handler.
type ContextHandler struct {
	handler slog.Handler
}

// NewContextHandler wraps h so that records carry the attributes added with WithAttrs.
func NewContextHandler(h slog.Handler) *ContextHandler {
	return &ContextHandler{handler: h}
}

// Enabled delegates to the wrapped handler.
func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle appends the context attributes to r and forwards it.
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogAttrs).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}

	if err := h.handler.Handle(ctx, r); err != nil {
		return fmt.Errorf("failed to handle log record: %w", err)
	}
	return nil
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{handler: h.handler.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{handler: h.handler.WithGroup(name)}
}

// WithAttrs returns a context whose log records will include attr.
func WithAttrs(ctx context.Context, attr ...slog.Attr) context.Context {
	if existing, ok := ctx.Value(slogAttrs).([]slog.Attr); ok {
		merged := make([]slog.Attr, 0, len(existing)+len(attr))
		merged = append(merged, existing...)
		merged = append(merged, attr...)
		return context.WithValue(ctx, slogAttrs, merged)
	}
	return context.WithValue(ctx, slogAttrs, attr)
}

// WithMember tags every record logged with ctx with the member ID.
func WithMember(ctx context.Context, memberID uuid.UUID) context.Context {
	return WithAttrs(ctx, slog.String("member_id", memberID.String()))
}

// New returns a text logger on w. Verbose lowers the level to debug.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(NewContextHandler(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
