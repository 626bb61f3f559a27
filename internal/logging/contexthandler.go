package logging

import (
	"context"
	"log/slog"
)

// ContextProvider returns attributes read at log time, such as the current frame.
type ContextProvider func() []slog.Attr

// ContextHandler appends the provider's attributes to every record. An
// attribute whose key the record already carries is skipped, so a call that
// logs its own frame number is not tagged twice.
type ContextHandler struct {
	inner    slog.Handler
	provider ContextProvider
}

func NewContextHandler(inner slog.Handler, provider ContextProvider) *ContextHandler {
	return &ContextHandler{inner: inner, provider: provider}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.provider == nil {
		return h.inner.Handle(ctx, r)
	}
	extra := h.provider()
	if len(extra) == 0 {
		return h.inner.Handle(ctx, r)
	}

	present := make(map[string]struct{}, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		present[a.Key] = struct{}{}
		return true
	})
	for _, a := range extra {
		if _, ok := present[a.Key]; !ok {
			r.AddAttrs(a)
		}
	}
	return h.inner.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{inner: h.inner.WithAttrs(attrs), provider: h.provider}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &ContextHandler{inner: h.inner.WithGroup(name), provider: h.provider}
}
