package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestContextHandler_AddsContextAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	memberID := uuid.MustParse("8d3c2a4e-1f0b-4c5e-9a7d-2b6f8e1c3d4a")
	ctx := WithMember(context.Background(), memberID)
	ctx = WithAttrs(ctx, slog.String("path", "/members"))

	logger.InfoContext(ctx, "generated roadmap")

	out := buf.String()
	assert.Contains(t, out, "msg=\"generated roadmap\"")
	assert.Contains(t, out, "member_id="+memberID.String())
	assert.Contains(t, out, "path=/members")
}

func TestWithAttrs_DoesNotLeakBetweenContexts(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	base := WithAttrs(context.Background(), slog.String("a", "1"))
	_ = WithAttrs(base, slog.String("b", "2"))

	logger.InfoContext(base, "base only")
	assert.Contains(t, buf.String(), "a=1")
	assert.NotContains(t, buf.String(), "b=2")
}

func TestNew_Verbose(t *testing.T) {
	var quiet, verbose bytes.Buffer

	New(&quiet, false).Debug("hidden")
	New(&verbose, true).Debug("shown")

	assert.Empty(t, quiet.String())
	assert.Contains(t, verbose.String(), "shown")
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}
