// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(NewPrettyHandler(&slog.HandlerOptions{
		Level: slog.LevelDebug,
	},
		WithDestinationWriter(buf),
		WithColour(false),
	))
}

func TestLoggerFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newTestLogger(buf)

	ctx := New(context.Background(), logger)
	assert.Same(t, logger, Logger(ctx))
}

func TestLoggerFallsBackToDefault(t *testing.T) {
	assert.Same(t, DefaultLogger, Logger(context.Background()))
}

func TestDebugWritesMessageAndAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := New(context.Background(), newTestLogger(buf))

	Debug(ctx, "processing file", "path", "a.clj")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "DEBUG:")
	assert.Contains(t, out, "processing file")
	assert.Contains(t, out, "a.clj")
}

func TestNilLoggerUsesDefault(t *testing.T) {
	ctx := New(context.Background(), nil)
	assert.Same(t, DefaultLogger, Logger(ctx))
}
