// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-based logger built on the slog package.
// The logger is carried in a context.Context so every component logs through
// the same handler without ambient globals. The log level is set from an
// environment variable derived from the executable name (e.g. a binary named
// "stylist" reads "STYLIST_LOG_LEVEL") and may be raised at runtime through
// LevelVar.
package ctxlog
