// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the stylist command-line application.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/matt-FFFFFF/stylist"
	"github.com/matt-FFFFFF/stylist/cmd"
	"github.com/matt-FFFFFF/stylist/internal/ctxlog"
	"github.com/matt-FFFFFF/stylist/internal/report"
	"github.com/matt-FFFFFF/stylist/internal/signalbroker"
)

func main() {
	// Anything escaping the command layer is an internal failure, not a
	// usage or data error.
	defer func() {
		if rec := recover(); rec != nil {
			fmt.Fprintf(os.Stderr, "stylist: unhandled failure: %v\n%s", rec, debug.Stack())
			os.Exit(report.ExitInternal)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	cmd.RootCmd.Version = fmt.Sprintf("%s (commit: %s)", stylist.Version, stylist.Commit)

	err := cmd.RootCmd.Run(ctx, os.Args)

	if ctx.Err() != nil {
		ctxlog.Error(ctx, "command terminated due to cancellation", "error", ctx.Err())
		os.Exit(report.ExitUsage)
	}

	if err != nil {
		ctxlog.Error(ctx, "command failed", "error", err)
		os.Exit(report.ExitUsage)
	}
}
