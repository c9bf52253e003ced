// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/matt-FFFFFF/stylist/cmd/check"
	"github.com/matt-FFFFFF/stylist/cmd/config"
	"github.com/matt-FFFFFF/stylist/cmd/fix"
	"github.com/matt-FFFFFF/stylist/cmd/version"
	"github.com/matt-FFFFFF/stylist/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

const (
	// NoColorFlag disables colorized output.
	NoColorFlag = "no-color"
	// VerboseFlag enables debug-level logging.
	VerboseFlag = "verbose"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		check.CheckCmd,
		fix.FixCmd,
		config.ConfigCmd,
		version.VersionCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "stylist",
	Description: `Stylist keeps the whitespace of Clojure source trees in order. It checks
or fixes formatting across many files concurrently, tolerating per-file
failures, and reports an aggregate result that drives the exit code.`,
	Usage:     "stylist check [paths...]",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:       NoColorFlag,
			Usage:      "Disable diff and output colorization",
			Value:      false,
		},
		&cli.BoolFlag{
			Name:       VerboseFlag,
			Aliases:    []string{"v"},
			Usage:      "Enable debug-level logging",
			Value:      false,
		},
	},
	Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		if cmd.Bool(VerboseFlag) {
			ctxlog.LevelVar.Set(slog.LevelDebug)
		}

		return ctx, nil
	},
	EnableShellCompletion: true,
}
