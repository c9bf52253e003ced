// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"fmt"

	"github.com/TylerBrock/colorjson"
	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/stylist/internal/color"
	cfg "github.com/matt-FFFFFF/stylist/internal/config"
	"github.com/matt-FFFFFF/stylist/internal/discover"
	"github.com/matt-FFFFFF/stylist/internal/report"
	"github.com/urfave/cli/v3"
)

// ConfigCmd prints the merged effective configuration for a path.
var ConfigCmd = &cli.Command{
	Name:        "config",
	Usage:       "Print the merged configuration for a path",
	ArgsUsage:   " [path]",
	Description: "Resolve and print the effective configuration for the given path (default: the current directory), after merging all ancestor config files onto the built-in defaults.",
	Action:      actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) > 1 {
		return cli.Exit("config takes at most one path", report.ExitUsage)
	}

	roots, err := discover.ResolveRoots(args)
	if err != nil {
		return cli.Exit(err.Error(), report.ExitUsage)
	}

	merged, err := cfg.Load(roots[0])
	if err != nil {
		return cli.Exit(err.Error(), report.ExitUsage)
	}

	// Round-trip through YAML so the printed keys match the config file
	// syntax users write.
	data, err := yaml.Marshal(merged)
	if err != nil {
		return cli.Exit(err.Error(), report.ExitInternal)
	}

	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return cli.Exit(err.Error(), report.ExitInternal)
	}

	f := colorjson.NewFormatter()
	f.Indent = 2
	f.DisabledColor = cmd.Bool("no-color") || !color.Enabled()

	out, err := f.Marshal(m)
	if err != nil {
		return cli.Exit(err.Error(), report.ExitInternal)
	}

	fmt.Fprintln(cmd.Writer, string(out))

	return nil
}
