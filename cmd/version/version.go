// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package version

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/stylist"
	"github.com/urfave/cli/v3"
)

// VersionCmd prints the version string.
var VersionCmd = &cli.Command{
	Name:  "version",
	Usage: "Print version information",
	Action: func(_ context.Context, cmd *cli.Command) error {
		fmt.Fprintf(cmd.Writer, "stylist %s (commit: %s)\n", stylist.Version, stylist.Commit)
		return nil
	},
}
