// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package fix

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/stylist/internal/batch"
	"github.com/matt-FFFFFF/stylist/internal/ctxlog"
	"github.com/matt-FFFFFF/stylist/internal/discover"
	"github.com/matt-FFFFFF/stylist/internal/op"
	"github.com/matt-FFFFFF/stylist/internal/report"
	"github.com/urfave/cli/v3"
)

const jobsFlag = "jobs"

// FixCmd rewrites incorrectly formatted files in place.
var FixCmd = &cli.Command{
	Name:        "fix",
	Usage:       "Reformat the given paths in place",
	ArgsUsage:   " [paths...]",
	Description: "Rewrite every eligible file under the given paths (default: the current directory) whose content differs from its reformatted text. Applied fixes are informational and do not fail the run.",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    jobsFlag,
			Aliases: []string{"j"},
			Usage: "Set the maximum number of files processed concurrently. " +
				"Defaults to the number of CPU cores available.",
			Value: 0,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	jobs := cmd.Int(jobsFlag)
	if jobs < 0 {
		return cli.Exit("--jobs must not be negative", report.ExitUsage)
	}

	roots, err := discover.ResolveRoots(cmd.Args().Slice())
	if err != nil {
		return cli.Exit(err.Error(), report.ExitUsage)
	}

	logger.Debug("roots resolved", "roots", roots)

	runner := batch.NewRunner(jobs)
	runner.Emit = func(item batch.WorkItem, out batch.Outcome) {
		if out.Info != "" {
			fmt.Fprintln(cmd.Writer, out.Info)
		}

		if out.Debug != "" {
			logger.Debug(out.Debug)
		}
	}

	rep, err := runner.Run(ctx, roots, &op.Fix{})
	if err != nil {
		return cli.Exit(err.Error(), report.ExitUsage)
	}

	fmt.Fprintln(cmd.Writer, report.Summary(rep, report.ModeFix))

	if class := report.Classify(rep, report.ModeFix); class == report.ClassProcessingErrors {
		logger.Error("some files could not be processed", "error", report.Errs(rep))
		return cli.Exit(fmt.Sprintf("%d files could not be processed", len(rep.Errors)), class.ExitCode())
	}

	if n := rep.Count(batch.KindFixed); n > 0 {
		fmt.Fprintf(cmd.Writer, "corrected %d files\n", n)
	}

	return nil
}
