// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package check

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/stylist/internal/batch"
	"github.com/matt-FFFFFF/stylist/internal/color"
	"github.com/matt-FFFFFF/stylist/internal/ctxlog"
	"github.com/matt-FFFFFF/stylist/internal/discover"
	"github.com/matt-FFFFFF/stylist/internal/op"
	"github.com/matt-FFFFFF/stylist/internal/report"
	"github.com/urfave/cli/v3"
)

const jobsFlag = "jobs"

// CheckCmd verifies formatting without modifying any file.
var CheckCmd = &cli.Command{
	Name:        "check",
	Usage:       "Verify the formatting of the given paths",
	ArgsUsage:   " [paths...]",
	Description: "Check every eligible file under the given paths (default: the current directory) and print a unified diff for each file that is not correctly formatted. No file is ever modified.",
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

	useColor := color.Enabled() && !cmd.Bool("no-color")

	rep, err := runner.Run(ctx, roots, &op.Check{Color: useColor})
	if err != nil {
		return cli.Exit(err.Error(), report.ExitUsage)
	}

	fmt.Fprintln(cmd.Writer, report.Summary(rep, report.ModeCheck))

	class := report.Classify(rep, report.ModeCheck)
	switch class {
	case report.ClassProcessingErrors:
		logger.Error("some files could not be processed", "error", report.Errs(rep))
		return cli.Exit(fmt.Sprintf("%d files could not be processed", len(rep.Errors)), class.ExitCode())
	case report.ClassViolations:
		return cli.Exit(fmt.Sprintf("%d files are formatted incorrectly", rep.Count(batch.KindIncorrect)), class.ExitCode())
	}

	return nil
}
