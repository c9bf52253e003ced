// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/stylist/internal/batch"
)

// Mode identifies which operation produced a run report.
type Mode int

const (
	// ModeCheck classifies reports produced by the check operation.
	ModeCheck Mode = iota
	// ModeFix classifies reports produced by the fix operation.
	ModeFix
)

// Class is the user-facing severity of a finished run. Every possible run
// report maps to exactly one class.
type Class int

const (
	// ClassSuccess means every file processed cleanly.
	ClassSuccess Class = iota
	// ClassViolations means check found incorrectly formatted files.
	ClassViolations
	// ClassProcessingErrors means one or more files could not be processed.
	ClassProcessingErrors
)

// Exit codes for the process. Usage errors (1) and unhandled top-level
// failures (4) are decided outside the report consumer.
const (
	ExitSuccess          = 0
	ExitUsage            = 1
	ExitViolations       = 2
	ExitProcessingErrors = 3
	ExitInternal         = 4
)

// ExitCode returns the process exit code for the class.
func (c Class) ExitCode() int {
	switch c {
	case ClassViolations:
		return ExitViolations
	case ClassProcessingErrors:
		return ExitProcessingErrors
	}

	return ExitSuccess
}

// Classify maps a run report to its severity class. Processing errors
// dominate; formatting violations only matter for check, since fixed files
// are informational, not failures.
func Classify(rep *batch.RunReport, mode Mode) Class {
	switch {
	case len(rep.Errors) > 0:
		return ClassProcessingErrors
	case mode == ModeCheck && rep.Count(batch.KindIncorrect) > 0:
		return ClassViolations
	default:
		return ClassSuccess
	}
}

// Summary renders the one-line run summary for the console.
func Summary(rep *batch.RunReport, mode Mode) string {
	if mode == ModeFix {
		return fmt.Sprintf("processed %d files in %dms: %d unchanged, %d reformatted, %d errors",
			rep.Total(),
			rep.ElapsedMillis(),
			rep.Count(batch.KindCorrect),
			rep.Count(batch.KindFixed),
			len(rep.Errors))
	}

	return fmt.Sprintf("checked %d files in %dms: %d correct, %d incorrect, %d errors",
		rep.Total(),
		rep.ElapsedMillis(),
		rep.Count(batch.KindCorrect),
		rep.Count(batch.KindIncorrect),
		len(rep.Errors))
}

// Errs aggregates the report's per-file failures into a single error, or nil
// when none occurred.
func Errs(rep *batch.RunReport) error {
	var merr *multierror.Error

	for _, re := range rep.Errors {
		merr = multierror.Append(merr, re)
	}

	return merr.ErrorOrNil()
}
