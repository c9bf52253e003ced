// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package batch

import "time"

// RunError captures a work item's logical path together with the failure
// that occurred while processing it. A RunError never aborts the processing
// of other work items.
type RunError struct {
	// Path is the logical path of the work item that failed.
	Path string
	// Err is the failure.
	Err error
}

// Error implements the error interface for RunError.
func (e *RunError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying failure.
func (e *RunError) Unwrap() error {
	return e.Err
}

// RunReport is the aggregate result of one batch run. It is produced exactly
// once per Runner.Run invocation and is immutable thereafter.
//
// Invariant: the sum of all counts plus the number of errors equals the
// number of work items processed.
type RunReport struct {
	// Counts maps outcome kind to the number of work items that produced
	// it. Keys are present only for kinds actually observed.
	Counts map[Kind]int
	// Errors holds one entry per work item whose processing failed,
	// sorted by path for reproducible diagnostics.
	Errors []*RunError
	// Elapsed is the wall-clock duration of the whole batch, discovery
	// included.
	Elapsed time.Duration
}

// Total returns the number of work items the report covers.
func (r *RunReport) Total() int {
	n := len(r.Errors)
	for _, c := range r.Counts {
		n += c
	}

	return n
}

// Count returns the number of work items that produced kind k.
func (r *RunReport) Count(k Kind) int {
	return r.Counts[k]
}

// ElapsedMillis returns the batch duration in whole milliseconds.
func (r *RunReport) ElapsedMillis() int64 {
	return r.Elapsed.Milliseconds()
}
