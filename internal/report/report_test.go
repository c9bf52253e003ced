// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"testing"
	"time"

	"github.com/matt-FFFFFF/stylist/internal/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		rep  *batch.RunReport
		mode Mode
		want Class
		code int
	}{
		{
			name: "all correct check",
			rep:  &batch.RunReport{Counts: map[batch.Kind]int{batch.KindCorrect: 3}},
			mode: ModeCheck,
			want: ClassSuccess,
			code: ExitSuccess,
		},
		{
			name: "violations found",
			rep:  &batch.RunReport{Counts: map[batch.Kind]int{batch.KindCorrect: 2, batch.KindIncorrect: 1}},
			mode: ModeCheck,
			want: ClassViolations,
			code: ExitViolations,
		},
		{
			name: "fixes applied are informational",
			rep:  &batch.RunReport{Counts: map[batch.Kind]int{batch.KindCorrect: 1, batch.KindFixed: 2}},
			mode: ModeFix,
			want: ClassSuccess,
			code: ExitSuccess,
		},
		{
			name: "errors dominate violations",
			rep: &batch.RunReport{
				Counts: map[batch.Kind]int{batch.KindIncorrect: 1},
				Errors: []*batch.RunError{{Path: "a.clj", Err: errors.New("boom")}},
			},
			mode: ModeCheck,
			want: ClassProcessingErrors,
			code: ExitProcessingErrors,
		},
		{
			name: "errors during fix",
			rep: &batch.RunReport{
				Counts: map[batch.Kind]int{batch.KindFixed: 1},
				Errors: []*batch.RunError{{Path: "a.clj", Err: errors.New("boom")}},
			},
			mode: ModeFix,
			want: ClassProcessingErrors,
			code: ExitProcessingErrors,
		},
		{
			name: "empty report",
			rep:  &batch.RunReport{Counts: map[batch.Kind]int{}},
			mode: ModeCheck,
			want: ClassSuccess,
			code: ExitSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.rep, tt.mode)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.code, got.ExitCode())
		})
	}
}

func TestSummaryCheck(t *testing.T) {
	rep := &batch.RunReport{
		Counts:  map[batch.Kind]int{batch.KindCorrect: 2, batch.KindIncorrect: 1},
		Elapsed: 42 * time.Millisecond,
	}

	assert.Equal(t, "checked 3 files in 42ms: 2 correct, 1 incorrect, 0 errors", Summary(rep, ModeCheck))
}

func TestSummaryFix(t *testing.T) {
	rep := &batch.RunReport{
		Counts:  map[batch.Kind]int{batch.KindCorrect: 1, batch.KindFixed: 2},
		Errors:  []*batch.RunError{{Path: "bad.clj", Err: errors.New("boom")}},
		Elapsed: 7 * time.Millisecond,
	}

	assert.Equal(t, "processed 4 files in 7ms: 1 unchanged, 2 reformatted, 1 errors", Summary(rep, ModeFix))
}

func TestErrsAggregatesAllFailures(t *testing.T) {
	rep := &batch.RunReport{
		Errors: []*batch.RunError{
			{Path: "a.clj", Err: errors.New("unreadable")},
			{Path: "b.clj", Err: errors.New("write failed")},
		},
	}

	err := Errs(rep)
	require.Error(t, err)
	assert.ErrorContains(t, err, "a.clj")
	assert.ErrorContains(t, err, "b.clj")
}

func TestErrsNilWhenClean(t *testing.T) {
	assert.NoError(t, Errs(&batch.RunReport{}))
}
