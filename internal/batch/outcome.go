// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package batch

import (
	"context"

	"github.com/matt-FFFFFF/stylist/internal/config"
)

// Kind classifies the outcome of processing one work item.
type Kind int

const (
	// KindCorrect means the file already matched its reformatted content.
	KindCorrect Kind = iota
	// KindIncorrect means the file differs from its reformatted content.
	// Only the check operation produces this kind.
	KindIncorrect
	// KindFixed means the file was rewritten with its reformatted content.
	// Only the fix operation produces this kind.
	KindFixed
)

// String implements fmt.Stringer for Kind.
func (k Kind) String() string {
	switch k {
	case KindCorrect:
		return "correct"
	case KindIncorrect:
		return "incorrect"
	case KindFixed:
		return "fixed"
	}

	return "unknown"
}

// Outcome is the immutable result of processing one work item.
type Outcome struct {
	// Kind is the outcome classification.
	Kind Kind
	// Debug is an optional low-priority diagnostic, surfaced only in
	// verbose mode.
	Debug string
	// Info is an optional higher-priority payload (e.g. a rendered diff),
	// surfaced whenever present.
	Info string
}

// Operation is the injected per-file behavior. Implementations must be safe
// for concurrent use: one call is made per work item, potentially in
// parallel with calls for other items.
//
// Failures are reported through the error return; the runner isolates them
// per work item and additionally recovers panics, so a misbehaving operation
// cannot abort the batch.
type Operation interface {
	// Name returns the operation's name for logging and reporting.
	Name() string
	// Apply processes the file at path under cfg and returns its outcome.
	Apply(ctx context.Context, cfg *config.Config, path string) (Outcome, error)
}

// WorkItem pairs one discovered file with the merged configuration of its
// root. Each work item is processed by exactly one Operation invocation and
// is never shared across invocations.
type WorkItem struct {
	// Cfg is the configuration of the root this file was discovered under.
	Cfg *config.Config
	// Path is the file's logical path, used for reporting.
	Path string
}
