// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package op

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/stylist/internal/batch"
	"github.com/matt-FFFFFF/stylist/internal/config"
	"github.com/matt-FFFFFF/stylist/internal/diff"
	"github.com/matt-FFFFFF/stylist/internal/format"
	"github.com/spf13/afero"
)

// ErrReadFile is returned when a file's content cannot be read.
var ErrReadFile = errors.New("failed to read file")

var _ batch.Operation = (*Check)(nil)

// Check verifies a file's formatting without ever writing to it. A file
// whose content differs from its reformatted text yields an incorrect
// outcome carrying a rendered unified diff.
type Check struct {
	// Color enables ANSI colorization of rendered diffs.
	Color bool
}

// Name implements batch.Operation.
func (c *Check) Name() string {
	return "check"
}

// Apply implements batch.Operation.
func (c *Check) Apply(_ context.Context, cfg *config.Config, path string) (batch.Outcome, error) {
	fs := config.FsFactory()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return batch.Outcome{}, fmt.Errorf("%w %q: %w", ErrReadFile, path, err)
	}

	original := string(data)

	revised := format.Reformat(cfg, original)
	if revised == original {
		return batch.Outcome{
			Kind:  batch.KindCorrect,
			Debug: "already formatted: " + path,
		}, nil
	}

	rendered, err := diff.Render(path, original, revised)
	if err != nil {
		return batch.Outcome{}, err
	}

	if c.Color {
		rendered = diff.Colorize(rendered)
	}

	return batch.Outcome{
		Kind: batch.KindIncorrect,
		Info: rendered,
	}, nil
}
