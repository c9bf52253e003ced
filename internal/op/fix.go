// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package op

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/stylist/internal/batch"
	"github.com/matt-FFFFFF/stylist/internal/config"
	"github.com/matt-FFFFFF/stylist/internal/format"
	"github.com/spf13/afero"
)

// ErrWriteFile is returned when a file's reformatted content cannot be written.
var ErrWriteFile = errors.New("failed to write file")

var _ batch.Operation = (*Fix)(nil)

// Fix rewrites a file in place when its content differs from the reformatted
// text. The overwrite is not transactional: a crash mid-write may leave a
// partially written file. It is not retried.
type Fix struct{}

// Name implements batch.Operation.
func (f *Fix) Name() string {
	return "fix"
}

// Apply implements batch.Operation.
func (f *Fix) Apply(_ context.Context, cfg *config.Config, path string) (batch.Outcome, error) {
	fs := config.FsFactory()

	info, err := fs.Stat(path)
	if err != nil {
		return batch.Outcome{}, fmt.Errorf("%w %q: %w", ErrReadFile, path, err)
	}

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

	if err := afero.WriteFile(fs, path, []byte(revised), info.Mode().Perm()); err != nil {
		return batch.Outcome{}, fmt.Errorf("%w %q: %w", ErrWriteFile, path, err)
	}

	return batch.Outcome{
		Kind: batch.KindFixed,
		Info: "reformatted " + path,
	}, nil
}
