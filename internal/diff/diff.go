// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package diff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matt-FFFFFF/stylist/internal/color"
	"github.com/pmezard/go-difflib/difflib"
)

// ErrRender is returned when the unified diff cannot be produced.
var ErrRender = errors.New("failed to render diff")

const contextLines = 3

// Render returns a unified diff between the original and revised content of
// the file at path.
func Render(path, original, revised string) (string, error) {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(revised),
		FromFile: path,
		ToFile:   path,
		Context:  contextLines,
	}

	out, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", fmt.Errorf("%w for %q: %w", ErrRender, path, err)
	}

	return out, nil
}

// Colorize applies ANSI colors to a rendered unified diff: removals red,
// additions green, hunk headers cyan.
func Colorize(rendered string) string {
	lines := strings.Split(rendered, "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			lines[i] = color.Colorize(line, color.Bold)
		case strings.HasPrefix(line, "@@"):
			lines[i] = color.Colorize(line, color.FgCyan)
		case strings.HasPrefix(line, "-"):
			lines[i] = color.Colorize(line, color.FgRed)
		case strings.HasPrefix(line, "+"):
			lines[i] = color.Colorize(line, color.FgGreen)
		}
	}

	return strings.Join(lines, "\n")
}
