// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package format

import (
	"strings"

	"github.com/matt-FFFFFF/stylist/internal/config"
)

// Reformat returns src with the whitespace rules from cfg applied. It is a
// pure function: the same input and configuration always produce the same
// output, and reformatting its own output is a no-op.
func Reformat(cfg *config.Config, src string) string {
	if src == "" {
		return src
	}

	s := src
	if cfg.NormalizeLineEndings {
		s = strings.ReplaceAll(s, "\r\n", "\n")
	}

	lines := strings.Split(s, "\n")

	for i, line := range lines {
		if cfg.ExpandTabs {
			line = expandTabs(line, cfg.IndentWidth)
		}

		lines[i] = strings.TrimRight(line, " \t")
	}

	lines = collapseBlankRuns(lines, cfg.MaxConsecutiveBlankLines)
	lines = trimEdgeBlanks(lines)

	out := strings.Join(lines, "\n")

	if cfg.FinalNewline && out != "" {
		out += "\n"
	}

	return out
}

// expandTabs replaces hard tabs in the leading whitespace of line with
// width spaces each. Tabs after the first non-blank character are kept, as
// they may be significant inside string literals.
func expandTabs(line string, width int) string {
	if width <= 0 {
		return line
	}

	indent := 0
	for indent < len(line) && (line[indent] == ' ' || line[indent] == '\t') {
		indent++
	}

	lead := strings.ReplaceAll(line[:indent], "\t", strings.Repeat(" ", width))

	return lead + line[indent:]
}

// collapseBlankRuns limits runs of blank lines to limit. A negative limit
// keeps all blank lines.
func collapseBlankRuns(lines []string, limit int) []string {
	if limit < 0 {
		return lines
	}

	out := make([]string, 0, len(lines))
	blanks := 0

	for _, line := range lines {
		if line == "" {
			blanks++
			if blanks > limit {
				continue
			}
		} else {
			blanks = 0
		}

		out = append(out, line)
	}

	return out
}

// trimEdgeBlanks removes blank lines at the start and end of the file.
func trimEdgeBlanks(lines []string) []string {
	start := 0
	for start < len(lines) && lines[start] == "" {
		start++
	}

	end := len(lines)
	for end > start && lines[end-1] == "" {
		end--
	}

	return lines[start:end]
}
