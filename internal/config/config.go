// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import "github.com/spf13/afero"

// FileName is the name of the configuration file discovered in ancestor
// directories of each root.
const FileName = ".stylist.yaml"

// FsFactory is a function that returns an afero filesystem.
// It exists so tests can substitute an in-memory filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Config is the merged formatting configuration applicable to all files
// under one root. It is immutable once loaded and safe to share across
// concurrent operations.
type Config struct {
	// FileExtensions lists the file extensions eligible for formatting.
	FileExtensions []string `yaml:"file-extensions" json:"file-extensions"`
	// IgnoreGlobs lists doublestar patterns, relative to the root, that
	// exclude matching files and directories from discovery.
	IgnoreGlobs []string `yaml:"ignore-globs" json:"ignore-globs"`
	// MaxConsecutiveBlankLines is the maximum run of blank lines kept in a file.
	MaxConsecutiveBlankLines int `yaml:"max-consecutive-blank-lines" json:"max-consecutive-blank-lines"`
	// IndentWidth is the number of spaces a hard tab expands to.
	IndentWidth int `yaml:"indent-width" json:"indent-width"`
	// ExpandTabs controls whether hard tabs in leading whitespace are expanded.
	ExpandTabs bool `yaml:"expand-tabs" json:"expand-tabs"`
	// FinalNewline controls whether files end with exactly one newline.
	FinalNewline bool `yaml:"final-newline" json:"final-newline"`
	// NormalizeLineEndings controls whether CRLF line endings are rewritten to LF.
	NormalizeLineEndings bool `yaml:"normalize-line-endings" json:"normalize-line-endings"`
}

// Default returns the built-in configuration that ancestor config files are
// merged onto.
func Default() *Config {
	return &Config{
		FileExtensions:           []string{".clj", ".cljs", ".cljc", ".edn"},
		IgnoreGlobs:              []string{},
		MaxConsecutiveBlankLines: 2,
		IndentWidth:              2,
		ExpandTabs:               true,
		FinalNewline:             true,
		NormalizeLineEndings:     true,
	}
}
