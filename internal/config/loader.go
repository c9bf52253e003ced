// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

var (
	// ErrStatPath is returned when the path to load configuration for cannot be inspected.
	ErrStatPath = errors.New("failed to stat path")
	// ErrReadConfigFile is returned when a discovered configuration file cannot be read.
	ErrReadConfigFile = errors.New("failed to read config file")
	// ErrParseConfigFile is returned when a discovered configuration file cannot be parsed.
	ErrParseConfigFile = errors.New("failed to parse config file")
)

// fileConfig mirrors Config with pointer fields so that a partial file only
// overrides the keys it actually sets.
type fileConfig struct {
	FileExtensions           *[]string `yaml:"file-extensions"`
	IgnoreGlobs              *[]string `yaml:"ignore-globs"`
	MaxConsecutiveBlankLines *int      `yaml:"max-consecutive-blank-lines"`
	IndentWidth              *int      `yaml:"indent-width"`
	ExpandTabs               *bool     `yaml:"expand-tabs"`
	FinalNewline             *bool     `yaml:"final-newline"`
	NormalizeLineEndings     *bool     `yaml:"normalize-line-endings"`
}

// Load returns the merged configuration applicable to path.
//
// Configuration files named after FileName are discovered in the directory
// containing path (or path itself, if it is a directory) and every ancestor
// up to the filesystem root. They are merged onto Default, outermost ancestor
// first, so the file nearest to path wins.
//
// The merge is all-or-nothing: if any discovered file cannot be read or
// parsed, Load fails without returning a partially-merged configuration. All
// broken files are reported together.
func Load(path string) (*Config, error) {
	fs := FsFactory()

	info, err := fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrStatPath, path, err)
	}

	dir := path
	if !info.IsDir() {
		dir = filepath.Dir(path)
	}

	files, err := ancestorConfigFiles(fs, dir)
	if err != nil {
		return nil, err
	}

	cfg := Default()

	var merr *multierror.Error

	// files is ordered nearest-first; apply outermost-first so closer
	// files override.
	for i := len(files) - 1; i >= 0; i-- {
		data, err := afero.ReadFile(fs, files[i])
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%w %q: %w", ErrReadConfigFile, files[i], err))
			continue
		}

		part := fileConfig{}
		if err := yaml.Unmarshal(data, &part); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%w %q: %w", ErrParseConfigFile, files[i], err))
			continue
		}

		apply(cfg, &part)
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ancestorConfigFiles returns the config files found from dir up to the
// filesystem root, nearest directory first.
func ancestorConfigFiles(fs afero.Fs, dir string) ([]string, error) {
	var files []string

	for d := dir; ; {
		name := filepath.Join(d, FileName)

		ok, err := afero.Exists(fs, name)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrStatPath, name, err)
		}

		if ok {
			files = append(files, name)
		}

		parent := filepath.Dir(d)
		if parent == d {
			break
		}

		d = parent
	}

	return files, nil
}

func apply(cfg *Config, part *fileConfig) {
	if part.FileExtensions != nil {
		cfg.FileExtensions = *part.FileExtensions
	}

	if part.IgnoreGlobs != nil {
		cfg.IgnoreGlobs = *part.IgnoreGlobs
	}

	if part.MaxConsecutiveBlankLines != nil {
		cfg.MaxConsecutiveBlankLines = *part.MaxConsecutiveBlankLines
	}

	if part.IndentWidth != nil {
		cfg.IndentWidth = *part.IndentWidth
	}

	if part.ExpandTabs != nil {
		cfg.ExpandTabs = *part.ExpandTabs
	}

	if part.FinalNewline != nil {
		cfg.FinalNewline = *part.FinalNewline
	}

	if part.NormalizeLineEndings != nil {
		cfg.NormalizeLineEndings = *part.NormalizeLineEndings
	}
}
