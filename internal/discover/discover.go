// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package discover

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/matt-FFFFFF/stylist/internal/config"
	"github.com/spf13/afero"
)

var (
	// ErrResolveRoot is returned when a root path argument cannot be canonicalized.
	ErrResolveRoot = errors.New("failed to resolve root path")
	// ErrWalkRoot is returned when traversal of a root directory fails.
	ErrWalkRoot = errors.New("failed to walk root")
)

// ResolveRoots canonicalizes the user-supplied path arguments, resolving
// symbolic links and collapsing relative segments. If paths is empty, the
// current working directory is the single root. The returned order matches
// the argument order.
//
// Any path that cannot be resolved fails the whole invocation: an invalid
// root is a usage error, not a data error, so it is not isolated the way
// per-file failures are.
func ResolveRoots(paths []string) ([]string, error) {
	if len(paths) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrResolveRoot, err)
		}

		paths = []string{wd}
	}

	roots := make([]string, 0, len(paths))

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrResolveRoot, p, err)
		}

		resolved, err := filepath.EvalSymlinks(abs)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrResolveRoot, p, err)
		}

		roots = append(roots, resolved)
	}

	return roots, nil
}

// Discover enumerates the files to process under root. A root that is a
// single file yields exactly that file. A directory root yields every
// eligible file found by recursive traversal: the file's extension must be
// in cfg.FileExtensions and its root-relative path must not match any of
// cfg.IgnoreGlobs. Hidden directories are not descended into.
//
// The result is sorted for stable display; callers must not rely on the
// order for correctness.
func Discover(cfg *config.Config, root string) ([]string, error) {
	fs := config.FsFactory()

	info, err := fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrWalkRoot, root, err)
	}

	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string

	err = afero.Walk(fs, root, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		rel = filepath.ToSlash(rel)

		if fi.IsDir() {
			if path == root {
				return nil
			}

			if strings.HasPrefix(filepath.Base(path), ".") || ignored(cfg, rel) {
				return filepath.SkipDir
			}

			return nil
		}

		if !eligible(cfg, path) || ignored(cfg, rel) {
			return nil
		}

		files = append(files, path)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrWalkRoot, root, err)
	}

	slices.Sort(files)

	return files, nil
}

func eligible(cfg *config.Config, path string) bool {
	return slices.Contains(cfg.FileExtensions, filepath.Ext(path))
}

func ignored(cfg *config.Config, rel string) bool {
	for _, glob := range cfg.IgnoreGlobs {
		if ok, err := doublestar.Match(glob, rel); err == nil && ok {
			return true
		}
	}

	return false
}
