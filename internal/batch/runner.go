// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/matt-FFFFFF/stylist/internal/config"
	"github.com/matt-FFFFFF/stylist/internal/ctxlog"
	"github.com/matt-FFFFFF/stylist/internal/discover"
	"golang.org/x/sync/errgroup"
)

// ErrOperationPanic is the failure recorded when an operation panics instead
// of returning an error.
var ErrOperationPanic = errors.New("operation panicked")

// Runner executes an Operation across every file discovered under a set of
// roots and aggregates the results into a RunReport.
//
// Configuration loading and file discovery are injected so tests can
// substitute them; the zero values fall back to the real collaborators.
type Runner struct {
	// Workers bounds the number of concurrent operation invocations.
	// Zero or negative selects runtime.NumCPU().
	Workers int
	// LoadConfig resolves the merged configuration for one root.
	LoadConfig func(root string) (*config.Config, error)
	// Discover enumerates the files to process under one root.
	Discover func(cfg *config.Config, root string) ([]string, error)
	// Emit, when set, is called once per successful outcome. Calls are
	// serialized, so emitted output is never interleaved. The runner
	// itself never writes to the console; surfacing outcomes is the
	// caller's policy.
	Emit func(item WorkItem, out Outcome)
}

// NewRunner returns a Runner wired to the real configuration loader and file
// discoverer, with the given worker bound.
func NewRunner(workers int) *Runner {
	return &Runner{
		Workers:    workers,
		LoadConfig: config.Load,
		Discover:   discover.Discover,
	}
}

// Run executes op for every file discovered under roots and returns the
// aggregated report.
//
// Per-root configuration loading and discovery run concurrently across
// roots; any failure there is fatal for the whole run, because a bad root or
// a malformed config file indicates misuse rather than a data-level fault.
// Operation execution is fanned out across a bounded worker pool; a failure
// there is captured as a RunError for that work item only, and the run
// always waits for every dispatched item to settle before aggregating.
func (r *Runner) Run(ctx context.Context, roots []string, op Operation) (*RunReport, error) {
	start := time.Now()
	logger := ctxlog.Logger(ctx).With("operation", op.Name())

	items, err := r.gather(ctx, roots)
	if err != nil {
		return nil, err
	}

	logger.Debug("work items enumerated", "roots", len(roots), "files", len(items))

	type slot struct {
		out Outcome
		err error
	}

	slots := make([]slot, len(items))

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if workers > len(items) {
		workers = len(items)
	}

	idxCh := make(chan int)
	wg := &sync.WaitGroup{}

	emitMu := &sync.Mutex{}

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range idxCh {
				out, err := r.process(ctx, op, items[i])
				slots[i] = slot{out: out, err: err}

				if err != nil || r.Emit == nil {
					continue
				}

				emitMu.Lock()
				r.Emit(items[i], out)
				emitMu.Unlock()
			}
		}()
	}

	for i := range items {
		idxCh <- i
	}

	close(idxCh)
	wg.Wait()

	rep := &RunReport{Counts: map[Kind]int{}}

	for i, s := range slots {
		if s.err != nil {
			rep.Errors = append(rep.Errors, &RunError{Path: items[i].Path, Err: s.err})
			continue
		}

		rep.Counts[s.out.Kind]++
	}

	slices.SortFunc(rep.Errors, func(a, b *RunError) int {
		return strings.Compare(a.Path, b.Path)
	})

	rep.Elapsed = time.Since(start)

	logger.Debug("batch complete",
		"total", rep.Total(),
		"errors", len(rep.Errors),
		"elapsedMs", rep.ElapsedMillis())

	return rep, nil
}

// gather loads each root's configuration and enumerates its files,
// concurrently across roots. Every file under a root shares that root's
// configuration value.
func (r *Runner) gather(ctx context.Context, roots []string) ([]WorkItem, error) {
	perRoot := make([][]WorkItem, len(roots))

	g, gctx := errgroup.WithContext(ctx)

	for i, root := range roots {
		g.Go(func() error {
			cfg, err := r.LoadConfig(root)
			if err != nil {
				return err
			}

			paths, err := r.Discover(cfg, root)
			if err != nil {
				return err
			}

			items := make([]WorkItem, 0, len(paths))
			for _, p := range paths {
				items = append(items, WorkItem{Cfg: cfg, Path: p})
			}

			perRoot[i] = items

			ctxlog.Debug(gctx, "root enumerated", "root", root, "files", len(paths))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return slices.Concat(perRoot...), nil
}

// process invokes op for one work item, converting a panic into an error so
// failure isolation holds even for misbehaving operations.
func (r *Runner) process(ctx context.Context, op Operation, item WorkItem) (out Outcome, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrOperationPanic, rec)
		}
	}()

	ctxlog.Debug(ctx, "processing file", "path", item.Path)

	return op.Apply(ctx, item.Cfg, item.Path)
}
