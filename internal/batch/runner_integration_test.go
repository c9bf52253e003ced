// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package batch_test

import (
	"context"
	"testing"

	"github.com/matt-FFFFFF/stylist/internal/batch"
	"github.com/matt-FFFFFF/stylist/internal/config"
	"github.com/matt-FFFFFF/stylist/internal/discover"
	"github.com/matt-FFFFFF/stylist/internal/op"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const (
	formattedSrc   = "(ns a)\n\n(def x 1)\n"
	unformattedSrc = "(ns b)\n\n\n\n(def y 2)\n"
	reformattedSrc = "(ns b)\n\n\n(def y 2)\n"
)

func stubFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	stubs := gostub.Stub(&config.FsFactory, func() afero.Fs { return fs })
	t.Cleanup(stubs.Reset)

	return fs
}

func TestCheckThenFixScenario(t *testing.T) {
	defer goleak.VerifyNone(t)

	fs := stubFs(t, map[string]string{
		"/proj/a.clj": formattedSrc,
		"/proj/b.clj": unformattedSrc,
	})

	ctx := context.Background()
	runner := batch.NewRunner(2)

	rep, err := runner.Run(ctx, []string{"/proj"}, &op.Check{})
	require.NoError(t, err)

	assert.Equal(t, map[batch.Kind]int{
		batch.KindCorrect:   1,
		batch.KindIncorrect: 1,
	}, rep.Counts)
	assert.Empty(t, rep.Errors)

	// check must not have touched anything
	after, err := afero.ReadFile(fs, "/proj/b.clj")
	require.NoError(t, err)
	assert.Equal(t, unformattedSrc, string(after))

	rep, err = runner.Run(ctx, []string{"/proj"}, &op.Fix{})
	require.NoError(t, err)

	assert.Equal(t, map[batch.Kind]int{
		batch.KindCorrect: 1,
		batch.KindFixed:   1,
	}, rep.Counts)

	after, err = afero.ReadFile(fs, "/proj/b.clj")
	require.NoError(t, err)
	assert.Equal(t, reformattedSrc, string(after))

	// a second fix run finds nothing left to do
	rep, err = runner.Run(ctx, []string{"/proj"}, &op.Fix{})
	require.NoError(t, err)
	assert.Equal(t, map[batch.Kind]int{batch.KindCorrect: 2}, rep.Counts)
}

func TestFileVanishingBetweenDiscoveryAndProcessing(t *testing.T) {
	defer goleak.VerifyNone(t)

	stubFs(t, map[string]string{
		"/proj/a.clj": formattedSrc,
		"/proj/b.clj": formattedSrc,
	})

	runner := batch.NewRunner(2)
	runner.Discover = func(cfg *config.Config, root string) ([]string, error) {
		paths, err := discover.Discover(cfg, root)
		if err != nil {
			return nil, err
		}
		// simulate a file deleted after discovery
		return append(paths, "/proj/ghost.clj"), nil
	}

	rep, err := runner.Run(context.Background(), []string{"/proj"}, &op.Check{})
	require.NoError(t, err)

	require.Len(t, rep.Errors, 1)
	assert.Equal(t, "/proj/ghost.clj", rep.Errors[0].Path)
	assert.ErrorIs(t, rep.Errors[0], op.ErrReadFile)
	assert.Equal(t, 2, rep.Count(batch.KindCorrect))
	assert.Equal(t, 3, rep.Total())
}

func TestPerRootConfigGranularity(t *testing.T) {
	defer goleak.VerifyNone(t)

	fs := stubFs(t, map[string]string{
		"/one/.stylist.yaml": "max-consecutive-blank-lines: 0\n",
		"/one/a.clj":         "(ns a)\n\n(def x 1)\n",
		"/two/b.clj":         "(ns b)\n\n(def y 2)\n",
	})

	runner := batch.NewRunner(2)

	rep, err := runner.Run(context.Background(), []string{"/one", "/two"}, &op.Fix{})
	require.NoError(t, err)

	assert.Equal(t, map[batch.Kind]int{
		batch.KindCorrect: 1,
		batch.KindFixed:   1,
	}, rep.Counts, "only the root with the stricter config gets rewritten")

	after, err := afero.ReadFile(fs, "/one/a.clj")
	require.NoError(t, err)
	assert.Equal(t, "(ns a)\n(def x 1)\n", string(after))
}
