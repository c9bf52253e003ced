// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package op implements the per-file operations dispatched by the batch
// runner: check (read-only verification) and fix (in-place rewrite). Both
// compare a file's content with its reformatted text; check never produces a
// fixed outcome and fix never produces an incorrect one.
package op
