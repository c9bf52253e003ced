// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package batch turns a set of root paths into a parallel stream of work
// items and dispatches each through a caller-supplied per-file operation.
// Failures are isolated at the work-item boundary and aggregated at the
// batch boundary; deciding user-facing severity is left to the command
// layer. The runner returns data and never terminates the process or prints
// to the console.
package batch
