// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package report interprets a finished batch run: it maps the aggregated
// counts and errors to a severity class, a process exit code and console
// messages. The mapping is deterministic and total.
package report
