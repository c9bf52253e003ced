// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color provides ANSI escape code helpers for terminal output.
// Colorize applies codes unconditionally; Enabled reports whether color
// output is appropriate for stdout, honouring the NO_COLOR and FORCE_COLOR
// environment variables and falling back to terminal detection via the
// golang.org/x/term package. Components that render colored output take the
// decision as an explicit parameter rather than consulting this package
// ambiently.
package color
