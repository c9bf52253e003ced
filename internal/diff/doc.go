// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package diff renders unified diffs between original and reformatted file
// content, with optional ANSI colorization.
package diff
