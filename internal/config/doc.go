// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads the formatting configuration for a root path.
// Configuration is resolved once per root, not once per file: the merged
// result is shared, read-only, by every file discovered under that root.
package config
