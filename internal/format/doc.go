// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package format implements the whitespace-discipline formatting engine:
// trailing whitespace removal, blank-line collapsing, leading-tab expansion,
// line-ending normalization and final-newline enforcement. It performs no
// semantic reformatting of Clojure forms.
package format
