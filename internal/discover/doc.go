// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package discover resolves user-supplied root paths and enumerates the
// eligible files beneath them.
package discover
