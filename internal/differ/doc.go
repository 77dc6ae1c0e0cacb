// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ computes path-addressed structural differences between two
// decoded JSON documents, and provides the unified whole-document view and
// the interactive record browser built on top of them.
package differ
