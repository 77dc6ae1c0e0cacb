// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package jsonval models decoded JSON documents as an immutable tagged value
// tree with insertion-ordered objects, and provides the text decoder that
// produces them.
package jsonval
