// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller traverses JSON documents along dotted path expressions to
// extract subdocuments for commands that need deeper inspection.
package driller
