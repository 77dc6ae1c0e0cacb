// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders diff records in the formats selected by command
// flags: colored text with inline string highlighting, json, or yaml.
package output
