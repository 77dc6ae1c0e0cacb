// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import "github.com/jcmp/jcmp/internal/jsonval"

// Kind classifies one comparison outcome.
type Kind int

const (
	Added Kind = iota
	Removed
	Modified
	Equal
)

// String returns the lowercase name of the kind, as used in output and in
// the --only flag.
func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	case Equal:
		return "equal"
	default:
		return "unknown"
	}
}

// ParseKind resolves a kind name as accepted by the --only flag.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "added":
		return Added, true
	case "removed":
		return Removed, true
	case "modified":
		return Modified, true
	case "equal":
		return Equal, true
	default:
		return 0, false
	}
}

// RootPath is the path reported when the two top-level values are themselves
// the terminal comparison.
const RootPath = "root"

// Record is one path-addressed comparison outcome. Old is nil for Added and
// New is nil for Removed; both are set for Modified and Equal.
type Record struct {
	Path string
	Kind Kind
	Old  *jsonval.Value
	New  *jsonval.Value
}

// StringPair reports whether the record is a modified string-to-string
// change, the only case the inline highlighter applies to.
func (r Record) StringPair() bool {
	return r.Kind == Modified &&
		r.Old != nil && r.Old.Kind() == jsonval.String &&
		r.New != nil && r.New.Kind() == jsonval.String
}
