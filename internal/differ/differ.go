// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"strconv"

	"github.com/jcmp/jcmp/internal/jsonval"
)

// Compare walks two decoded documents in lock-step and returns one record per
// terminal comparison, in walk order. Containers never get a record of their
// own; they either recurse (both sides composite) or are compared as opaque
// values (one side scalar). Arrays are keyed by their indices as strings, so
// a reordered array reports per-index changes rather than moves.
//
// Compare is pure and total over decoded values; it never fails.
func Compare(a, b jsonval.Value) []Record {
	return compare(a, b, "", nil)
}

func compare(a, b jsonval.Value, path string, out []Record) []Record {
	// Scalar or type-mismatch base case. Null is a scalar here even though
	// it sits where an object could; without that, null vs {} would recurse.
	if !a.Composite() || !b.Composite() {
		return append(out, terminal(a, b, path))
	}

	for _, key := range unionKeys(a, b) {
		childPath := key
		if path != "" {
			childPath = path + "." + key
		}

		av, inA := member(a, key)
		bv, inB := member(b, key)

		switch {
		case !inA:
			nv := bv
			out = append(out, Record{Path: childPath, Kind: Added, New: &nv})
		case !inB:
			ov := av
			out = append(out, Record{Path: childPath, Kind: Removed, Old: &ov})
		case av.Composite() && bv.Composite():
			out = compare(av, bv, childPath, out)
		default:
			out = append(out, terminal(av, bv, childPath))
		}
	}

	return out
}

// terminal emits the Equal/Modified record for a leaf comparison.
func terminal(a, b jsonval.Value, path string) Record {
	if path == "" {
		path = RootPath
	}
	kind := Modified
	if jsonval.Equal(a, b) {
		kind = Equal
	}
	ov, nv := a, b
	return Record{Path: path, Kind: kind, Old: &ov, New: &nv}
}

// unionKeys returns the union of both sides' keys: the left document's keys
// in their own order, then keys only the right side has, in right order.
// Array indices become string keys.
func unionKeys(a, b jsonval.Value) []string {
	keys := append([]string(nil), compositeKeys(a)...)
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		seen[k] = struct{}{}
	}
	for _, k := range compositeKeys(b) {
		if _, ok := seen[k]; !ok {
			keys = append(keys, k)
		}
	}
	return keys
}

func compositeKeys(v jsonval.Value) []string {
	if v.Kind() == jsonval.Object {
		return v.Keys()
	}
	keys := make([]string, v.Len())
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	return keys
}

// member resolves a union key against an object or array side.
func member(v jsonval.Value, key string) (jsonval.Value, bool) {
	if v.Kind() == jsonval.Object {
		return v.Field(key)
	}
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= v.Len() {
		return jsonval.Value{}, false
	}
	return v.Index(i), true
}
