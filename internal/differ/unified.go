// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"

	"github.com/apex/log"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// IdenticalMessage is returned by Unified when the two documents carry no
// differences.
const IdenticalMessage = "The documents are identical."

// Unified renders a whole-document diff of two raw JSON documents in unified
// ascii form. Top-level keys listed in prune are dropped from the rendering
// context first. Both documents must be JSON objects; that is a constraint of
// the underlying delta format, not of the record-based engine.
//
// The boolean result reports whether any difference was found.
func Unified(a, b []byte, prune []string, coloring bool) (string, bool, error) {
	log.Debugf(">> unified()")

	if len(a) == 0 || len(b) == 0 {
		return "", false, nil
	}

	log.Debugf("len(documents): %d %d", len(a), len(b))

	d := gojsondiff.New()

	delta, err := d.Compare(a, b)
	if err != nil {
		return "", false, fmt.Errorf("failed to compare documents: %w", err)
	}

	if !delta.Modified() {
		return IdenticalMessage, false, nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal(a, &jdoc); err != nil {
		return "", false, fmt.Errorf("failed to unmarshal document: %w", err)
	}

	for _, key := range prune {
		if key != "" {
			delete(jdoc, key)
		}
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       coloring,
	}

	f := formatter.NewAsciiFormatter(jdoc, config)
	diffString, err := f.Format(delta)
	if err != nil {
		return "", false, err
	}

	return diffString, true, nil
}
