// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"strings"

	"github.com/jcmp/jcmp/internal/differ"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func OutputValidator(value any) error {
	var validOutputFlagValues = []string{"text", "json", "yaml", "unified"}
	valid := false
	for _, v := range validOutputFlagValues {
		if v == value {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("must be one of %v", validOutputFlagValues)
	}
	return nil
}

// OnlyValidator accepts a comma-separated list of record kind names.
func OnlyValidator(value any) error {
	spec, ok := value.(string)
	if !ok || spec == "" {
		return nil
	}
	for _, name := range strings.Split(spec, ",") {
		if _, found := differ.ParseKind(strings.TrimSpace(name)); !found {
			return fmt.Errorf("unknown record kind %q (use added, removed, modified, equal)", strings.TrimSpace(name))
		}
	}
	return nil
}
