// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/jcmp/jcmp/internal/config"
	"github.com/jcmp/jcmp/internal/jsonval"
	"github.com/jcmp/jcmp/internal/meta"
)

// checkCommandAction validates each named document and reports the outcome,
// one line per input. Empty input is "no value", not an error. The exit code
// is 1 when any document fails to parse.
func checkCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "check") {
		return nil
	}

	config.Config.Namespace = "check"

	args := cmd.Args().Slice()
	if len(args) == 0 {
		return cli.Exit("check requires at least one document (use - for stdin)", 2)
	}

	failed := false
	for _, arg := range args {
		raw, err := readDocument(arg)
		if err != nil {
			fmt.Fprintf(os.Stdout, "%s: %v\n", arg, err)
			failed = true
			continue
		}

		v, ok, err := jsonval.Decode(string(raw))
		switch {
		case err != nil:
			fmt.Fprintf(os.Stdout, "%s: %v\n", arg, err)
			failed = true
		case !ok:
			fmt.Fprintf(os.Stdout, "%s: no value\n", arg)
		default:
			fmt.Fprintf(os.Stdout, "%s: valid %s\n", arg, v.Kind())
		}
	}

	if failed {
		return cli.Exit("", 1)
	}
	return nil
}

// checkCommandBuilder constructs the cli.Command for "check".
func checkCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "validate JSON documents",
		UsageText: "jcmp check FILE... [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  []cli.Flag{tldrFlag},
		Action: checkCommandAction,
	}
}
