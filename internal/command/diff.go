// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/jcmp/jcmp/internal/config"
	"github.com/jcmp/jcmp/internal/differ"
	"github.com/jcmp/jcmp/internal/jsonval"
	"github.com/jcmp/jcmp/internal/meta"
	"github.com/jcmp/jcmp/internal/output"
	"github.com/jcmp/jcmp/internal/stats"
)

// diffCommandAction is the action handler for the "diff" subcommand. It
// reads and decodes both documents, runs the comparison, and emits results
// per common flags. The exit code mirrors diff(1): 0 when the documents are
// equivalent, 1 when differences were found, 2 on any error.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	// Bail out early if we're just dumping tldr.
	if ShortCircuitTLDR(ctx, cmd, "diff") {
		return nil
	}

	config.Config.Namespace = "diff"

	args := cmd.Args().Slice()
	if len(args) != 2 {
		return cli.Exit("diff requires exactly two documents (use - for stdin)", 2)
	}
	if args[0] == "-" && args[1] == "-" {
		return cli.Exit("only one document may come from stdin", 2)
	}

	rawA, err := readDocument(args[0])
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	rawB, err := readDocument(args[1])
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	// Narrow both sides before comparing when --select is given.
	if sel := cmd.String("select"); sel != "" {
		log.Debugf("selecting subdocuments at %s", sel)
		rawA = selectSubdocument(rawA, sel)
		rawB = selectSubdocument(rawB, sel)
	}

	// Short circuit the unified whole-document view.
	if cmd.String("output") == "unified" {
		return unifiedDiff(cmd, rawA, rawB)
	}

	a, okA, err := jsonval.Decode(string(rawA))
	if err != nil {
		return cli.Exit(fmt.Sprintf("%s: %v", args[0], err), 2)
	}
	b, okB, err := jsonval.Decode(string(rawB))
	if err != nil {
		return cli.Exit(fmt.Sprintf("%s: %v", args[1], err), 2)
	}

	// Comparison is only attempted when both sides carry a value.
	if !okA || !okB {
		log.Debugf("no value on at least one side, nothing to compare")
		return nil
	}

	records := differ.Compare(a, b)
	sum := stats.Summarize(records)
	sum.OldSize = len(rawA)
	sum.NewSize = len(rawB)
	log.Debugf("compared: %d records, %d changed", sum.Total(), sum.Changed())

	if cmd.Bool("interactive") {
		if err := differ.Browse(records); err != nil {
			return cli.Exit(err.Error(), 2)
		}
	} else if err := output.Spit(os.Stdout, records, sum, cmd); err != nil {
		return cli.Exit(err.Error(), 2)
	}

	if sum.Changed() > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

// unifiedDiff renders the gojsondiff-based whole-document view.
func unifiedDiff(cmd *cli.Command, rawA, rawB []byte) error {
	var prune []string
	for _, key := range strings.Split(cmd.String("prune"), ",") {
		if key != "" {
			prune = append(prune, key)
		}
	}

	text, changed, err := differ.Unified(rawA, rawB, prune, cmd.Bool("color"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	if text != "" {
		fmt.Fprintln(os.Stdout, text)
	}

	if changed {
		return cli.Exit("", 1)
	}
	return nil
}

// diffCommandBuilder constructs the cli.Command for "diff", wiring metadata,
// flags, and action handlers.
func diffCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "compare two JSON documents",
		UsageText: "jcmp diff FILE1 FILE2 [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  NewDiffFlags("diff", meta.Config.Source),
		Action: diffCommandAction,
	}
}
