// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os/exec"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var tldrFlag *cli.BoolFlag = &cli.BoolFlag{
	Name:        "tldr",
	Usage:       "show tldr page",
	Hidden:      !pathHas("tldr"),
	HideDefault: true,
}

// NewDiffFlags returns the flag set of the diff command. params[0] is the
// config namespace and params[1] the config file path; when both are present
// the string flags pick up defaults from the yaml config.
func NewDiffFlags(params ...string) (flags []cli.Flag) {
	outputFlag := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("JCMP_OUTPUT"),
		),
		Value: "text",
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}
	onlyFlag := &cli.StringFlag{
		Name:  "only",
		Usage: "comma-separated list of record kinds to include in results",
		Validator: func(value string) error {
			return FlagValidators(value, OnlyValidator)
		},
	}
	selectFlag := &cli.StringFlag{
		Name:  "select",
		Usage: "dot path to a subdocument to compare on both sides",
	}
	pruneFlag := &cli.StringFlag{
		Name:  "prune",
		Usage: "comma-separated top-level keys to drop from unified output",
	}

	if len(params) == 2 {
		outputFlag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], outputFlag)
		onlyFlag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], onlyFlag)
	}

	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:    "interactive",
			Aliases: []string{"i"},
			Usage:   "browse the diff records interactively",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:  "stats",
			Usage: "append a summary footer to the output",
			Value: false,
		},
		outputFlag,
		onlyFlag,
		selectFlag,
		pruneFlag,
		tldrFlag,
	}

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config
// file sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// pathHas checks if the given key exists in PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}
