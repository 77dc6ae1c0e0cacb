// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jcmp/jcmp/internal/command"
	"github.com/jcmp/jcmp/internal/config"
	"github.com/jcmp/jcmp/internal/log"
	"github.com/jcmp/jcmp/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	switch {
	case len(args) > 1 && args[1] == "completion":
		// Short-circuit completion: pass args directly.
		return args
	default:
		args = processSetOnly(args)
		log.Debugf("args after set processing: args=%v", args)

		return deduplicateFlags(args)
	}
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 2
	}

	if err := app.Run(ctx, args); err != nil {
		if ec, ok := err.(interface{ ExitCode() int }); ok {
			if msg := err.Error(); msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
			return ec.ExitCode()
		}
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}

// processSetOnly handles the @set logic for all commands, expanding set arguments at the @set position.
func processSetOnly(args []string) []string {
	// Look for an explicit @set argument starting from index 2.
	idx := 2
	set := "defaults"
	removeIdx := -1
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			removeIdx = idx + i
			break
		}
	}
	if removeIdx != -1 {
		// Remove the @set argument.
		args = append(args[:removeIdx], args[removeIdx+1:]...)
		// Expand the set arguments at the removeIdx position.
		setArgs, _ := config.GetStringSlice(args[1] + "." + set)
		for _, arg := range setArgs {
			parts := strings.Fields(arg)
			args = append(args[:removeIdx], append(parts, args[removeIdx:]...)...)
			removeIdx += len(parts)
		}
	}
	return args
}

// valueFlags are the flags that take a value argument. deduplicateFlags
// needs this to tell a flag's value apart from a positional document that
// happens to follow a boolean flag.
var valueFlags = map[string]bool{
	"--output": true,
	"-o":       true,
	"--only":   true,
	"--select": true,
	"--prune":  true,
}

// deduplicateFlags keeps only the last occurrence of each flag so that
// command-line flags override defaults expanded from an @set. A repeated
// flag's value argument travels with it; positional arguments and flags
// that occur once are left alone.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return args
	}

	type token struct {
		text  string
		value string // following value argument, if consumed
		flag  string // canonical flag name, "" for positionals
	}

	var tokens []token
	for i := 2; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") {
			tokens = append(tokens, token{text: a})
			continue
		}

		name := a
		if eq := strings.Index(a, "="); eq != -1 {
			name = a[:eq]
		}

		tok := token{text: a, flag: name}
		// Only flags known to take a value bind the next token; the = form
		// already carries its value inline.
		if name == a && valueFlags[name] && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			tok.value = args[i+1]
			i++
		}
		tokens = append(tokens, tok)
	}

	lastIdx := map[string]int{}
	for i, tok := range tokens {
		if tok.flag != "" {
			lastIdx[tok.flag] = i
		}
	}

	out := append([]string{}, args[:2]...)
	for i, tok := range tokens {
		if tok.flag != "" && lastIdx[tok.flag] != i {
			continue
		}
		out = append(out, tok.text)
		if tok.value != "" {
			out = append(out, tok.value)
		}
	}
	return out
}
