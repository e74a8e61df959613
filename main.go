// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/wordfind/internal/cacheutil"
	"github.com/staranto/wordfind/internal/command"
	"github.com/staranto/wordfind/internal/config"
	mylog "github.com/staranto/wordfind/internal/log"
	"github.com/staranto/wordfind/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	logger := mylog.InitLogger()

	args := os.Args

	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "No command specified.")
		args = append(args, "--help")
	} else {
		args = expandArgSets(args, logger)
	}

	// Short-circuit --version/-v.
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return 0
		}
	}

	// Best-effort: pre-create cache directory when caching is enabled.
	if _, _, err := cacheutil.EnsureBaseDir(); err != nil {
		// Non-fatal: print to stderr and continue.
		fmt.Fprintln(os.Stderr, err)
	}

	app, err := command.InitApp(ctx, args, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}

// expandArgSets replaces an @set argument with the args listed in the config
// under <command>.<set>. Without an @set, <command>.defaults is used if
// present. Set args go right after the command so explicit args win.
func expandArgSets(args []string, logger log.Interface) []string {
	if len(args) < 2 || strings.HasPrefix(args[1], "-") {
		return args
	}
	for _, a := range args {
		if a == "--help" || a == "-h" {
			return args
		}
	}

	ns := args[1]
	if _, err := config.Load(ns); err != nil {
		logger.WithError(err).Debug("no config, arg sets unavailable")
	}

	set := "defaults"
	explicit := false
	rest := make([]string, 0, len(args))
	for _, a := range args[2:] {
		if !explicit && strings.HasPrefix(a, "@") && len(a) > 1 {
			set = a[1:]
			explicit = true
			continue
		}
		rest = append(rest, a)
	}

	expanded := []string{args[0], args[1]}
	setArgs, err := config.GetStringSlice(ns + "." + set)
	if err != nil && explicit {
		logger.Warnf("arg set @%s not found in config", set)
	}
	for _, arg := range setArgs {
		expanded = append(expanded, strings.Fields(arg)...)
	}

	logger.Debugf("set=%s, args=%v", set, expanded)
	return append(expanded, rest...)
}
