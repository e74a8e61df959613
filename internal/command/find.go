// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	awsx "github.com/staranto/wordfind/internal/aws"
	"github.com/staranto/wordfind/internal/cacheutil"
	"github.com/staranto/wordfind/internal/matcher"
	"github.com/staranto/wordfind/internal/meta"
	"github.com/staranto/wordfind/internal/output"
	"github.com/staranto/wordfind/internal/source"
)

// DefaultLength is the target word length when none is given.
const DefaultLength = 5

// FindCommandAction is the action handler for the "find" subcommand. It loads
// the word list, filters it by letters and length, and emits the matches.
func FindCommandAction(ctx context.Context, cmd *cli.Command) error {
	logger := Logger(cmd)
	logger.Debugf("Executing action for %v", GetMeta(cmd).Args)

	letters := cmd.String("letters")
	if letters == "" && cmd.Args().Len() > 0 {
		letters = cmd.Args().First()
	}
	if letters == "" {
		return errors.New("no letters given; pass them as an argument or with --letters")
	}

	words, err := NewLoader(cmd).Load(ctx)
	if err != nil {
		return err
	}

	matches := matcher.New(letters, cmd.Int("length"),
		matcher.WithRequired(cmd.String("require")),
		matcher.WithFoldCase(cmd.Bool("fold-case")),
		matcher.WithLogger(logger),
	).Find(words)

	return output.Spit(writer(cmd), matches, output.Options{
		Format: cmd.String("output"),
		Sort:   cmd.String("sort"),
		Count:  cmd.Bool("count"),
		Color:  cmd.Bool("color"),
	})
}

// NewLoader builds a source.Loader from the source flags on cmd. When caching
// is on and no --cache-path is given, the per-URL default under the user
// cache dir is used; if that cannot be resolved, caching is turned off.
func NewLoader(cmd *cli.Command) *source.Loader {
	logger := Logger(cmd)
	url := cmd.String("url")

	opts := []source.Option{
		source.WithLogger(logger),
		source.WithInsecure(cmd.Bool("insecure")),
		source.WithTimeout(cmd.Duration("timeout")),
		source.WithAWS(cmd.String("s3-endpoint"),
			awsx.WithProfile(cmd.String("aws-profile")),
			awsx.WithRegion(cmd.String("aws-region")),
		),
	}

	if cmd.Bool("cache") {
		path := cmd.String("cache-path")
		if path == "" {
			p, ok := cacheutil.WordsPath(url)
			if !ok {
				logger.Warn("no cache directory could be resolved, caching disabled")
				return source.New(url, opts...)
			}
			path = p
		}
		opts = append(opts, source.WithCache(path))
	}

	return source.New(url, opts...)
}

// FindCommandBuilder constructs the cli.Command definition for the "find"
// command.
func FindCommandBuilder(_ *cli.Command, meta meta.Meta) *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "letters",
			Aliases: []string{"l"},
			Usage:   "letters a word may use, repetition allowed",
			Sources: configChain("find", "letters", meta.Config.Source),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.IntFlag{
			Name:    "length",
			Aliases: []string{"n"},
			Usage:   "exact word length",
			Sources: configChain("find", "length", meta.Config.Source),
			Value:   DefaultLength,
			Validator: func(value int) error {
				return FlagValidators(value, NonNegativeValidator)
			},
		},
		&cli.StringFlag{
			Name:    "require",
			Aliases: []string{"r"},
			Usage:   "letters every match must contain at least once",
			Sources: configChain("find", "require", meta.Config.Source),
		},
		&cli.BoolFlag{
			Name:        "fold-case",
			Usage:       "compare case-insensitively",
			Sources:     configChain("find", "fold-case", meta.Config.Source),
			HideDefault: true,
		},
	}
	flags = append(flags, NewSourceFlags("find", meta.Config.Source)...)
	flags = append(flags, NewOutputFlags("find", meta.Config.Source)...)

	return &cli.Command{
		Name:      "find",
		Usage:     "find words made only of the given letters",
		UsageText: `wordfind find [LETTERS] [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  flags,
		Action: FindCommandAction,
	}
}

// writer is where command results go: the root command's Writer, which tests
// replace, else stdout.
func writer(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}
