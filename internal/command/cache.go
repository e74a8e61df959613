// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/staranto/wordfind/internal/cacheutil"
	"github.com/staranto/wordfind/internal/meta"
)

// cachePath resolves the cache file the find command would use: --cache-path
// when given, else the per-URL default for --url.
func cachePath(cmd *cli.Command) (string, bool) {
	if p := cmd.String("cache-path"); p != "" {
		info, err := os.Stat(p)
		return p, err == nil && !info.IsDir()
	}
	return cacheutil.WordsPath(cmd.String("url"))
}

// CachePathAction prints the cache file for --cache-path or --url and whether
// a cached copy is present.
func CachePathAction(_ context.Context, cmd *cli.Command) error {
	p, exists := cachePath(cmd)
	if p == "" {
		return errors.New("no cache directory could be resolved")
	}
	state := "absent"
	if exists {
		state = "present"
	}
	_, err := fmt.Fprintf(writer(cmd), "%s\t%s\n", p, state)
	return err
}

// CacheClearAction removes the cache file for --cache-path or --url, if any.
func CacheClearAction(_ context.Context, cmd *cli.Command) error {
	p, exists := cachePath(cmd)
	if !exists {
		Logger(cmd).Debugf("nothing cached at %s", p)
		return nil
	}
	if err := os.Remove(p); err != nil {
		return fmt.Errorf("failed to remove cache file: %w", err)
	}
	Logger(cmd).WithField("path", p).Info("cache cleared")
	return nil
}

// CachePurgeAction removes cached files older than --hours.
func CachePurgeAction(_ context.Context, cmd *cli.Command) error {
	removed, err := cacheutil.Purge(cmd.Int("hours"))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(writer(cmd), "removed %d cache file(s)\n", removed)
	return err
}

// CacheCommandBuilder constructs the "cache" command and its subcommands.
func CacheCommandBuilder(_ *cli.Command, meta meta.Meta) *cli.Command {
	md := map[string]any{"meta": meta}
	src := meta.Config.Source
	cacheFlags := func() []cli.Flag {
		return []cli.Flag{NewURLFlag("find", src), NewCachePathFlag("find", src)}
	}

	return &cli.Command{
		Name:     "cache",
		Usage:    "inspect and clean the word list cache",
		Metadata: md,
		Commands: []*cli.Command{
			{
				Name:     "path",
				Usage:    "print the cache file used for a URL",
				Metadata: md,
				Flags:    cacheFlags(),
				Action:   CachePathAction,
			},
			{
				Name:     "clear",
				Usage:    "remove the cache file for a URL",
				Metadata: md,
				Flags:    cacheFlags(),
				Action:   CacheClearAction,
			},
			{
				Name:     "purge",
				Usage:    "remove cache files older than --hours",
				Metadata: md,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "hours",
						Usage:   "age in hours beyond which files are removed; 0 disables",
						Sources: configChain("", "cache.clean", src),
						Validator: func(value int) error {
							return FlagValidators(value, NonNegativeValidator)
						},
					},
				},
				Action: CachePurgeAction,
			},
		},
	}
}
