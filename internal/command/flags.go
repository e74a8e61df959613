// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"time"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/wordfind/internal/cacheutil"
	"github.com/staranto/wordfind/internal/source"
)

// configChain returns a value source chain that tries env first, then the
// namespaced config key, then the bare config key.
func configChain(ns, key, path string, env ...string) cli.ValueSourceChain {
	var chain []cli.ValueSource
	for _, e := range env {
		chain = append(chain, cli.EnvVar(e))
	}
	if path != "" {
		if ns != "" {
			chain = append(chain, yaml.YAML(ns+"."+key, altsrc.StringSourcer(path)))
		}
		chain = append(chain, yaml.YAML(key, altsrc.StringSourcer(path)))
	}
	return cli.NewValueSourceChain(chain...)
}

// NewOutputFlags are the flags shared by commands that print match results.
func NewOutputFlags(ns, path string) []cli.Flag {
	return []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored columns output",
			Sources: configChain(ns, "color", path),
			Value:   false,
		},
		&cli.BoolFlag{
			Name:        "count",
			Usage:       "print only the number of matches",
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format (text, columns, json, yaml)",
			Sources: configChain(ns, "output", path),
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "sort matches (none, asc, desc); none keeps word list order",
			Sources: configChain(ns, "sort", path),
			Value:   "none",
			Validator: func(value string) error {
				return FlagValidators(value, SortValidator)
			},
		},
	}
}

// NewSourceFlags are the flags that control where the word list comes from.
func NewSourceFlags(ns, path string) []cli.Flag {
	return []cli.Flag{
		NewURLFlag(ns, path),
		&cli.BoolWithInverseFlag{
			Name:    "cache",
			Usage:   "read the word list from the cache file, fetching and caching it when absent",
			Sources: configChain(ns, "cache.enabled", path),
			Value:   cacheutil.Enabled(),
		},
		NewCachePathFlag(ns, path),
		&cli.BoolFlag{
			Name:        "insecure",
			Usage:       "skip TLS certificate and hostname verification",
			Sources:     configChain(ns, "insecure", path, "WORDFIND_INSECURE"),
			HideDefault: true,
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Usage:   "fetch timeout",
			Sources: configChain(ns, "timeout", path, "WORDFIND_TIMEOUT"),
			Value:   source.DefaultTimeout,
			Validator: func(d time.Duration) error {
				return FlagValidators(d, PositiveDurationValidator)
			},
		},
		&cli.StringFlag{
			Name:    "aws-profile",
			Usage:   "AWS shared config profile for s3:// URLs",
			Sources: configChain(ns, "aws.profile", path, "AWS_PROFILE"),
		},
		&cli.StringFlag{
			Name:    "aws-region",
			Usage:   "AWS region for s3:// URLs",
			Sources: configChain(ns, "aws.region", path, "AWS_REGION"),
		},
		&cli.StringFlag{
			Name:    "s3-endpoint",
			Usage:   "custom S3 endpoint (path-style) for s3:// URLs",
			Sources: configChain(ns, "aws.endpoint", path, "WORDFIND_S3_ENDPOINT"),
		},
	}
}

// NewCachePathFlag is the explicit cache file flag shared by find and cache.
func NewCachePathFlag(ns, path string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:      "cache-path",
		Usage:     "cache file path. Defaults to a per-URL file under the user cache dir",
		Sources:   configChain(ns, "cache.path", path, "WORDFIND_CACHE_PATH"),
		TakesFile: true,
	}
}

// NewURLFlag constructs the "url" flag, namespaced to a command and config
// file.
func NewURLFlag(ns, path string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "url",
		Aliases: []string{"u"},
		Usage:   "word list location (http, https or s3 URL)",
		Sources: configChain(ns, "url", path, "WORDFIND_URL"),
		Value:   source.DefaultURL,
		Validator: func(value string) error {
			return FlagValidators(value, JammedFlagValidator, URLValidator)
		},
	}
}
