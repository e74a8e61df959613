// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"net/http"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"

	awsx "github.com/staranto/wordfind/internal/aws"
	"github.com/staranto/wordfind/internal/cacheutil"
)

// DefaultURL is Knuth's Stanford GraphBase list of five-letter words.
const DefaultURL = "https://www-cs-faculty.stanford.edu/~knuth/sgb-words.txt"

// DefaultTimeout bounds a single fetch.
const DefaultTimeout = 30 * time.Second

// Loader retrieves a word list from URL, consulting and refreshing the cache
// file at CachePath when UseCache is set.
type Loader struct {
	URL       string
	UseCache  bool
	CachePath string
	// Insecure disables TLS certificate and hostname verification.
	Insecure bool
	// Timeout bounds the fetch. Zero means DefaultTimeout.
	Timeout time.Duration
	Log     log.Interface

	httpClient *http.Client
	s3         S3Getter
	awsOpts    []awsx.Option
	s3Endpoint string
}

// Option customizes a Loader.
type Option func(*Loader)

// WithCache enables caching at path.
func WithCache(path string) Option {
	return func(l *Loader) {
		l.UseCache = true
		l.CachePath = path
	}
}

// WithInsecure turns off TLS verification. Only meant for test rigs and
// hosts with broken chains.
func WithInsecure(insecure bool) Option {
	return func(l *Loader) { l.Insecure = insecure }
}

// WithTimeout sets the fetch timeout.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) { l.Timeout = d }
}

// WithLogger injects the logger used for progress and warnings.
func WithLogger(logger log.Interface) Option {
	return func(l *Loader) { l.Log = logger }
}

// WithHTTPClient replaces the HTTP client. Insecure and Timeout are then the
// client's business.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) { l.httpClient = c }
}

// WithS3Client replaces the S3 client used for s3:// URLs.
func WithS3Client(c S3Getter) Option {
	return func(l *Loader) { l.s3 = c }
}

// WithAWS sets AWS config options and an optional custom S3 endpoint used
// when no S3 client is injected.
func WithAWS(endpoint string, opts ...awsx.Option) Option {
	return func(l *Loader) {
		l.s3Endpoint = endpoint
		l.awsOpts = append(l.awsOpts, opts...)
	}
}

// New returns a Loader for url.
func New(url string, opts ...Option) *Loader {
	l := &Loader{
		URL:     url,
		Timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the word list for url, using cachePath when useCache is set.
func Load(ctx context.Context, url string, useCache bool, cachePath string) ([]string, error) {
	l := New(url)
	l.UseCache = useCache
	l.CachePath = cachePath
	return l.Load(ctx)
}

// Load returns the word list. A present cache file wins over the network
// regardless of age or of which URL produced it. A failed cache write is
// logged and otherwise ignored.
func (l *Loader) Load(ctx context.Context) ([]string, error) {
	logger := l.logger()

	if l.UseCache {
		if l.CachePath == "" {
			return nil, ErrNoCachePath
		}
		entry, ok, err := cacheutil.Read(l.CachePath)
		if err != nil {
			logger.WithError(err).Warn("cache unreadable, fetching instead")
		}
		if ok {
			text, err := Decode(entry.Data, entry.Path)
			if err != nil {
				return nil, err
			}
			words := SplitLines(text)
			logger.WithFields(log.Fields{
				"path":  entry.Path,
				"words": humanize.Comma(int64(len(words))),
				"age":   humanize.Time(entry.ModTime),
			}).Info("cache hit")
			return words, nil
		}
	}

	logger.WithField("url", l.URL).Info("fetching word list")
	body, err := l.fetch(ctx)
	if err != nil {
		return nil, err
	}

	text, err := Decode(body, l.URL)
	if err != nil {
		return nil, err
	}
	words := SplitLines(text)
	logger.WithFields(log.Fields{
		"words": humanize.Comma(int64(len(words))),
		"size":  humanize.Bytes(uint64(len(body))),
	}).Info("fetched word list")

	if l.UseCache {
		if err := cacheutil.Write(l.CachePath, []byte(text)); err != nil {
			logger.WithError(err).Warn("failed to write word list to cache")
		} else {
			logger.WithField("path", l.CachePath).Info("cache write")
		}
	}

	return words, nil
}

func (l *Loader) logger() log.Interface {
	if l.Log == nil {
		return log.Log
	}
	return l.Log
}

func (l *Loader) timeout() time.Duration {
	if l.Timeout <= 0 {
		return DefaultTimeout
	}
	return l.Timeout
}
