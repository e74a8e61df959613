// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/apex/log"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hashicorp/go-cleanhttp"

	awsx "github.com/staranto/wordfind/internal/aws"
)

// S3Getter is the slice of the S3 API the loader needs.
type S3Getter interface {
	GetObject(ctx context.Context, params *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// fetch performs exactly one retrieval attempt against l.URL.
func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	u, err := url.Parse(l.URL)
	if err != nil {
		return nil, &RetrievalError{URL: l.URL, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout())
	defer cancel()

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return l.fetchHTTP(ctx)
	case "s3":
		return l.fetchS3(ctx, u)
	default:
		return nil, &RetrievalError{URL: l.URL, Err: fmt.Errorf("unsupported scheme %q", u.Scheme)}
	}
}

func (l *Loader) fetchHTTP(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, &RetrievalError{URL: l.URL, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	client := l.httpClient
	if client == nil {
		client = NewHTTPClient(l.Insecure, l.timeout())
	}
	if l.Insecure {
		l.logger().Warn("TLS certificate verification is disabled")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &RetrievalError{URL: l.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &RetrievalError{URL: l.URL, StatusCode: resp.StatusCode}
	}

	var doc bytes.Buffer
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return nil, &RetrievalError{URL: l.URL, Err: fmt.Errorf("failed to read response: %w", err)}
	}
	return doc.Bytes(), nil
}

func (l *Loader) fetchS3(ctx context.Context, u *url.URL) ([]byte, error) {
	bucket, key := u.Host, strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return nil, &RetrievalError{URL: l.URL, Err: fmt.Errorf("s3 URL needs a bucket and a key")}
	}

	client := l.s3
	if client == nil {
		cfg, err := awsx.LoadAWSConfig(ctx, l.awsOpts...)
		if err != nil {
			return nil, &RetrievalError{URL: l.URL, Err: fmt.Errorf("failed to load AWS config: %w", err)}
		}
		client = awsx.NewS3(cfg, awsx.WithEndpoint(l.s3Endpoint))
	}

	l.logger().WithFields(log.Fields{"bucket": bucket, "key": key}).Debug("s3 get object")
	out, err := client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, &RetrievalError{URL: l.URL, Err: err}
	}
	defer out.Body.Close()

	var doc bytes.Buffer
	if _, err := doc.ReadFrom(out.Body); err != nil {
		return nil, &RetrievalError{URL: l.URL, Err: fmt.Errorf("failed to read object: %w", err)}
	}
	return doc.Bytes(), nil
}

// NewHTTPClient returns a non-shared client. Verification stays on unless
// insecure is set.
func NewHTTPClient(insecure bool, timeout time.Duration) *http.Client {
	transport := cleanhttp.DefaultTransport()
	transport.TLSClientConfig = &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: insecure, //nolint:gosec
	}
	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}
