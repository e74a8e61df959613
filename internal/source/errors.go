// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidUTF8 is wrapped by DecodingError when content is not UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// ErrNoCachePath is returned when caching is requested without a path.
var ErrNoCachePath = errors.New("caching enabled but no cache path given")

// RetrievalError reports a failed fetch: transport, TLS or timeout failures,
// a non-2xx status, or a URL that cannot be fetched at all.
type RetrievalError struct {
	URL string
	// StatusCode is set when the server answered with a non-2xx status.
	StatusCode int
	Err        error
}

func (e *RetrievalError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("failed to retrieve %s: unexpected status %d %s",
			e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	case e.Err != nil:
		return fmt.Sprintf("failed to retrieve %s: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("failed to retrieve %s", e.URL)
	}
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// DecodingError reports content that could not be decoded as text. Source is
// the URL or cache path the bytes came from.
type DecodingError struct {
	Source string
	Offset int
	Err    error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("failed to decode %s at byte %d: %v", e.Source, e.Offset, e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }
