// Copyright (c) 2025 Steve Taranto staranto@gmail.com.
// SPDX-License-Identifier: Apache-2.0

// Package source loads newline-delimited word lists. A list comes from a
// local cache file when caching is enabled and the file exists, otherwise
// from a single HTTP(S) GET or S3 GetObject, after which it is written back to
// the cache.
package source
