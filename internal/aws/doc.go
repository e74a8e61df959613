// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package aws contains AWS SDK v2 helpers used to fetch word lists stored in
// S3.
package aws
