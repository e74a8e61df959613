// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output renders match results as plain lines, columns, JSON or YAML.
package output
