// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the wordfind CLI commands (find, cache) and wires
// flags, config sources and actions.
package command
