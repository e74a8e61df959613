// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package matcher filters a word list down to the words of a given length
// spelled only with letters from a candidate set.
package matcher
