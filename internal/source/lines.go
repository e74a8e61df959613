// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"strings"
	"unicode/utf8"
)

const bom = "\xef\xbb\xbf"

// Decode validates b as UTF-8 and returns it as text with any leading byte
// order mark removed. from names the origin for error reporting.
func Decode(b []byte, from string) (string, error) {
	if !utf8.Valid(b) {
		return "", &DecodingError{Source: from, Offset: firstInvalid(b), Err: ErrInvalidUTF8}
	}
	return strings.TrimPrefix(string(b), bom), nil
}

// SplitLines splits text into one word per line. A single trailing newline
// does not produce an empty last word, and CRLF endings are accepted. Blank
// lines in the middle are kept so the list mirrors the source.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func firstInvalid(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(b)
}
