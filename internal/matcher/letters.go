// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"sort"
	"strings"
	"unicode"
)

// LetterSet is a set of characters a word may be built from.
type LetterSet map[rune]struct{}

// NewLetterSet builds a set from the characters of letters. Order and
// repetition in letters do not matter.
func NewLetterSet(letters string) LetterSet {
	set := make(LetterSet, len(letters))
	for _, r := range letters {
		set[r] = struct{}{}
	}
	return set
}

// Has reports whether r is in the set.
func (s LetterSet) Has(r rune) bool {
	_, ok := s[r]
	return ok
}

// Lower returns a copy of the set with every letter lowercased.
func (s LetterSet) Lower() LetterSet {
	if s == nil {
		return nil
	}
	lower := make(LetterSet, len(s))
	for r := range s {
		lower[unicode.ToLower(r)] = struct{}{}
	}
	return lower
}

// Covers reports whether every character of word is in the set.
func (s LetterSet) Covers(word string) bool {
	for _, r := range word {
		if _, ok := s[r]; !ok {
			return false
		}
	}
	return true
}

// String returns the letters sorted, which keeps logs stable.
func (s LetterSet) String() string {
	runes := make([]rune, 0, len(s))
	for r := range s {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	var sb strings.Builder
	for _, r := range runes {
		sb.WriteRune(r)
	}
	return sb.String()
}
