// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"strings"
	"unicode/utf8"

	"github.com/apex/log"
)

// Matcher selects words of an exact length built only from a letter set.
// Each word is checked character by character against the set, so a pass
// costs O(W·n) for W words of length n. Candidate strings are never
// generated.
type Matcher struct {
	Letters LetterSet
	// Length is the exact number of characters (runes) a word must have.
	Length int
	// Required letters must each appear at least once in a match.
	Required LetterSet
	// FoldCase lowercases a word before testing it. New also lowercases
	// Letters and Required. Matches are returned as they appear in the source.
	FoldCase bool
	Log      log.Interface
}

// Option customizes a Matcher.
type Option func(*Matcher)

// WithRequired makes every character of letters mandatory in a match.
func WithRequired(letters string) Option {
	return func(m *Matcher) {
		if letters == "" {
			m.Required = nil
			return
		}
		m.Required = NewLetterSet(letters)
	}
}

// WithFoldCase makes matching case-insensitive.
func WithFoldCase(fold bool) Option {
	return func(m *Matcher) { m.FoldCase = fold }
}

// WithLogger injects the logger used to report match counts.
func WithLogger(logger log.Interface) Option {
	return func(m *Matcher) { m.Log = logger }
}

// New returns a Matcher for words of length n drawn from letters.
func New(letters string, n int, opts ...Option) *Matcher {
	m := &Matcher{
		Letters: NewLetterSet(letters),
		Length:  n,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.FoldCase {
		m.Letters = m.Letters.Lower()
		m.Required = m.Required.Lower()
	}
	return m
}

// Find returns the words of length n made only of characters in letters, in
// source order, duplicates included.
func Find(words []string, letters string, n int) []string {
	return New(letters, n).Find(words)
}

// Match reports whether word satisfies the matcher.
func (m *Matcher) Match(word string) bool {
	if utf8.RuneCountInString(word) != m.Length {
		return false
	}
	if m.FoldCase {
		word = strings.ToLower(word)
	}
	if !m.Letters.Covers(word) {
		return false
	}
	for r := range m.Required {
		if !strings.ContainsRune(word, r) {
			return false
		}
	}
	return true
}

// Find filters words down to the matches, preserving order.
func (m *Matcher) Find(words []string) []string {
	matches := make([]string, 0)
	for _, w := range words {
		if m.Match(w) {
			matches = append(matches, w)
		}
	}

	m.logger().WithFields(log.Fields{
		"letters": m.Letters.String(),
		"length":  m.Length,
		"words":   len(words),
		"matches": len(matches),
	}).Info("match count")

	return matches
}

func (m *Matcher) logger() log.Interface {
	if m.Log == nil {
		return log.Log
	}
	return m.Log
}
