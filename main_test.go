// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mylog "github.com/staranto/wordfind/internal/log"
)

const cfgYAML = `find:
  defaults:
    - "--length 5 --no-cache"
  vowelless:
    - "--letters qwyipdfhjzxcvbnm"
    - "--require ic"
`

func withConfig(t *testing.T) {
	t.Helper()
	p := filepath.Join(t.TempDir(), "wordfind.yaml")
	require.NoError(t, os.WriteFile(p, []byte(cfgYAML), 0o600))
	t.Setenv("WORDFIND_CFG", p)
}

func TestExpandArgSets(t *testing.T) {
	withConfig(t)

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "defaults applied",
			in:   []string{"wordfind", "find", "abc"},
			want: []string{"wordfind", "find", "--length", "5", "--no-cache", "abc"},
		},
		{
			name: "named set replaces defaults",
			in:   []string{"wordfind", "find", "@vowelless", "-o", "json"},
			want: []string{"wordfind", "find", "--letters", "qwyipdfhjzxcvbnm", "--require", "ic", "-o", "json"},
		},
		{
			name: "flag first untouched",
			in:   []string{"wordfind", "--version"},
			want: []string{"wordfind", "--version"},
		},
		{
			name: "help untouched",
			in:   []string{"wordfind", "find", "--help"},
			want: []string{"wordfind", "find", "--help"},
		},
		{
			name: "no set for command",
			in:   []string{"wordfind", "cache", "path"},
			want: []string{"wordfind", "cache", "path"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expandArgSets(tt.in, mylog.Discard()))
		})
	}
}

func TestExpandArgSets_UnknownSet(t *testing.T) {
	withConfig(t)

	var logs bytes.Buffer
	got := expandArgSets([]string{"wordfind", "find", "@nope", "abc"}, mylog.New("warn", &logs))
	assert.Equal(t, []string{"wordfind", "find", "abc"}, got)
	assert.Contains(t, logs.String(), "arg set @nope not found")
}

func TestExpandArgSets_NoConfig(t *testing.T) {
	t.Setenv("WORDFIND_CFG", filepath.Join(t.TempDir(), "missing.yaml"))

	got := expandArgSets([]string{"wordfind", "find", "abc"}, mylog.Discard())
	assert.Equal(t, []string{"wordfind", "find", "abc"}, got)
}
