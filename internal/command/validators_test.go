// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestURLValidator(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://www-cs-faculty.stanford.edu/~knuth/sgb-words.txt", false},
		{"http://localhost:8080/words", false},
		{"s3://bucket/key.txt", false},
		{"ftp://example.com/words", true},
		{"words.txt", true},
		{"https://", true},
		{"://bad", true},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := URLValidator(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFlagValidators(t *testing.T) {
	assert.NoError(t, FlagValidators("json", OutputValidator))
	assert.Error(t, FlagValidators("xml", OutputValidator))
	assert.NoError(t, FlagValidators("asc", SortValidator))
	assert.Error(t, FlagValidators("up", SortValidator))
	assert.Error(t, FlagValidators("--oops", JammedFlagValidator, OutputValidator))
	assert.NoError(t, FlagValidators(0, NonNegativeValidator))
	assert.Error(t, FlagValidators(-2, NonNegativeValidator))
	assert.NoError(t, FlagValidators(time.Second, PositiveDurationValidator))
	assert.Error(t, FlagValidators(time.Duration(0), PositiveDurationValidator))
}
