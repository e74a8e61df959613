// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"", log.ErrorLevel},
		{"bogus", log.ErrorLevel},
		{"INFO", log.InfoLevel},
		{"debug", log.DebugLevel},
		{" warn ", log.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.in, nil).Level)
		})
	}
}

func TestCustomHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", &buf)

	logger.WithField("path", "/tmp/words").Info("cache hit")
	logger.Debug("dropped")
	logger.WithError(errors.New("disk full")).Warn("cache write failed")

	out := buf.String()
	assert.Contains(t, out, " I cache hit path=/tmp/words\n")
	assert.Contains(t, out, " W cache write failed error=disk full\n")
	assert.NotContains(t, out, "dropped")
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("nothing to see")
	assert.Equal(t, log.FatalLevel, logger.Level)
}

func TestInitLogger(t *testing.T) {
	t.Setenv(EnvLevel, "info")
	logger := InitLogger()
	assert.Equal(t, log.InfoLevel, logger.Level)
	_, ok := logger.Handler.(*CustomHandler)
	assert.True(t, ok)
}
