// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
)

// EnvLevel is the environment variable holding the log level.
const EnvLevel = "WORDFIND_LOG"

// InitLogger builds a logger from WORDFIND_LOG, installs it as the Apex
// default and returns it so callers can inject it into components.
func InitLogger() *log.Logger {
	logger := New(os.Getenv(EnvLevel), os.Stderr)
	log.SetHandler(logger.Handler)
	log.SetLevel(logger.Level)
	return logger
}

// New returns an Apex logger writing to w at the given level. An empty or
// unknown level falls back to ERROR.
func New(level string, w io.Writer) *log.Logger {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = log.ErrorLevel
	}
	if w == nil {
		w = os.Stderr
	}
	return &log.Logger{
		Handler: &CustomHandler{Writer: w},
		Level:   lvl,
	}
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *log.Logger {
	return &log.Logger{Handler: &CustomHandler{Writer: io.Discard}, Level: log.FatalLevel}
}

// CustomHandler formats log messages as single lines on Writer.
type CustomHandler struct {
	mu     sync.Mutex
	Writer io.Writer
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	level := strings.ToUpper(e.Level.String())

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %.1s %s", ts.Format("2006-01-02 15:04:05"), level, e.Message)
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(&sb, " %s=%v", name, e.Fields.Get(name))
	}
	sb.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.Writer, sb.String())
	return err
}
