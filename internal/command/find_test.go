// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/wordfind/internal/cacheutil"
	mylog "github.com/staranto/wordfind/internal/log"
	"github.com/staranto/wordfind/internal/source"
)

const wordList = "abide\napple\nzebra\ncivic\nvivid\n"

// isolate keeps tests away from the user's config and cache.
func isolate(t *testing.T) string {
	t.Helper()
	cacheDir := t.TempDir()
	t.Setenv("WORDFIND_CFG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv(cacheutil.EnvDir, cacheDir)

	// An empty env value still counts as set for flag sources, so unset.
	for _, k := range []string{
		cacheutil.EnvEnabled, "WORDFIND_URL", "WORDFIND_CACHE_PATH",
		"WORDFIND_INSECURE", "WORDFIND_TIMEOUT", "WORDFIND_S3_ENDPOINT",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	return cacheDir
}

func serve(t *testing.T, status int, text string) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, text)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	args = append([]string{"wordfind"}, args...)
	app, err := InitApp(context.Background(), args, mylog.Discard())
	require.NoError(t, err)

	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = io.Discard
	err = app.Run(context.Background(), args)
	return out.String(), err
}

func TestFind_JSON(t *testing.T) {
	isolate(t)
	srv, _ := serve(t, http.StatusOK, wordList)

	out, err := run(t, "find", "--url", srv.URL, "--no-cache", "-o", "json", "abide")
	require.NoError(t, err)
	assert.Equal(t, "[\"abide\"]\n", out)
}

func TestFind_LettersFlag(t *testing.T) {
	isolate(t)
	srv, _ := serve(t, http.StatusOK, wordList)

	out, err := run(t, "find", "--url", srv.URL, "--no-cache", "--letters", "civd")
	require.NoError(t, err)
	assert.Equal(t, "civic\nvivid\n", out)
}

func TestFind_DefaultCachePath(t *testing.T) {
	isolate(t)
	srv, hits := serve(t, http.StatusOK, wordList)

	first, err := run(t, "find", "--url", srv.URL, "civd")
	require.NoError(t, err)

	p, exists := cacheutil.WordsPath(srv.URL)
	assert.True(t, exists, "cache file should exist at %s", p)

	second, err := run(t, "find", "--url", srv.URL, "civd")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, atomic.LoadInt32(hits))
}

func TestFind_CacheDisabledByEnv(t *testing.T) {
	isolate(t)
	t.Setenv(cacheutil.EnvEnabled, "0")
	srv, hits := serve(t, http.StatusOK, wordList)

	for i := 0; i < 2; i++ {
		_, err := run(t, "find", "--url", srv.URL, "civd")
		require.NoError(t, err)
	}
	assert.EqualValues(t, 2, atomic.LoadInt32(hits))

	_, exists := cacheutil.WordsPath(srv.URL)
	assert.False(t, exists)
}

func TestFind_ExplicitCachePath(t *testing.T) {
	isolate(t)
	srv, _ := serve(t, http.StatusOK, wordList)
	cachePath := filepath.Join(t.TempDir(), "my", "words.txt")

	_, err := run(t, "find", "--url", srv.URL, "--cache-path", cachePath, "civd")
	require.NoError(t, err)

	raw, err := os.ReadFile(cachePath)
	require.NoError(t, err)
	assert.Equal(t, wordList, string(raw))
}

func TestFind_RequireAndCount(t *testing.T) {
	isolate(t)
	srv, _ := serve(t, http.StatusOK, wordList)

	out, err := run(t, "find", "--url", srv.URL, "--no-cache", "--require", "c", "civd")
	require.NoError(t, err)
	assert.Equal(t, "civic\n", out)

	out, err = run(t, "find", "--url", srv.URL, "--no-cache", "--count", "civd")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestFind_FoldCase(t *testing.T) {
	isolate(t)
	srv, _ := serve(t, http.StatusOK, "Civic\nVIVID\nzebra\n")

	out, err := run(t, "find", "--url", srv.URL, "--no-cache", "--fold-case", "CIVD")
	require.NoError(t, err)
	assert.Equal(t, "Civic\nVIVID\n", out)
}

func TestFind_SortDesc(t *testing.T) {
	isolate(t)
	srv, _ := serve(t, http.StatusOK, wordList)

	out, err := run(t, "find", "--url", srv.URL, "--no-cache", "--sort", "desc", "civd")
	require.NoError(t, err)
	assert.Equal(t, "vivid\ncivic\n", out)
}

func TestFind_Length(t *testing.T) {
	isolate(t)
	srv, _ := serve(t, http.StatusOK, "ad\nadd\ndad\nadded\n")

	out, err := run(t, "find", "--url", srv.URL, "--no-cache", "-n", "3", "ade")
	require.NoError(t, err)
	assert.Equal(t, "add\ndad\n", out)
}

func TestFind_Errors(t *testing.T) {
	isolate(t)
	srv, _ := serve(t, http.StatusOK, wordList)

	tests := []struct {
		name string
		args []string
	}{
		{"no letters", []string{"find", "--url", srv.URL, "--no-cache"}},
		{"bad output", []string{"find", "--url", srv.URL, "--no-cache", "-o", "xml", "abc"}},
		{"bad sort", []string{"find", "--url", srv.URL, "--no-cache", "--sort", "random", "abc"}},
		{"bad scheme", []string{"find", "--url", "ftp://example.com/w.txt", "abc"}},
		{"negative length", []string{"find", "--url", srv.URL, "--no-cache", "--length", "-1", "abc"}},
		{"jammed letters", []string{"find", "--url", srv.URL, "--letters", "--no-cache"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestFind_RetrievalError(t *testing.T) {
	isolate(t)
	srv, _ := serve(t, http.StatusNotFound, "")

	_, err := run(t, "find", "--url", srv.URL, "abc")
	var re *source.RetrievalError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, http.StatusNotFound, re.StatusCode)
}

func TestFind_FromConfig(t *testing.T) {
	isolate(t)
	srv, _ := serve(t, http.StatusOK, wordList)

	cfg := filepath.Join(t.TempDir(), "wordfind.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(
		"url: "+srv.URL+"\n"+
			"output: json\n"+
			"find:\n"+
			"  letters: abide\n"+
			"  cache:\n"+
			"    enabled: false\n",
	), 0o600))
	t.Setenv("WORDFIND_CFG", cfg)

	out, err := run(t, "find")
	require.NoError(t, err)
	assert.Equal(t, "[\"abide\"]\n", out)

	// The command line beats the config file.
	out, err = run(t, "find", "-o", "text", "--letters", "civd")
	require.NoError(t, err)
	assert.Equal(t, "civic\nvivid\n", out)
}

func TestCache_PathClearPurge(t *testing.T) {
	cacheDir := isolate(t)
	srv, _ := serve(t, http.StatusOK, wordList)

	out, err := run(t, "cache", "path", "--url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, cacheDir)
	assert.Contains(t, out, "absent")

	_, err = run(t, "find", "--url", srv.URL, "abc")
	require.NoError(t, err)

	out, err = run(t, "cache", "path", "--url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "present")

	_, err = run(t, "cache", "clear", "--url", srv.URL)
	require.NoError(t, err)
	_, exists := cacheutil.WordsPath(srv.URL)
	assert.False(t, exists)

	out, err = run(t, "cache", "purge", "--hours", "1")
	require.NoError(t, err)
	assert.Equal(t, "removed 0 cache file(s)\n", out)
}

func TestCache_ExplicitPath(t *testing.T) {
	cacheDir := isolate(t)
	srv, _ := serve(t, http.StatusOK, wordList)
	p := filepath.Join(t.TempDir(), "words.txt")

	_, err := run(t, "find", "--url", srv.URL, "--cache-path", p, "civd")
	require.NoError(t, err)
	require.FileExists(t, p)

	out, err := run(t, "cache", "path", "--cache-path", p)
	require.NoError(t, err)
	assert.Equal(t, p+"\tpresent\n", out)
	assert.NotContains(t, out, cacheDir)

	_, err = run(t, "cache", "clear", "--cache-path", p)
	require.NoError(t, err)
	assert.NoFileExists(t, p)

	out, err = run(t, "cache", "path", "--cache-path", p)
	require.NoError(t, err)
	assert.Equal(t, p+"\tabsent\n", out)
}

func TestCache_ExplicitPathFromEnv(t *testing.T) {
	isolate(t)
	srv, _ := serve(t, http.StatusOK, wordList)
	p := filepath.Join(t.TempDir(), "words.txt")
	t.Setenv("WORDFIND_CACHE_PATH", p)

	_, err := run(t, "find", "--url", srv.URL, "civd")
	require.NoError(t, err)
	require.FileExists(t, p)

	_, err = run(t, "cache", "clear")
	require.NoError(t, err)
	assert.NoFileExists(t, p)
}
