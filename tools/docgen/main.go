// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
)

// docgen turns docs/commands/<cmd>.md into:
//   - docs/man/man1/wordfind-<cmd>.1 (md2man over the whole page)
//   - docs/tldr/wordfind-<cmd>.md (summary line plus the Examples block)

func main() {
	var (
		root          string
		onlyIfChanged bool
	)
	flag.StringVar(&root, "root", ".", "repo root")
	flag.BoolVar(&onlyIfChanged, "only-if-changed", true, "only write files whose content changed")
	flag.Parse()

	if err := generate(root, onlyIfChanged); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generate(root string, onlyIfChanged bool) error {
	srcDir := filepath.Join(root, "docs", "commands")
	manDir := filepath.Join(root, "docs", "man", "man1")
	tldrDir := filepath.Join(root, "docs", "tldr")

	for _, d := range []string{manDir, tldrDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", d, err)
		}
	}

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcDir, err)
	}

	processed := 0
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".md" {
			continue
		}
		cmd := strings.TrimSuffix(e.Name(), ".md")
		raw, err := os.ReadFile(filepath.Join(srcDir, e.Name()))
		if err != nil {
			return fmt.Errorf("reading %s: %w", e.Name(), err)
		}

		manPath := filepath.Join(manDir, "wordfind-"+cmd+".1")
		if err := writeFileIfChanged(manPath, md2man.Render(raw), onlyIfChanged); err != nil {
			return fmt.Errorf("writing man page for %s: %w", cmd, err)
		}

		page := parsePage(string(raw))
		tldrPath := filepath.Join(tldrDir, "wordfind-"+cmd+".md")
		if err := writeFileIfChanged(tldrPath, []byte(buildTLDR(cmd, page)), onlyIfChanged); err != nil {
			return fmt.Errorf("writing tldr page for %s: %w", cmd, err)
		}
		processed++
	}

	if processed == 0 {
		return fmt.Errorf("no command markdown found under %s", srcDir)
	}
	return nil
}

func writeFileIfChanged(path string, data []byte, onlyIfChanged bool) error {
	if onlyIfChanged {
		old, err := os.ReadFile(path)
		switch {
		case err == nil && bytes.Equal(bytes.TrimSpace(old), bytes.TrimSpace(data)):
			return nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return err
		}
	}
	return os.WriteFile(path, data, 0o644) //nolint:gosec
}

type example struct {
	Desc string
	Cmd  string
}

type page struct {
	Title    string
	Summary  string
	Examples []example
}

var h1Re = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// parsePage pulls the H1 title, the first paragraph after it, and the first
// fenced block under an "Examples" heading. In that block "# text" lines
// describe the command line that follows.
func parsePage(md string) page {
	var p page

	loc := h1Re.FindStringSubmatchIndex(md)
	if loc == nil {
		return p
	}
	p.Title = strings.TrimSpace(md[loc[2]:loc[3]])

	var para []string
	for _, ln := range strings.Split(md[loc[1]:], "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			if len(para) > 0 {
				break
			}
			continue
		}
		if strings.HasPrefix(ln, "#") || strings.HasPrefix(ln, "```") {
			break
		}
		para = append(para, ln)
	}
	p.Summary = strings.Join(para, " ")

	idx := strings.Index(strings.ToLower(md), "## examples")
	if idx < 0 {
		return p
	}
	parts := strings.SplitN(md[idx:], "```", 3)
	if len(parts) < 3 {
		return p
	}
	block := parts[1]
	// Drop the info string on the opening fence.
	if nl := strings.Index(block, "\n"); nl >= 0 {
		block = block[nl+1:]
	}

	desc := ""
	for _, ln := range strings.Split(block, "\n") {
		ln = strings.TrimSpace(ln)
		switch {
		case ln == "":
		case strings.HasPrefix(ln, "#"):
			desc = strings.TrimSpace(strings.TrimLeft(ln, "#"))
		default:
			if desc == "" {
				desc = "Example"
			}
			p.Examples = append(p.Examples, example{Desc: desc, Cmd: strings.Join(strings.Fields(ln), " ")})
			desc = ""
		}
	}
	return p
}

func buildTLDR(cmd string, p page) string {
	var b strings.Builder
	b.WriteString("# wordfind-" + cmd + "\n\n")

	summary := p.Summary
	if summary == "" {
		summary = p.Title
	}
	if summary == "" {
		summary = "wordfind " + cmd
	}
	b.WriteString("> " + summary + "\n")
	b.WriteString("> More information: `wordfind " + cmd + " --help`.\n")

	exs := p.Examples
	if len(exs) == 0 {
		exs = []example{{Desc: "Show help for the command", Cmd: "wordfind " + cmd + " --help"}}
	}
	for _, ex := range exs {
		b.WriteString("\n- " + ex.Desc + ":\n\n`" + ex.Cmd + "`\n")
	}
	return b.String()
}
