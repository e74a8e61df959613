// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/staranto/wordfind/internal/config"
)

// Formats are the accepted --output values.
var Formats = []string{"text", "columns", "json", "yaml"}

// SortOrders are the accepted --sort values. "none" keeps source order.
var SortOrders = []string{"none", "asc", "desc"}

const defaultWidth = 80

// Options controls how a match result is rendered.
type Options struct {
	Format string
	Sort   string
	// Count prints only the number of matches.
	Count bool
	Color bool
	// Width is the column layout width. Zero asks the terminal.
	Width int
}

// Spit writes words to w according to opts. words is not modified.
func Spit(w io.Writer, words []string, opts Options) error {
	words = SortWords(words, opts.Sort)

	if opts.Count {
		_, err := fmt.Fprintln(w, humanize.Comma(int64(len(words))))
		return err
	}

	switch opts.Format {
	case "json":
		// Always an array, never null.
		if words == nil {
			words = []string{}
		}
		b, err := json.Marshal(words)
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(words)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	case "columns":
		return ColumnWriter(w, words, opts)
	case "", "text":
		for _, word := range words {
			if _, err := fmt.Fprintln(w, word); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
}

// SortWords returns words ordered per spec ("asc", "desc"). Anything else
// returns words untouched.
func SortWords(words []string, spec string) []string {
	switch spec {
	case "asc", "desc":
	default:
		return words
	}

	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		if spec == "desc" {
			return sorted[i] > sorted[j]
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}

// ColumnWriter lays words out row by row in as many columns as fit the width.
func ColumnWriter(w io.Writer, words []string, opts Options) error {
	if len(words) == 0 {
		return nil
	}

	cellWidth := 0
	for _, word := range words {
		if n := utf8.RuneCountInString(word); n > cellWidth {
			cellWidth = n
		}
	}
	cellWidth += 2

	width := opts.Width
	if width <= 0 {
		width = defaultWidth
		if f, ok := w.(*os.File); ok {
			width = TerminalWidth(f)
		}
	}
	cols := width / cellWidth
	if cols < 1 {
		cols = 1
	}

	rows := make([][]string, 0, len(words)/cols+1)
	for i := 0; i < len(words); i += cols {
		end := i + cols
		if end > len(words) {
			end = len(words)
		}
		row := make([]string, cols)
		copy(row, words[i:end])
		rows = append(rows, row)
	}

	var (
		cellStyle    = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		even, odd := getColors("colors")
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(even))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(odd))
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row%2 == 0 {
				return evenRowStyle
			}
			return oddRowStyle
		}).
		Rows(rows...)

	_, err := fmt.Fprintln(w, strings.TrimRight(t.String(), "\n"))
	return err
}

// TerminalWidth returns the width of f when it is a terminal, otherwise 80.
func TerminalWidth(f *os.File) int {
	fd := int(f.Fd()) //nolint:gosec
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// getColors returns configured color values for column rendering.
func getColors(key string) (even string, odd string) {
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}
