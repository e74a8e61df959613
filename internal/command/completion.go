// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/urfave/cli/v3"

	"github.com/staranto/wordfind/internal/meta"
	"github.com/staranto/wordfind/internal/output"
)

// The bash script is generated from the live command tree so new flags show
// up without editing it. zsh reuses it through bashcompinit.
var bashTemplate = template.Must(template.New("bash").Parse(`# bash completion for wordfind
_wordfind()
{
    local cur prev path
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "{{.Formats}}" -- "$cur") )
        return 0
    fi
    if [[ "$prev" == "--sort" || "$prev" == "-s" ]]; then
        COMPREPLY=( $(compgen -W "{{.Sorts}}" -- "$cur") )
        return 0
    fi
    if [[ "$prev" == "--cache-path" ]]; then
        COMPREPLY=( $(compgen -f -- "$cur") )
        return 0
    fi

    path=""
    local i
    for (( i=1; i<COMP_CWORD; i++ )); do
        [[ ${COMP_WORDS[i]} == -* ]] && continue
        path="${path:+$path }${COMP_WORDS[i]}"
    done

    case "$path" in
{{- range .Cases}}
    "{{.Path}}")
        COMPREPLY=( $(compgen -W "{{.Words}}" -- "$cur") )
        ;;
{{- end}}
    *)
        COMPREPLY=()
        ;;
    esac
    return 0
}

complete -F _wordfind wordfind
`))

const zshPreamble = `#compdef wordfind
autoload -U +X bashcompinit && bashcompinit
`

type completionCase struct {
	Path  string
	Words string
}

// WriteCompletion writes a completion script for shell describing root.
func WriteCompletion(w io.Writer, shell string, root *cli.Command) error {
	data := struct {
		Formats string
		Sorts   string
		Cases   []completionCase
	}{
		Formats: strings.Join(output.Formats, " "),
		Sorts:   strings.Join(output.SortOrders, " "),
		Cases:   completionCases("", root),
	}

	switch shell {
	case "bash":
	case "zsh":
		if _, err := io.WriteString(w, zshPreamble); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported shell %q, want bash or zsh", shell)
	}
	return bashTemplate.Execute(w, data)
}

// completionCases walks the command tree. Each case offers the subcommands and
// flags valid after path.
func completionCases(path string, cmd *cli.Command) []completionCase {
	var words []string
	for _, sub := range cmd.Commands {
		if !sub.Hidden {
			words = append(words, sub.Name)
		}
	}
	for _, f := range cmd.Flags {
		for _, name := range f.Names() {
			if len(name) == 1 {
				words = append(words, "-"+name)
			} else {
				words = append(words, "--"+name)
			}
		}
		if _, ok := f.(*cli.BoolWithInverseFlag); ok {
			words = append(words, "--no-"+f.Names()[0])
		}
	}
	sort.Strings(words)

	cases := []completionCase{{Path: path, Words: strings.Join(words, " ")}}
	for _, sub := range cmd.Commands {
		if sub.Hidden {
			continue
		}
		subPath := strings.TrimSpace(path + " " + sub.Name)
		cases = append(cases, completionCases(subPath, sub)...)
	}
	return cases
}

// CompletionCommandAction prints the completion script for the shell named
// by the first argument, or by $SHELL.
func CompletionCommandAction(_ context.Context, cmd *cli.Command) error {
	shell := cmd.Args().First()
	if shell == "" {
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		default:
			return fmt.Errorf("usage: wordfind completion [bash|zsh]")
		}
	}
	return WriteCompletion(writer(cmd), shell, cmd.Root())
}

// CompletionCommandBuilder constructs the "completion" command.
func CompletionCommandBuilder(_ *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "wordfind completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
