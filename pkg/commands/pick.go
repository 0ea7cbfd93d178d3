package commands

import (
	"errors"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// pickable are the verbs offered when gratitude runs without arguments. They
// need no positional args.
var pickable = map[string]bool{
	"add":        true,
	"list":       true,
	"streak":     true,
	"categories": true,
	"info":       true,
	"ui":         true,
}

// promptNext lets the user choose a subcommand and runs it with its defaults.
// add is switched to its interactive form.
func promptNext(cmd *cobra.Command) error {
	var subcommands []*cobra.Command
	for _, c := range cmd.Commands() {
		if pickable[c.Name()] {
			subcommands = append(subcommands, c)
		}
	}
	if len(subcommands) == 0 {
		return cmd.Help()
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | bold }} {{ .Short | green }}",
		Inactive: "   {{ .Name }} {{ .Short | cyan }}",
		Selected: "{{ .Name | bold }}",
	}

	searcher := func(input string, index int) bool {
		name := strings.ReplaceAll(strings.ToLower(subcommands[index].Name()+subcommands[index].Short), " ", "")
		input = strings.ReplaceAll(strings.ToLower(input), " ", "")
		return strings.Contains(name, input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Was möchtest du tun",
		Items:     subcommands,
		Templates: templates,
		Size:      len(subcommands),
		Searcher:  searcher,
		Stdin:     io.NopCloser(cmd.InOrStdin()),
		Stdout:    nopCloser{cmd.OutOrStdout()},
	}

	i, _, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil
		}
		return err
	}

	next := subcommands[i]
	if next.Name() == "add" {
		_ = next.Flags().Set("interactive", "true")
	}
	next.SetContext(cmd.Context())
	return next.RunE(next, nil)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
