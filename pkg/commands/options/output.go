// Package options defines shared flag helpers for CLI commands.
package options

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/printers"
)

// OutputOptions selects how results are written.
type OutputOptions struct {
	JSON   bool
	YAML   bool
	Output string
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
	cmd.Flags().BoolVar(&po.YAML, "yaml", false,
		"Output as YAML.")
	cmd.Flags().StringVarP(&po.Output, "output", "o", "",
		"Output format. One of 'pretty', 'json' or 'yaml'.")
}

// Format resolves the flags to a single format.
func (o *OutputOptions) Format() (printers.Format, error) {
	if o.JSON && o.YAML {
		return "", errors.New("--json and --yaml are mutually exclusive")
	}
	switch {
	case o.JSON:
		return printers.FormatJSON, nil
	case o.YAML:
		return printers.FormatYAML, nil
	}
	return printers.ParseFormat(o.Output)
}

// HandleError reports err as {"error": ...} on w when JSON output was asked
// for, and returns it unchanged otherwise.
func (o *OutputOptions) HandleError(w io.Writer, err error) error {
	if err == nil {
		return nil
	}
	if f, _ := o.Format(); f != printers.FormatJSON {
		return err
	}
	if w == nil {
		w = color.Output
	}
	b, merr := json.Marshal(map[string]string{"error": err.Error()})
	if merr != nil {
		return merr
	}
	_, _ = fmt.Fprintln(w, string(b))
	return nil
}
