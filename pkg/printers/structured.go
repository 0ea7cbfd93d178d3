package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format selects a structured output encoding.
type Format string

const (
	FormatPretty Format = ""
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
)

// ParseFormat validates a user supplied output format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatPretty, FormatJSON, FormatYAML:
		return f, nil
	case "pretty", "text":
		return FormatPretty, nil
	}
	return "", fmt.Errorf("printers: unknown output format %q, use json or yaml", s)
}

// Encode writes v to w in the given structured format.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("printers: %q is not a structured format", f)
}
