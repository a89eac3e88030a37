package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// outputFormat selects how command results are printed.
type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string {
	return string(*f)
}

func (f *outputFormat) Set(v string) error {
	switch outputFormat(strings.ToLower(v)) {
	case formatText, formatJSON, formatYAML:
		*f = outputFormat(strings.ToLower(v))
		return nil
	}
	return fmt.Errorf("must be one of text, json, yaml")
}

func (f *outputFormat) Type() string {
	return "format"
}

// encode writes v as JSON or YAML. It reports false for the text format so
// the caller can render its own table.
func (f outputFormat) encode(w io.Writer, v interface{}) (bool, error) {
	switch f {
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return true, fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return true, err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return true, enc.Close()
	}
	return false, nil
}
