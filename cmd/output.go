package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// outputFormat is the --output flag value.
type outputFormat string

const (
	outputTable outputFormat = "table"
	outputJSON  outputFormat = "json"
	outputYAML  outputFormat = "yaml"
)

var _ pflag.Value = (*outputFormat)(nil)

func (o *outputFormat) String() string { return string(*o) }

func (o *outputFormat) Type() string { return "format" }

func (o *outputFormat) Set(value string) error {
	switch f := outputFormat(strings.ToLower(value)); f {
	case outputTable, outputJSON, outputYAML:
		*o = f
		return nil
	default:
		return fmt.Errorf("invalid output format %q (must be one of table, json, yaml)", value)
	}
}

func addOutputFlag(flags *pflag.FlagSet, target *outputFormat) {
	*target = outputTable
	flags.VarP(target, "output", "o", "Output format (table, json, yaml)")
}

// writeStructured encodes value as JSON or YAML.
func writeStructured(w io.Writer, format outputFormat, value any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(value)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(value); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("format %q is not a structured format", format)
	}
}

// renderTable writes title on its own line followed by the table, so the
// title is never wrapped to the column width.
func renderTable(w io.Writer, title string, header table.Row, rows []table.Row) {
	if title != "" {
		_, _ = fmt.Fprintln(w, title)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(header)
	t.AppendRows(rows)
	t.Render()
}
