package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hejijunhao/kidneyrisk/internal/engine/predictor"
	"github.com/hejijunhao/kidneyrisk/internal/exitcode"
	"github.com/hejijunhao/kidneyrisk/internal/schema"
)

type schemaDoc struct {
	Fields        []schema.FieldInfo `json:"fields" yaml:"fields"`
	Columns       []string           `json:"columns" yaml:"columns"`
	ColumnsSource string             `json:"columns_source" yaml:"columns_source"`
	Unproducible  []string           `json:"unproducible,omitempty" yaml:"unproducible,omitempty"`
}

func newSchemaCmd(a *app) *cobra.Command {
	var (
		format  string
		resolve bool
	)
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the input fields and encoded column layout",
		Long: "Prints every input field and the encoded column layout. With --resolve " +
			"the artifacts are loaded and the layout they report is printed instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := schema.Default()
			doc := schemaDoc{
				Fields:        s.Info(),
				Columns:       s.Columns(),
				ColumnsSource: predictor.SourceFallback,
			}
			if resolve {
				p, err := a.openPipeline()
				if err != nil {
					return err
				}
				defer p.Close()
				eng := p.Engine()
				doc.Columns = eng.ExpectedColumns()
				doc.ColumnsSource = eng.ColumnsSource()
				doc.Unproducible = eng.Unproducible()
			}

			w := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			case "yaml":
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(doc); err != nil {
					return err
				}
				return enc.Close()
			default:
				return &exitError{code: exitcode.UsageError, err: fmt.Errorf("unknown format %q", format)}
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml or json")
	cmd.Flags().BoolVar(&resolve, "resolve", false, "Load artifacts and print the layout they expect")
	return cmd
}
