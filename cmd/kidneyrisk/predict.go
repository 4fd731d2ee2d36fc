package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hejijunhao/kidneyrisk/internal/exitcode"
	"github.com/hejijunhao/kidneyrisk/internal/form"
	"github.com/hejijunhao/kidneyrisk/internal/logging"
	"github.com/hejijunhao/kidneyrisk/internal/output"
	"github.com/hejijunhao/kidneyrisk/internal/output/stdout"
	"github.com/hejijunhao/kidneyrisk/internal/pipeline"
)

func newPredictCmd(a *app) *cobra.Command {
	var (
		file      string
		pretty    bool
		verbosity string
	)
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the risk level for one patient record",
		Long: "Reads a JSON object of field name to value from --file or stdin " +
			"and writes the prediction as JSON to stdout.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return &exitError{code: exitcode.UsageError, err: fmt.Errorf("open record: %w", err)}
				}
				defer f.Close()
				in = f
			}
			return a.predict(cmd, in, stdout.New(cmd.OutOrStdout(), pretty), output.ParseVerbosity(verbosity))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON record file, - for stdin")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent JSON output")
	cmd.Flags().StringVar(&verbosity, "verbosity", "standard", "Output detail: minimal, standard or full")
	return cmd
}

func (a *app) predict(cmd *cobra.Command, in io.Reader, out output.Output, verbosity output.Verbosity) error {
	p, err := a.openPipeline()
	if err != nil {
		return err
	}
	defer p.Close()

	dec := json.NewDecoder(in)
	dec.UseNumber()
	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return &exitError{code: exitcode.UsageError, err: fmt.Errorf("decode record: %w", err)}
	}

	id := uuid.NewString()
	ctx := logging.WithSubmissionID(cmd.Context(), id)

	values, err := form.ValuesFromMap(body)
	if err != nil {
		return &exitError{code: exitcode.Rejected, err: errors.New(pipeline.Describe(err))}
	}
	res, err := p.Submit(ctx, values)
	if err != nil {
		return &exitError{code: exitcode.Rejected, err: errors.New(pipeline.Describe(err))}
	}

	if err := out.Write(ctx, output.FormatResult(id, res.Report, res.Vector, verbosity)); err != nil {
		return err
	}
	return out.Close()
}
