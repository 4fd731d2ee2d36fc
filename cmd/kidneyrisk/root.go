package main

import (
	"github.com/spf13/cobra"

	"github.com/hejijunhao/kidneyrisk/internal/config"
	"github.com/hejijunhao/kidneyrisk/internal/engine/predictor"
	"github.com/hejijunhao/kidneyrisk/internal/exitcode"
	"github.com/hejijunhao/kidneyrisk/internal/logging"
	"github.com/hejijunhao/kidneyrisk/internal/pipeline"
	"github.com/hejijunhao/kidneyrisk/internal/schema"
)

// app holds state shared by all subcommands of one invocation.
type app struct {
	cfg        config.Config
	configPath string

	// flag values, applied over cfg only when set
	modelDir   string
	modelPath  string
	scalerPath string
	ortLib     string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "kidneyrisk",
		Short:         "Kidney disease risk prediction",
		Long:          "Collects clinical measurements, encodes them for a pre-trained classifier and reports the predicted kidney disease risk level.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (or set KIDNEYRISK_CONFIG)")
	pf.StringVar(&a.modelDir, "model-dir", "", "Directory holding model.onnx and scaler.onnx (or set KIDNEYRISK_MODEL_DIR)")
	pf.StringVar(&a.modelPath, "model-path", "", "Classifier artifact, .onnx or .json (or set KIDNEYRISK_MODEL_PATH)")
	pf.StringVar(&a.scalerPath, "scaler-path", "", "Scaler artifact, .onnx or .json (or set KIDNEYRISK_SCALER_PATH)")
	pf.StringVar(&a.ortLib, "ort-lib", "", "ONNX Runtime shared library (or set KIDNEYRISK_ORT_LIB)")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "", "Log format: text or json")

	root.AddCommand(newServeCmd(a), newPredictCmd(a), newSchemaCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	var (
		cfg config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return &exitError{code: exitcode.UsageError, err: err}
	}

	flags := cmd.Flags()
	override := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	override("model-dir", &cfg.Model.Dir, a.modelDir)
	override("model-path", &cfg.Model.ClassifierPath, a.modelPath)
	override("scaler-path", &cfg.Model.ScalerPath, a.scalerPath)
	override("ort-lib", &cfg.Model.RuntimeLib, a.ortLib)
	override("log-level", &cfg.Log.Level, a.logLevel)
	override("log-format", &cfg.Log.Format, a.logFormat)
	a.cfg = cfg

	logging.Init(cfg.Log.Format == "json", logging.ParseLevel(cfg.Log.Level))
	return nil
}

// openPipeline loads the artifacts and wires the pipeline. Failure maps to
// the startup exit code.
func (a *app) openPipeline() (*pipeline.Pipeline, error) {
	cls, sc, lib := a.cfg.Model.ResolvePaths()
	p, err := pipeline.Open(schema.Default(), predictor.Paths{
		Classifier: cls,
		Scaler:     sc,
		RuntimeLib: lib,
	})
	if err != nil {
		return nil, &exitError{code: exitcode.StartupError, err: err}
	}
	return p, nil
}
