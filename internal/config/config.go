package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all kidneyrisk configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Model  ModelConfig  `yaml:"model"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	CORSOrigins     []string      `yaml:"cors_origins"`
}

// ModelConfig locates the scaler and classifier artifacts.
type ModelConfig struct {
	Dir            string `yaml:"dir"`
	ClassifierPath string `yaml:"classifier_path"`
	ScalerPath     string `yaml:"scaler_path"`
	RuntimeLib     string `yaml:"runtime_lib"` // ONNX Runtime shared library
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "text" or "json"
}

// Default file names inside ModelConfig.Dir.
const (
	DefaultClassifierFile = "model.onnx"
	DefaultScalerFile     = "scaler.onnx"
	DefaultRuntimeLibFile = "libonnxruntime.so"
)

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8501",
			ShutdownTimeout: 10 * time.Second,
		},
		Model: ModelConfig{
			Dir: "models",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration from defaults, then the YAML file named by
// KIDNEYRISK_CONFIG if set, then environment variables.
func Load() (Config, error) {
	return LoadFile(os.Getenv("KIDNEYRISK_CONFIG"))
}

// LoadFile is Load with an explicit config file path. An empty path skips
// the file.
func LoadFile(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		if err := cfg.LoadFromFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// LoadFromFile merges values from a YAML file into c. Keys absent from the
// file leave the current values in place.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Server.Addr = getenv("KIDNEYRISK_ADDR", c.Server.Addr)
	c.Server.ShutdownTimeout = getenvDuration("KIDNEYRISK_SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)
	if v := os.Getenv("KIDNEYRISK_CORS_ORIGINS"); v != "" {
		c.Server.CORSOrigins = splitList(v)
	}

	c.Model.Dir = getenv("KIDNEYRISK_MODEL_DIR", c.Model.Dir)
	c.Model.ClassifierPath = getenv("KIDNEYRISK_MODEL_PATH", c.Model.ClassifierPath)
	c.Model.ScalerPath = getenv("KIDNEYRISK_SCALER_PATH", c.Model.ScalerPath)
	c.Model.RuntimeLib = getenv("KIDNEYRISK_ORT_LIB", c.Model.RuntimeLib)

	c.Log.Level = getenv("KIDNEYRISK_LOG_LEVEL", c.Log.Level)
	c.Log.Format = getenv("KIDNEYRISK_LOG_FORMAT", c.Log.Format)
}

// ResolvePaths returns the classifier, scaler and runtime library paths.
// Explicit paths take precedence over the default names inside Dir.
func (m ModelConfig) ResolvePaths() (classifier, scaler, runtimeLib string) {
	dir := m.Dir
	if dir == "" {
		dir = "models"
	}
	classifier, scaler, runtimeLib = m.ClassifierPath, m.ScalerPath, m.RuntimeLib
	if classifier == "" {
		classifier = filepath.Join(dir, DefaultClassifierFile)
	}
	if scaler == "" {
		scaler = filepath.Join(dir, DefaultScalerFile)
	}
	if runtimeLib == "" {
		runtimeLib = filepath.Join(dir, DefaultRuntimeLibFile)
	}
	return classifier, scaler, runtimeLib
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
