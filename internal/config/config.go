// File: internal/config/config.go
package config

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Interface defines the contract for accessing application configuration.
// This allows for dependency injection and mocking in tests.
type Interface interface {
	Logger() LoggerConfig
	Tolerance() ToleranceConfig
	Batch() BatchConfig
	Render() RenderConfig

	// Tolerance Setters
	SetToleranceAbsTol(float64)
	SetToleranceRelTol(float64)

	// Batch Setters
	SetBatchConcurrency(int)
	SetBatchFailFast(bool)
}

// Config holds the entire application configuration.
type Config struct {
	LoggerCfg    LoggerConfig    `mapstructure:"logger" yaml:"logger"`
	ToleranceCfg ToleranceConfig `mapstructure:"tolerance" yaml:"tolerance"`
	BatchCfg     BatchConfig     `mapstructure:"batch" yaml:"batch"`
	RenderCfg    RenderConfig    `mapstructure:"render" yaml:"render"`
}

// --- Interface Method Implementations (Getters) ---

func (c *Config) Logger() LoggerConfig       { return c.LoggerCfg }
func (c *Config) Tolerance() ToleranceConfig { return c.ToleranceCfg }
func (c *Config) Batch() BatchConfig         { return c.BatchCfg }
func (c *Config) Render() RenderConfig       { return c.RenderCfg }

// --- Interface Method Implementations (Setters) ---

func (c *Config) SetToleranceAbsTol(f float64) { c.ToleranceCfg.AbsTol = f }
func (c *Config) SetToleranceRelTol(f float64) { c.ToleranceCfg.RelTol = f }
func (c *Config) SetBatchConcurrency(n int)    { c.BatchCfg.Concurrency = n }
func (c *Config) SetBatchFailFast(b bool)      { c.BatchCfg.FailFast = b }

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color names used for each log level on the console.
type ColorConfig struct {
	Debug string `mapstructure:"debug" yaml:"debug"`
	Info  string `mapstructure:"info" yaml:"info"`
	Warn  string `mapstructure:"warn" yaml:"warn"`
	Error string `mapstructure:"error" yaml:"error"`
	Fatal string `mapstructure:"fatal" yaml:"fatal"`
}

// ToleranceConfig holds the default tolerances used for approximate
// comparisons (isclose) when a request does not carry its own.
type ToleranceConfig struct {
	AbsTol float64 `mapstructure:"abs_tol" yaml:"abs_tol"`
	RelTol float64 `mapstructure:"rel_tol" yaml:"rel_tol"`
}

// BatchConfig tunes the batch evaluation runner.
type BatchConfig struct {
	// Concurrency is the number of jobs evaluated in parallel.
	Concurrency int `mapstructure:"concurrency" yaml:"concurrency"`
	// RateLimit caps the number of jobs started per second. Zero disables it.
	RateLimit float64 `mapstructure:"rate_limit" yaml:"rate_limit"`
	Burst     int     `mapstructure:"burst" yaml:"burst"`
	// FailFast aborts the whole batch on the first failing job.
	FailFast bool `mapstructure:"fail_fast" yaml:"fail_fast"`
	// Poll makes follow mode poll the job file instead of using inotify.
	Poll bool `mapstructure:"poll" yaml:"poll"`
}

// RenderConfig controls SVG output.
type RenderConfig struct {
	Width       int      `mapstructure:"width" yaml:"width"`
	Height      int      `mapstructure:"height" yaml:"height"`
	Scale       float64  `mapstructure:"scale" yaml:"scale"`
	StrokeWidth float64  `mapstructure:"stroke_width" yaml:"stroke_width"`
	HeadLength  float64  `mapstructure:"head_length" yaml:"head_length"`
	HeadAngle   float64  `mapstructure:"head_angle" yaml:"head_angle"`
	Background  string   `mapstructure:"background" yaml:"background"`
	Palette     []string `mapstructure:"palette" yaml:"palette"`
}

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// This should not happen with defaults.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for various configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "vector2")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.fatal", "magenta")

	// -- Tolerance --
	v.SetDefault("tolerance.abs_tol", 1e-9)
	v.SetDefault("tolerance.rel_tol", 1e-9)

	// -- Batch --
	v.SetDefault("batch.concurrency", 8)
	v.SetDefault("batch.rate_limit", 0.0)
	v.SetDefault("batch.burst", 1)
	v.SetDefault("batch.fail_fast", false)
	v.SetDefault("batch.poll", false)

	// -- Render --
	v.SetDefault("render.width", 512)
	v.SetDefault("render.height", 512)
	v.SetDefault("render.scale", 40.0)
	v.SetDefault("render.stroke_width", 2.0)
	v.SetDefault("render.head_length", 10.0)
	v.SetDefault("render.head_angle", 25.0)
	v.SetDefault("render.background", "white")
	v.SetDefault("render.palette", []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd"})
}

// NewConfigFromViper creates a new configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if cfg.LoggerCfg.LogFile != "" {
		path, err := homedir.Expand(cfg.LoggerCfg.LogFile)
		if err != nil {
			return nil, fmt.Errorf("invalid logger.log_file: %w", err)
		}
		cfg.LoggerCfg.LogFile = path
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	if c.ToleranceCfg.AbsTol < 0 || c.ToleranceCfg.RelTol < 0 {
		return fmt.Errorf("tolerance.abs_tol and tolerance.rel_tol must be non-negative")
	}
	if err := c.BatchCfg.Validate(); err != nil {
		return fmt.Errorf("batch configuration invalid: %w", err)
	}
	if err := c.RenderCfg.Validate(); err != nil {
		return fmt.Errorf("render configuration invalid: %w", err)
	}
	return nil
}

// Validate checks the BatchConfig settings.
func (b BatchConfig) Validate() error {
	if b.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be a positive integer")
	}
	if b.RateLimit < 0 {
		return fmt.Errorf("rate_limit must not be negative")
	}
	if b.RateLimit > 0 && b.Burst <= 0 {
		return fmt.Errorf("burst must be positive when rate_limit is set")
	}
	return nil
}

// Validate checks the RenderConfig settings.
func (r RenderConfig) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("width and height must be positive")
	}
	if r.Scale <= 0 {
		return fmt.Errorf("scale must be positive")
	}
	if len(r.Palette) == 0 {
		return fmt.Errorf("palette must not be empty")
	}
	return nil
}

// SearchPaths returns the directories searched for vector2.yaml: the working
// directory, then ~/.vector2.
func SearchPaths() []string {
	paths := []string{"."}
	if home, err := homedir.Dir(); err == nil {
		paths = append(paths, home+"/.vector2")
	}
	return paths
}
