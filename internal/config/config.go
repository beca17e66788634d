// Package config handles global configuration loading using viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/encoding/htmlindex"

	"firestige.xyz/rcg/pkg/log"
	"firestige.xyz/rcg/pkg/rcg"
)

// GlobalConfig is the top-level configuration.
// Maps to the `rcg:` root key in YAML.
type GlobalConfig struct {
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Decoder DecoderConfig `mapstructure:"decoder" yaml:"decoder"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
}

// ─── Log ───

// LogConfig contains logging settings.
type LogConfig struct {
	Level   string           `mapstructure:"level" yaml:"level"` // trace / debug / info / warn / error
	Pattern string           `mapstructure:"pattern" yaml:"pattern"`
	Time    string           `mapstructure:"time" yaml:"time"`
	Outputs LogOutputsConfig `mapstructure:"outputs" yaml:"outputs"`
}

// LogOutputsConfig contains log output destinations.
type LogOutputsConfig struct {
	Console ConsoleOutputConfig `mapstructure:"console" yaml:"console"`
	File    FileOutputConfig    `mapstructure:"file" yaml:"file"`
}

// ConsoleOutputConfig configures terminal log output.
type ConsoleOutputConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Stream  string `mapstructure:"stream" yaml:"stream"` // stderr | stdout
}

// FileOutputConfig configures file log output.
type FileOutputConfig struct {
	Enabled  bool           `mapstructure:"enabled" yaml:"enabled"`
	Path     string         `mapstructure:"path" yaml:"path"`
	Rotation RotationConfig `mapstructure:"rotation" yaml:"rotation"`
}

// RotationConfig configures log file rotation.
type RotationConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxAgeDays int  `mapstructure:"max_age_days" yaml:"max_age_days"`
	MaxBackups int  `mapstructure:"max_backups" yaml:"max_backups"`
	Compress   bool `mapstructure:"compress" yaml:"compress"`
}

// ─── Decoder ───

// DecoderConfig tunes the log parser.
type DecoderConfig struct {
	ShowStrategy   string `mapstructure:"show_strategy" yaml:"show_strategy"` // fast | safe
	Strict         bool   `mapstructure:"strict" yaml:"strict"`
	MessageCharset string `mapstructure:"message_charset" yaml:"message_charset"` // empty = raw bytes
	Version        string `mapstructure:"version" yaml:"version"`                 // empty = read it from the header
}

// ─── Output ───

// OutputConfig selects the dump sink and its options.
type OutputConfig struct {
	Type    string                 `mapstructure:"type" yaml:"type"` // empty = pick by terminal
	Path    string                 `mapstructure:"path" yaml:"path"` // empty = stdout
	Options map[string]interface{} `mapstructure:"options" yaml:"options"`
}

// ─── Loading ───

// configRoot is the top-level wrapper matching the YAML structure `rcg: ...`.
type configRoot struct {
	RCG GlobalConfig `mapstructure:"rcg" yaml:"rcg"`
}

// Load loads configuration from file. An empty path yields defaults plus
// environment overrides.
// The YAML file uses `rcg:` as root key; env vars use the RCG_ prefix
// (e.g. RCG_LOG_LEVEL, RCG_DECODER_SHOW_STRATEGY).
func Load(path string) (*GlobalConfig, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// The `rcg.` key prefix maps to `RCG_` through the key replacer.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var root configRoot
	if err := v.Unmarshal(&root); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg := root.RCG

	if err := cfg.ValidateAndApplyDefaults(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// setDefaults sets default values. All keys use the "rcg." prefix.
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("rcg.log.level", "info")
	v.SetDefault("rcg.log.pattern", log.DefaultPattern)
	v.SetDefault("rcg.log.time", log.DefaultTime)
	v.SetDefault("rcg.log.outputs.console.enabled", true)
	v.SetDefault("rcg.log.outputs.console.stream", "stderr")
	v.SetDefault("rcg.log.outputs.file.enabled", false)
	v.SetDefault("rcg.log.outputs.file.path", "rcg.log")
	v.SetDefault("rcg.log.outputs.file.rotation.max_size_mb", 100)
	v.SetDefault("rcg.log.outputs.file.rotation.max_age_days", 30)
	v.SetDefault("rcg.log.outputs.file.rotation.max_backups", 5)
	v.SetDefault("rcg.log.outputs.file.rotation.compress", true)

	// Decoder defaults
	v.SetDefault("rcg.decoder.show_strategy", "fast")
	v.SetDefault("rcg.decoder.strict", false)
	v.SetDefault("rcg.decoder.message_charset", "")
	v.SetDefault("rcg.decoder.version", "")

	// Output defaults
	v.SetDefault("rcg.output.type", "")
	v.SetDefault("rcg.output.path", "")
}

// ValidateAndApplyDefaults validates configuration and normalizes values.
func (cfg *GlobalConfig) ValidateAndApplyDefaults() error {
	// ── Log validation ──
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Log.Level] {
		return fmt.Errorf("invalid log level: %s (must be trace/debug/info/warn/error)", cfg.Log.Level)
	}
	if s := cfg.Log.Outputs.Console.Stream; s != "stderr" && s != "stdout" {
		return fmt.Errorf("invalid log console stream: %s (must be stderr/stdout)", s)
	}
	if cfg.Log.Outputs.File.Enabled && cfg.Log.Outputs.File.Path == "" {
		return fmt.Errorf("log.outputs.file.path is required when log.outputs.file.enabled=true")
	}

	// ── Decoder validation ──
	if _, err := rcg.ParseShowStrategy(cfg.Decoder.ShowStrategy); err != nil {
		return err
	}
	if cfg.Decoder.MessageCharset != "" {
		if _, err := htmlindex.Get(cfg.Decoder.MessageCharset); err != nil {
			return fmt.Errorf("invalid decoder.message_charset %q: %w", cfg.Decoder.MessageCharset, err)
		}
	}
	if cfg.Decoder.Version != "" {
		if _, err := rcg.ParseLogVersion(cfg.Decoder.Version); err != nil {
			return err
		}
	}

	if cfg.Output.Options == nil {
		cfg.Output.Options = map[string]interface{}{}
	}
	return nil
}

// LoggerConfig converts the log section into a logger configuration.
func (c *LogConfig) LoggerConfig() *log.Config {
	out := &log.Config{Level: c.Level, Pattern: c.Pattern, Time: c.Time, Caller: true}
	if c.Outputs.Console.Enabled {
		out.Appenders = append(out.Appenders, log.AppenderConfig{Type: c.Outputs.Console.Stream})
	}
	if c.Outputs.File.Enabled {
		r := c.Outputs.File.Rotation
		out.Appenders = append(out.Appenders, log.AppenderConfig{
			Type: "file",
			File: log.FileAppenderOpt{
				Filename:   c.Outputs.File.Path,
				MaxSize:    r.MaxSizeMB,
				MaxBackups: r.MaxBackups,
				MaxAge:     r.MaxAgeDays,
				Compress:   r.Compress,
			},
		})
	}
	return out
}

// ParserOptions converts the decoder section into parser options.
func (c *DecoderConfig) ParserOptions() ([]rcg.Option, error) {
	strategy, err := rcg.ParseShowStrategy(c.ShowStrategy)
	if err != nil {
		return nil, err
	}
	opts := []rcg.Option{rcg.WithShowStrategy(strategy), rcg.WithStrict(c.Strict)}

	if c.MessageCharset != "" {
		enc, err := htmlindex.Get(c.MessageCharset)
		if err != nil {
			return nil, fmt.Errorf("message charset %q: %w", c.MessageCharset, err)
		}
		opts = append(opts, rcg.WithMessageDecoder(enc.NewDecoder()))
	}
	if c.Version != "" {
		v, err := rcg.ParseLogVersion(c.Version)
		if err != nil {
			return nil, err
		}
		opts = append(opts, rcg.WithVersion(v))
	}
	return opts, nil
}
