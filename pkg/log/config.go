package log

type Config struct {
	Level     string           `mapstructure:"level" yaml:"level"`
	Pattern   string           `mapstructure:"pattern" yaml:"pattern"`
	Time      string           `mapstructure:"time" yaml:"time"`
	Caller    bool             `mapstructure:"caller" yaml:"caller"`
	Appenders []AppenderConfig `mapstructure:"appenders" yaml:"appenders"`
}

type AppenderConfig struct {
	Type string          `mapstructure:"type" yaml:"type"` // console | stderr | file
	File FileAppenderOpt `mapstructure:"file" yaml:"file,omitempty"`
}

type FileAppenderOpt struct {
	Filename   string `mapstructure:"filename" yaml:"filename"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// DefaultConfig logs info and above to stderr, leaving stdout to record output.
func DefaultConfig() *Config {
	return &Config{
		Level:   "info",
		Pattern: DefaultPattern,
		Time:    DefaultTime,
		Appenders: []AppenderConfig{
			{Type: "stderr"},
		},
	}
}
