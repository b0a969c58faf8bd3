package logfacade

import (
	"os"
	"strings"

	"github.com/Station-Manager/errors"
	"gopkg.in/yaml.v3"
)

// Modes are the process-wide run flags.
type Modes struct {
	// Dev makes misuse of the error entry points fail loudly.
	Dev   bool `yaml:"dev"`
	// Debug suppresses every remote report; local display still happens.
	Debug bool `yaml:"debug"`
}

// LoggingConfig configures the zerolog-backed Service.
type LoggingConfig struct {
	Level             string `yaml:"level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	WithTimestamp     bool   `yaml:"with_timestamp"`
	ConsoleLogging    bool   `yaml:"console_logging"`
	ConsoleNoColor    bool   `yaml:"console_no_color"`
	ConsoleTimeFormat string `yaml:"console_time_format"`
	FileLogging       bool   `yaml:"file_logging"`
	RelLogFileDir     string `yaml:"rel_log_file_dir"`
	LogFileMaxBackups int    `yaml:"log_file_max_backups" validate:"gte=0"`
	LogFileMaxAgeDays int    `yaml:"log_file_max_age_days" validate:"gte=0"`
	LogFileMaxSizeMB  int    `yaml:"log_file_max_size_mb" validate:"gte=0"`
	LogFileCompress   bool   `yaml:"log_file_compress"`
}

// Config is everything Bootstrap needs to assemble a Facade.
type Config struct {
	AppName     string `yaml:"app_name" validate:"required"`
	AppRoot     string `yaml:"app_root" validate:"required"`
	SourceDir   string `yaml:"source_dir"`
	ProcessKind string `yaml:"process_kind" validate:"required"`
	Modes       Modes  `yaml:"modes"`

	// Strictness selects which severities reject non-error input:
	// "none", "all", "fatal" or "error". Empty follows Modes.Dev.
	Strictness      string        `yaml:"strictness" validate:"omitempty,oneof=none all fatal error"`
	DebugNamespaces []string      `yaml:"debug_namespaces"`
	Logging         LoggingConfig `yaml:"logging"`
}

// LoadConfig reads a YAML config file, fills defaults and validates it.
func LoadConfig(path string) (*Config, error) {
	const op errors.Op = "logfacade.LoadConfig"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgReadConfig)
	}

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgParseConfig)
	}

	cfg.applyDefaults()
	if err = validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.SourceDir == emptyString {
		c.SourceDir = DefaultSourceDir
	}
	if c.ProcessKind == emptyString {
		c.ProcessKind = DefaultProcessKind
	}
	if c.Logging.Level == emptyString {
		c.Logging.Level = defaultLogLevel
	}
	c.Strictness = strings.ToLower(strings.TrimSpace(c.Strictness))
}

// StrictPolicy reports whether the given severity rejects non-error input.
type StrictPolicy func(sev Severity) bool

// StrictFor builds the policy named by strictness. An empty name yields
// "all" when dev is set and "none" otherwise.
func StrictFor(strictness string, dev bool) StrictPolicy {
	switch strings.ToLower(strings.TrimSpace(strictness)) {
	case strictnessAll:
		return func(Severity) bool { return true }
	case strictnessFatal:
		return func(sev Severity) bool { return sev == SeverityFatal }
	case strictnessError:
		return func(sev Severity) bool { return sev == SeverityError }
	case strictnessNone:
		return func(Severity) bool { return false }
	}
	return func(Severity) bool { return dev }
}
