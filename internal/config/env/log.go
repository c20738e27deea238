package env

import (
	"os"
	"strconv"

	"lion_slot/internal/config"
)

const (
	logModeEnvName  = "LOG_MODE"
	logLevelEnvName = "LOG_LEVEL"
	logDirEnvName   = "LOG_DIR"
	logFileEnvName  = "LOG_FILE"

	appName = "lion_slot"
)

type logConfig struct {
	mode  string
	level string
	dir   string
	file  bool
}

// NewLogConfig никогда не падает: логгер нужен раньше всего остального
func NewLogConfig() config.LogConfig {
	cfg := &logConfig{
		mode:  os.Getenv(logModeEnvName),
		level: os.Getenv(logLevelEnvName),
		dir:   os.Getenv(logDirEnvName),
	}
	if cfg.mode == "" {
		cfg.mode = "dev"
	}
	if cfg.level == "" {
		cfg.level = "debug"
	}
	if cfg.dir == "" {
		cfg.dir = "logs"
	}
	cfg.file, _ = strconv.ParseBool(os.Getenv(logFileEnvName))

	return cfg
}

func (cfg *logConfig) App() string { return appName }
func (cfg *logConfig) Mode() string { return cfg.mode }
func (cfg *logConfig) Level() string { return cfg.level }
func (cfg *logConfig) Dir() string { return cfg.dir }
func (cfg *logConfig) File() bool { return cfg.file }
