// Package logging configures the global zerolog logger for the CLI.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mau.fi/zeroconfig"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigEnv names a zeroconfig YAML file describing log writers.
	ConfigEnv = "DOCSFOOTER_LOG_CONFIG"
	// DebugEnv lowers the console logger to debug level when truthy.
	DebugEnv = "DOCSFOOTER_DEBUG"
)

// Setup configures log.Logger from the environment: the zeroconfig file in
// DOCSFOOTER_LOG_CONFIG when set, otherwise a console writer on out.
func Setup(out io.Writer) error {
	if path := strings.TrimSpace(os.Getenv(ConfigEnv)); path != "" {
		logger, err := Load(path)
		if err != nil {
			return err
		}
		log.Logger = *logger
		return nil
	}
	log.Logger = Console(out, debugEnabled(os.Getenv(DebugEnv)))
	return nil
}

// Load compiles the zeroconfig YAML at path, e.g.
//
//	min_level: debug
//	writers:
//	  - type: stderr
//	    format: pretty-colored
//	  - type: file
//	    format: json
//	    filename: ./logs/docsfooter.log
func Load(path string) (*zerolog.Logger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("logging: %s is not readable: %w", ConfigEnv, err)
	}
	return Parse(data)
}

// Parse compiles a zeroconfig YAML document.
func Parse(data []byte) (*zerolog.Logger, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("logging: config is empty")
	}
	var cfg zeroconfig.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("logging: config is not valid yaml: %w", err)
	}
	logger, err := cfg.Compile()
	if err != nil {
		return nil, fmt.Errorf("logging: config is not valid for zerolog, see go.mau.fi/zeroconfig documentation: %w", err)
	}
	return logger, nil
}

// Console returns a human readable logger writing to out. Info level unless
// debug is set.
func Console(out io.Writer, debug bool) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func debugEnabled(value string) bool {
	enabled, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && enabled
}
