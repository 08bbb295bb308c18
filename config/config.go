package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/titanous/json5"

	"github.com/mordilloSan/go-phklogger/logger"
)

// Environment variables read by ApplyEnv.
const (
	EnvLevel   = "LOGGER_LEVEL"
	EnvFile    = "LOGGER_FILE"
	EnvName    = "LOGGER_NAME"
	EnvConsole = "LOGGER_CONSOLE"
)

// file mirrors logger.Config with the keys accepted in configuration files.
type file struct {
	Target         string           `mapstructure:"target"`
	Threshold      logger.LevelSpec `mapstructure:"threshold"`
	Name           string           `mapstructure:"name"`
	Console        bool             `mapstructure:"console"`
	BackupCount    int              `mapstructure:"backup_count"`
	RotateWhen     string           `mapstructure:"rotate_when"`
	RotateInterval int              `mapstructure:"rotate_interval"`
	MaxSizeMB      int              `mapstructure:"max_size_mb"`
	Pattern        string           `mapstructure:"pattern"`
}

// Load reads a logger configuration from path. The format follows the file
// extension: .toml, or .json and .json5 (parsed as JSON5). Unknown keys are
// an error. The threshold may be a level name or an integer severity.
func Load(path string) (logger.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return logger.Config{}, errors.Wrap(err, "read config")
	}

	raw := map[string]any{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	case ".json", ".json5":
		err = json5.Unmarshal(data, &raw)
	default:
		return logger.Config{}, errors.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return logger.Config{}, errors.Wrapf(err, "parse %s", path)
	}

	return decode(raw)
}

func decode(raw map[string]any) (logger.Config, error) {
	var f file
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       levelSpecHook,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &f,
	})
	if err != nil {
		return logger.Config{}, errors.WithStack(err)
	}
	if err := dec.Decode(raw); err != nil {
		return logger.Config{}, errors.Wrap(err, "decode config")
	}

	return logger.Config{
		Target:         f.Target,
		Threshold:      f.Threshold,
		Name:           f.Name,
		Console:        f.Console,
		BackupCount:    f.BackupCount,
		RotateWhen:     f.RotateWhen,
		RotateInterval: f.RotateInterval,
		MaxSizeMB:      f.MaxSizeMB,
		Pattern:        f.Pattern,
	}, nil
}

var levelSpecType = reflect.TypeOf((*logger.LevelSpec)(nil)).Elem()

// levelSpecHook turns threshold values into a LevelName or a Level.
func levelSpecHook(from, to reflect.Type, data any) (any, error) {
	if to != levelSpecType {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		return ParseLevelSpec(v), nil
	case int64:
		return logger.Level(v), nil
	case int:
		return logger.Level(v), nil
	case float64:
		if v != math.Trunc(v) {
			return nil, errors.Errorf("threshold %v is not an integer", v)
		}
		return logger.Level(int(v)), nil
	default:
		return nil, errors.Errorf("threshold must be a name or an integer, got %T", data)
	}
}

// ParseLevelSpec reads a level given as text: an integer severity becomes a
// Level, anything else a LevelName.
func ParseLevelSpec(s string) logger.LevelSpec {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return logger.Level(n)
	}
	return logger.LevelName(s)
}

// ApplyEnv overrides cfg with the LOGGER_* environment variables that are set.
func ApplyEnv(cfg *logger.Config) error {
	if v, ok := os.LookupEnv(EnvLevel); ok {
		cfg.Threshold = ParseLevelSpec(v)
	}
	if v, ok := os.LookupEnv(EnvFile); ok {
		cfg.Target = v
	}
	if v, ok := os.LookupEnv(EnvName); ok {
		cfg.Name = v
	}
	if v, ok := os.LookupEnv(EnvConsole); ok {
		console, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "parse %s", EnvConsole)
		}
		cfg.Console = console
	}
	return nil
}
