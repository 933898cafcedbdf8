package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go2tv.app/caster/caster"
)

const defaultLogLevel = "info"

type Config struct {
	Casting  bool   `koanf:"casting"`   // "casting enabled" switch
	LogLevel string `koanf:"log_level"` // zerolog level name

	path string
}

func defaults() *Config {
	return &Config{
		Casting:  false,
		LogLevel: defaultLogLevel,
	}
}

// GetAppConfig loads the settings file from the user config directory,
// creating it with the defaults on first use.
func GetAppConfig() (*Config, error) {
	path, err := AppPath()
	if err != nil {
		return nil, errors.Wrap(err, "GetAppConfig: failed to access config path")
	}

	return Load(path)
}

// Load reads the settings file at path. A missing file is created with the
// defaults.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "Load: failed to open config")
		}

		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, errors.Wrap(err, "Load: failed to create default path")
		}

		conf := defaults()
		if err := conf.Save(path); err != nil {
			return nil, errors.Wrap(err, "Load: failed to create default config")
		}

		return conf, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, "Load: failed to decode config")
	}

	conf := defaults()
	if err := k.Unmarshal("", conf); err != nil {
		return nil, errors.Wrap(err, "Load: failed to unmarshal config")
	}
	conf.path = path

	return conf, nil
}

// AppPath returns the default settings file location.
func AppPath() (string, error) {
	oscfg, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "AppPath: failed to get config dir")
	}

	return fmt.Sprint(filepath.Join(oscfg, "go2tv", "caster.toml")), nil
}

// SaveAppConfig writes the settings back to where they were loaded from,
// or to the default location.
func (s *Config) SaveAppConfig() error {
	path := s.path
	if path == "" {
		var err error
		path, err = AppPath()
		if err != nil {
			return errors.Wrap(err, "SaveAppConfig: failed to access config path")
		}
	}

	return s.Save(path)
}

// Save writes the settings to path.
func (s *Config) Save(path string) error {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(s, "koanf"), nil); err != nil {
		return errors.Wrap(err, "Save: failed to load settings")
	}

	b, err := k.Marshal(toml.Parser())
	if err != nil {
		return errors.Wrap(err, "Save: failed to marshal toml")
	}

	if err := os.WriteFile(path, b, 0644); err != nil {
		return errors.Wrap(err, "Save: failed save config")
	}
	s.path = path

	return nil
}

// Level returns the configured log level, falling back to info.
func (s *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil || s.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// Options turns the settings into caster selection options.
func (s *Config) Options() caster.Options {
	return caster.Options{
		Enabled: s.Casting,
	}
}
