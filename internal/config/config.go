// Package config loads and validates the YAML configuration file,
// creating it with defaults on first run.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/go-playground/validator/v10"
	"github.com/karasuno/snapsweep/internal/env"
	"github.com/muesli/reflow/indent"
	"gopkg.in/yaml.v2"
)

var validate *validator.Validate

type Config struct {
	Core    Core    `yaml:"core"`
	List    List    `yaml:"list"`
	Filter  Filter  `yaml:"filter"`
	Logging Logging `yaml:"logging"`
}

type Core struct {
	// ScreenshotsDir is the single directory this tool scans
	ScreenshotsDir string `yaml:"screenshots_dir" validate:"required"`

	// TrashDir overrides the home trash location (mostly for tests)
	TrashDir string `yaml:"trash_dir"`

	// HomeFallback falls back to copy+delete for cross-device moves
	HomeFallback bool `yaml:"home_fallback"`

	Undo Undo `yaml:"undo"`
}

type Undo struct {
	// MaxBatches caps the undo history; 0 means unbounded
	MaxBatches int `yaml:"max_batches" validate:"min=0"`

	Verbose bool `yaml:"verbose"`
}

type List struct {
	SortBy     string `yaml:"sort_by" validate:"required,oneof=name createdAt modifiedAt size"`
	Descending bool   `yaml:"descending"`
}

type Filter struct {
	Within        string  `yaml:"within" validate:"omitempty,validDuration"`
	VerifyContent bool    `yaml:"verify_content"`
	Exclude       Exclude `yaml:"exclude"`
}

type Exclude struct {
	Files    []string   `yaml:"files"`
	Patterns []string   `yaml:"patterns"`
	Globs    []string   `yaml:"globs"`
	Size     SizeConfig `yaml:"size"`
}

type SizeConfig struct {
	Min string `yaml:"min" validate:"omitempty,validSize"`
	Max string `yaml:"max" validate:"omitempty,validSize"`
}

type Logging struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level" validate:"required,oneof=debug info warn error"`
	MaxSize string `yaml:"max_size" validate:"omitempty,validSize"`
}

type configError struct {
	configPath string
	parser     parser
	err        error
}

type parser struct{}

func (p parser) getDefaultConfigContents() string {
	defaultConfig := NewDefaultConfig()
	content, _ := yaml.Marshal(defaultConfig)
	return string(content)
}

func (e configError) Error() string {
	return heredoc.Docf(`
		Couldn't load the %q config file.
		Please try again after creating it or specifying a valid config path.
		The recommended config path is %s (default).
		Example YAML file contents:
		---
		%s
		---
		Original error:
		%s
		`,
		e.configPath,
		env.SNAPSWEEP_CONFIG_PATH,
		e.parser.getDefaultConfigContents(),
		indent.String(e.err.Error(), 2),
	)
}

func (p parser) ensureDirExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		slog.Warn("creating directory as it does not exist", "dir", dirPath)
		if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
			return err
		}
	}
	return nil
}

func (p parser) createConfigFile(path string) error {
	if err := p.ensureDirExists(filepath.Dir(path)); err != nil {
		return err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Warn("creating config file as it does not exist", "config-file", path)
		newConfigFile, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666)
		if err != nil {
			return err
		}
		defer newConfigFile.Close()

		if _, err := newConfigFile.WriteString(p.getDefaultConfigContents()); err != nil {
			return err
		}
	}

	return nil
}

func (p parser) readConfigFile(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, configError{configPath: path, parser: p, err: err}
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			return cfg, fmt.Errorf("validation error: field %s, %q is invalid", err.Field(), err.Value())
		}
	}

	return cfg, nil
}

// Parse loads the config from path, or from the default location when
// path is empty, creating the default file on first run.
func Parse(path string) (Config, error) {
	var p parser

	validate = validator.New()
	if err := registerValidators(validate); err != nil {
		return Config{}, err
	}

	if path == "" {
		path = env.SNAPSWEEP_CONFIG_PATH
		if err := p.createConfigFile(path); err != nil {
			return Config{}, configError{configPath: path, parser: p, err: err}
		}
	}

	cfg, err := p.readConfigFile(path)
	if err != nil {
		return Config{}, err
	}

	expanded, err := expandPath(cfg.Core.ScreenshotsDir)
	if err != nil {
		return Config{}, fmt.Errorf("invalid screenshots_dir: %w", err)
	}
	cfg.Core.ScreenshotsDir = expanded

	if cfg.Core.TrashDir != "" {
		expanded, err := expandPath(cfg.Core.TrashDir)
		if err != nil {
			return Config{}, fmt.Errorf("invalid trash_dir: %w", err)
		}
		cfg.Core.TrashDir = expanded
	}

	return cfg, nil
}
