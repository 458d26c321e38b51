package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/park285/checkers/internal/obslog"
	yaml "gopkg.in/yaml.v3"
)

type AppConfig struct {
	Log obslog.Options `yaml:"log"`

	// MessagesDir holds optional YAML overrides for the message catalog.
	MessagesDir string `yaml:"messages_dir"`

	// ExportPNG, when set, receives the final board image on exit.
	ExportPNG  string `yaml:"export_png"`
	SquareSize int    `yaml:"square_size"`

	Promotion bool   `yaml:"promotion"`
	LightName string `yaml:"light_name"`
	DarkName  string `yaml:"dark_name"`
}

func Default() *AppConfig {
	return &AppConfig{
		Log:        obslog.DefaultOptions(),
		SquareSize: 64,
		LightName:  "Light",
		DarkName:   "Dark",
	}
}

// Load applies defaults, then the YAML file named by CHECKERS_CONFIG, then the
// environment.
func Load() (*AppConfig, error) {
	cfg := Default()
	if path := strings.TrimSpace(os.Getenv("CHECKERS_CONFIG")); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()
	if cfg.SquareSize < 16 || cfg.SquareSize > 256 {
		cfg.SquareSize = Default().SquareSize
	}
	if strings.TrimSpace(cfg.LightName) == "" {
		cfg.LightName = Default().LightName
	}
	if strings.TrimSpace(cfg.DarkName) == "" {
		cfg.DarkName = Default().DarkName
	}
	return cfg, nil
}

func (c *AppConfig) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *AppConfig) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_FORMAT")); v != "" {
		c.Log.Format = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_FILE")); v != "" {
		c.Log.File = v
	}
	envBool("LOG_TO_CONSOLE", &c.Log.ToConsole)
	envBool("LOG_TO_FILE", &c.Log.ToFile)
	envBool("LOG_CALLER", &c.Log.Caller)

	if v := strings.TrimSpace(os.Getenv("CHECKERS_MESSAGES_DIR")); v != "" {
		c.MessagesDir = v
	}
	if v := strings.TrimSpace(os.Getenv("CHECKERS_EXPORT_PNG")); v != "" {
		c.ExportPNG = v
	}
	if v := strings.TrimSpace(os.Getenv("CHECKERS_SQUARE_SIZE")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.SquareSize = n
		}
	}
	envBool("CHECKERS_PROMOTION", &c.Promotion)
	if v := strings.TrimSpace(os.Getenv("CHECKERS_LIGHT_NAME")); v != "" {
		c.LightName = v
	}
	if v := strings.TrimSpace(os.Getenv("CHECKERS_DARK_NAME")); v != "" {
		c.DarkName = v
	}
}

// envBool leaves dst untouched when the variable is unset or unparsable.
func envBool(key string, dst *bool) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
