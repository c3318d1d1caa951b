package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/notjagan/dexview/pkg/model"
)

const (
	DefaultPath    = "dexview.toml"
	DefaultBaseURL = "https://pokeapi.co/api/v2"
	DefaultTimeout = 10 * time.Second
)

type Config struct {
	API struct {
		BaseURL string        `toml:"base_url" env:"BASE_URL"`
		Timeout time.Duration `toml:"timeout" env:"TIMEOUT"`
	} `toml:"api" envPrefix:"API_"`
	Chart struct {
		Path string `toml:"database" env:"DATABASE"`
	} `toml:"chart" envPrefix:"CHART_"`
	View struct {
		Sort model.SortMode `toml:"sort" env:"SORT"`
	} `toml:"view" envPrefix:"VIEW_"`
	Discord struct {
		Token string `toml:"token" env:"TOKEN"`
	} `toml:"discord" envPrefix:"DISCORD_"`
	Log struct {
		Level       string `toml:"level" env:"LEVEL"`
		Development bool   `toml:"development" env:"DEVELOPMENT"`
	} `toml:"log" envPrefix:"LOG_"`
	Telemetry struct {
		Endpoint string `toml:"endpoint" env:"ENDPOINT"`
	} `toml:"telemetry" envPrefix:"TELEMETRY_"`
}

func Default() Config {
	var cfg Config
	cfg.API.BaseURL = DefaultBaseURL
	cfg.API.Timeout = DefaultTimeout
	cfg.View.Sort = model.SortByNumber
	cfg.Log.Level = "info"
	return cfg
}

var ErrInvalidConfig = errors.New("invalid configuration")

// Read loads the TOML file at path on top of the defaults and then applies
// DEXVIEW_* environment overrides. A missing file at DefaultPath is not an
// error.
func Read(path string) (*Config, error) {
	cfg := Default()

	_, err := toml.DecodeFile(path, &cfg)
	if err != nil && !(errors.Is(err, fs.ErrNotExist) && path == DefaultPath) {
		return nil, fmt.Errorf("error while decoding config file %q: %w", path, err)
	}

	err = env.ParseWithOptions(&cfg, env.Options{Prefix: "DEXVIEW_"})
	if err != nil {
		return nil, fmt.Errorf("error while parsing environment: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *Config) Validate() error {
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api base url %q is not absolute: %w", cfg.API.BaseURL, ErrInvalidConfig)
	}

	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api timeout must be positive, got %s: %w", cfg.API.Timeout, ErrInvalidConfig)
	}

	if !cfg.View.Sort.IsASortMode() {
		return fmt.Errorf("unknown sort mode %d: %w", cfg.View.Sort, ErrInvalidConfig)
	}

	return nil
}
