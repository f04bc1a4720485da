package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultTaggerWorkers = 5
	defaultFetchWorkers  = 5
	defaultHistoryLimit  = 50
	defaultCacheSize     = 1024
	defaultOutputDir     = "reports"
	defaultAPIAddr       = ":8090"
	defaultAPITimeout    = 10 * time.Second
	defaultMaxBodyBytes  = 1 << 20
)

type Config struct {
	TDLib          TDLibConfig    `yaml:"tdlib"`
	Logger         LoggerConfig   `yaml:"logger"`
	DatabaseConfig DatabaseConfig `yaml:"database"`
	Keywords       KeywordsConfig `yaml:"keywords"`
	Tagger         TaggerConfig   `yaml:"tagger"`
	Reporter       ReporterConfig `yaml:"reporter"`
	API            APIConfig      `yaml:"api"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Tagger.Workers <= 0 {
		c.Tagger.Workers = defaultTaggerWorkers
	}
	if c.TDLib.FetchWorkers <= 0 {
		c.TDLib.FetchWorkers = defaultFetchWorkers
	}
	if c.TDLib.GetHistory.Limit <= 0 {
		c.TDLib.GetHistory.Limit = defaultHistoryLimit
	}
	if c.Keywords.CacheSize <= 0 {
		c.Keywords.CacheSize = defaultCacheSize
	}
	if c.Reporter.OutputDir == "" {
		c.Reporter.OutputDir = defaultOutputDir
	}
	if c.API.Addr == "" {
		c.API.Addr = defaultAPIAddr
	}
	if c.API.ReadTimeout <= 0 {
		c.API.ReadTimeout = defaultAPITimeout
	}
	if c.API.WriteTimeout <= 0 {
		c.API.WriteTimeout = defaultAPITimeout
	}
	if c.API.MaxBodyBytes <= 0 {
		c.API.MaxBodyBytes = defaultMaxBodyBytes
	}
}
