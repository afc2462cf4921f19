package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EngineLexicon    = "lexicon"
	EnginePerceptron = "perceptron"
)

type Server struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type Config struct {
	Language     string        `yaml:"language"`
	LexiconDir   string        `yaml:"lexicon_dir"`
	Engine       string        `yaml:"engine"`
	MatchTimeout time.Duration `yaml:"match_timeout"`
	NFC          bool          `yaml:"nfc"`
	CacheSize    int           `yaml:"cache_size"`
	LogLevel     string        `yaml:"log_level"`
	Server       Server        `yaml:"server"`
}

func Default() *Config {
	return &Config{
		Language:     "english",
		LexiconDir:   "data",
		Engine:       EngineLexicon,
		MatchTimeout: time.Second,
		CacheSize:    4,
		LogLevel:     "info",
		Server: Server{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load reads the YAML file at path over the defaults; an empty path skips
// the file. A .env file in the working directory, if any, is loaded into
// the environment and POSTAG_* variables then override the file.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	return c, c.Validate()
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("POSTAG_LANGUAGE"); ok {
		c.Language = v
	}
	if v, ok := os.LookupEnv("POSTAG_LEXICON_DIR"); ok {
		c.LexiconDir = v
	}
	if v, ok := os.LookupEnv("POSTAG_ENGINE"); ok {
		c.Engine = v
	}
	if v, ok := os.LookupEnv("POSTAG_MATCH_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("POSTAG_MATCH_TIMEOUT: %w", err)
		}
		c.MatchTimeout = d
	}
	if v, ok := os.LookupEnv("POSTAG_ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := os.LookupEnv("POSTAG_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Engine {
	case EngineLexicon, EnginePerceptron:
	default:
		return fmt.Errorf("unknown engine %q (want %s or %s)", c.Engine, EngineLexicon, EnginePerceptron)
	}
	if strings.TrimSpace(c.Language) == "" {
		return errors.New("language must not be empty")
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative, got %d", c.CacheSize)
	}
	return nil
}
