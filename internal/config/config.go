// Package config loads the runtime configuration from a YAML or JSON file
// with environment overrides for credentials.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"lustre/internal/blocks"
	"lustre/internal/compare"
)

// Env variable names. The product-specific key wins over the generic one.
const (
	EnvAPIKey       = "LUSTRE_API_KEY"
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvModel        = "LUSTRE_MODEL"
	EnvLogLevel     = "LUSTRE_LOG_LEVEL"
)

// Config is the full runtime configuration.
type Config struct {
	APIKey    string `yaml:"api_key" json:"api_key"`
	Model     string `yaml:"model" json:"model"`
	UseLLM    bool   `yaml:"use_llm" json:"use_llm"`
	OutputDir string `yaml:"output_dir" json:"output_dir"`

	LogLevel  string `yaml:"log_level" json:"log_level"`
	LogFormat string `yaml:"log_format" json:"log_format"`

	QuestionCount int `yaml:"question_count" json:"question_count"`
	MaxFAQ        int `yaml:"max_faq" json:"max_faq"`

	Thresholds Thresholds     `yaml:"thresholds" json:"thresholds"`
	Blocks     BlockConstants `yaml:"blocks" json:"blocks"`
}

// Thresholds are the comparison scorer constants.
type Thresholds struct {
	PriceTie      float64 `yaml:"price_tie" json:"price_tie"`
	SafetyKeyword string  `yaml:"safety_keyword" json:"safety_keyword"`
}

// BlockConstants are the bottle economics used by the price block.
type BlockConstants struct {
	BottleSizeML float64 `yaml:"bottle_size_ml" json:"bottle_size_ml"`
	DropsPerUse  float64 `yaml:"drops_per_use" json:"drops_per_use"`
	MLPerDrop    float64 `yaml:"ml_per_drop" json:"ml_per_drop"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	bc := blocks.DefaultConfig()
	th := compare.DefaultThresholds()
	return Config{
		Model:         "gemini-2.0-flash",
		UseLLM:        true,
		OutputDir:     "output",
		LogLevel:      "info",
		LogFormat:     "text",
		QuestionCount: 18,
		MaxFAQ:        10,
		Thresholds: Thresholds{
			PriceTie:      th.PriceTie,
			SafetyKeyword: th.SafetyKeyword,
		},
		Blocks: BlockConstants{
			BottleSizeML: bc.BottleSizeML,
			DropsPerUse:  bc.DropsPerUse,
			MLPerDrop:    bc.MLPerDrop,
		},
	}
}

// Load reads the config file at path and applies env overrides. An empty
// path or a missing file yields the defaults with env overrides applied.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		} else if err := parse(data, filepath.Ext(path), &cfg); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// parse decodes by extension, falling back to content detection the way
// the input records are handled: a leading brace means JSON.
func parse(data []byte, ext string, cfg *Config) error {
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse config json: %w", err)
		}
		return nil
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse config yaml: %w", err)
		}
		return nil
	}
	if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse config json: %w", err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config yaml: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.APIKey = v
	} else if v := os.Getenv(EnvGeminiAPIKey); v != "" && c.APIKey == "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// BlockConfig translates to the block library's configuration.
func (c Config) BlockConfig() blocks.Config {
	return blocks.Config{
		UseLLM:       c.UseLLM,
		BottleSizeML: c.Blocks.BottleSizeML,
		DropsPerUse:  c.Blocks.DropsPerUse,
		MLPerDrop:    c.Blocks.MLPerDrop,
	}
}

// ScorerThresholds translates to the comparison scorer's constants.
func (c Config) ScorerThresholds() compare.Thresholds {
	return compare.Thresholds{
		PriceTie:      c.Thresholds.PriceTie,
		SafetyKeyword: c.Thresholds.SafetyKeyword,
	}
}
