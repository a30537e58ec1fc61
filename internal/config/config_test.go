package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if cfg.Model != "gemini-2.0-flash" || !cfg.UseLLM {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Thresholds.PriceTie != 100 || cfg.Thresholds.SafetyKeyword != "mild" {
		t.Errorf("threshold defaults wrong: %+v", cfg.Thresholds)
	}
}

func TestLoad_YAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lustre.yaml")
	content := "model: gemini-2.5-pro\nuse_llm: false\nmax_faq: 5\nthresholds:\n  price_tie: 250\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Model != "gemini-2.5-pro" || cfg.UseLLM || cfg.MaxFAQ != 5 {
		t.Errorf("yaml overrides not applied: %+v", cfg)
	}
	if cfg.Thresholds.PriceTie != 250 {
		t.Errorf("price_tie = %v", cfg.Thresholds.PriceTie)
	}
	// Untouched keys keep defaults.
	if cfg.QuestionCount != 18 {
		t.Errorf("question_count = %d", cfg.QuestionCount)
	}
}

func TestLoad_JSONByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lustre.json")
	if err := os.WriteFile(path, []byte(`{"output_dir": "artifacts"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutputDir != "artifacts" {
		t.Errorf("output_dir = %q", cfg.OutputDir)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv(EnvAPIKey, "key-from-env")
	t.Setenv(EnvModel, "gemini-exp")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIKey != "key-from-env" {
		t.Errorf("api key = %q", cfg.APIKey)
	}
	if cfg.Model != "gemini-exp" {
		t.Errorf("model = %q", cfg.Model)
	}
}

func TestLoad_GenericKeyFallback(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvGeminiAPIKey, "generic-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIKey != "generic-key" {
		t.Errorf("api key = %q", cfg.APIKey)
	}
}

func TestBlockConfig_Translation(t *testing.T) {
	cfg := Default()
	bc := cfg.BlockConfig()
	if bc.BottleSizeML != 30 || !bc.UseLLM {
		t.Errorf("block config translation wrong: %+v", bc)
	}
}
