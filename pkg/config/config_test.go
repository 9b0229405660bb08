package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	yaml := `
app:
  name: medassist
gateways:
  telegram:
    token: tg-token
    enabled: true
  discord:
    token: dc-token
    enabled: false
providers:
  groq:
    api_key: key
    model: llama3-8b-8192
    base_url: https://api.groq.com/openai/v1
    enabled: true
catalog:
  path: test.db
  seed: true
llm:
  timeout_seconds: 20
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Catalog.Path != "test.db" || !cfg.Catalog.Seed {
		t.Errorf("Catalog config wrong: %+v", cfg.Catalog)
	}
	if cfg.LLM.TimeoutSeconds != 20 {
		t.Errorf("Expected timeout 20, got %d", cfg.LLM.TimeoutSeconds)
	}

	name, p := cfg.GetDefaultProvider()
	if name != "groq" || p.Model != "llama3-8b-8192" {
		t.Errorf("Default provider wrong: %s %+v", name, p)
	}

	if _, ok := cfg.GetTelegramConfig(); !ok {
		t.Error("Telegram should be enabled")
	}
	if _, ok := cfg.GetDiscordConfig(); ok {
		t.Error("Discord should be disabled")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("app:\n  name: medassist\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Catalog.Path != "medical_products.db" {
		t.Errorf("Expected default catalog path, got %q", cfg.Catalog.Path)
	}
	if cfg.LLM.TimeoutSeconds != 15 {
		t.Errorf("Expected default timeout 15, got %d", cfg.LLM.TimeoutSeconds)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}
