package pubtheme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	var cfg SiteConfig
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	tests := []struct {
		name, got, expected string
	}{
		{"Name", cfg.Name, "Blog"},
		{"URL", cfg.URL, "http://localhost:3000"},
		{"AccentColor", cfg.AccentColor, "#FF1A75"},
		{"Lang", cfg.Lang, "en"},
		{"Addr", cfg.Addr, ":3000"},
		{"FixturesDir", cfg.FixturesDir, "fixtures"},
		{"LogLevel", cfg.LogLevel, "info"},
	}
	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.expected)
		}
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  SiteConfig
	}{
		{"bad url", SiteConfig{URL: "not a url"}},
		{"bad colour", SiteConfig{AccentColor: "reddish"}},
		{"bad log level", SiteConfig{LogLevel: "verbose"}},
	}
	for _, tt := range tests {
		if err := tt.cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	data := "name: Test Blog\nurl: https://blog.example.com\naccent_color: \"#15171a\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PUBTHEME_SITE_NAME", "From Env")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "From Env" {
		t.Errorf("Name = %q, want env override", cfg.Name)
	}
	if cfg.URL != "https://blog.example.com" {
		t.Errorf("URL = %q", cfg.URL)
	}
	site := cfg.Site()
	if site.AccentColor != "#15171a" || site.URL != cfg.URL {
		t.Errorf("Site() = %+v", site)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "Blog" {
		t.Errorf("Name = %q, want default", cfg.Name)
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte("name: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}
