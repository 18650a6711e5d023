package pubtheme

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/eringen/pubtheme/views"
)

// SiteConfig holds site settings for rendering and for the theme preview.
type SiteConfig struct {
	Name        string `yaml:"name" validate:"required"`         // Site name (default "Blog")
	URL         string `yaml:"url" validate:"required,url"`      // Canonical URL (default "http://localhost:3000")
	Description string `yaml:"description"`                      // Site description for meta tags
	AccentColor string `yaml:"accent_color" validate:"iscolor"`  // Tag and badge colour (default "#FF1A75")
	Lang        string `yaml:"lang" validate:"omitempty,min=2"`  // <html lang> (default "en")
	Addr        string `yaml:"addr" validate:"required"`         // Preview listen address (default ":3000")
	FixturesDir string `yaml:"fixtures_dir" validate:"required"` // Post fixtures (default "fixtures")
	ImagesDir   string `yaml:"images_dir" validate:"required"`   // Served under /content/images/ (default "fixtures/images")

	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error disabled"` // default "info"
	LogPretty bool   `yaml:"log_pretty"`                                                // console output instead of JSON
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.AccentColor == "" {
		c.AccentColor = "#FF1A75"
	}
	if c.Lang == "" {
		c.Lang = "en"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.FixturesDir == "" {
		c.FixturesDir = "fixtures"
	}
	if c.ImagesDir == "" {
		c.ImagesDir = "fixtures/images"
	}
	if c.LogLevel == "" {
		c.LogLevel = zerolog.LevelInfoValue
	}
}

// Validate applies defaults and checks the configuration.
func (c *SiteConfig) Validate() error {
	c.setDefaults()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("pubtheme: invalid config: %w", err)
	}
	return nil
}

// Site projects the config onto the settings templates need.
func (c SiteConfig) Site() views.Site {
	return views.Site{
		Name:        c.Name,
		URL:         c.URL,
		Description: c.Description,
		AccentColor: c.AccentColor,
		Lang:        c.Lang,
	}
}

// LoadConfig reads a YAML config file, applies PUBTHEME_* environment
// overrides and defaults, and validates the result. An empty path or a
// missing file yields a config built from the environment alone.
func LoadConfig(path string) (SiteConfig, error) {
	var cfg SiteConfig
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("pubtheme: read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("pubtheme: parse config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *SiteConfig) applyEnv() {
	c.Name = EnvOr("PUBTHEME_SITE_NAME", c.Name)
	c.URL = EnvOr("PUBTHEME_SITE_URL", c.URL)
	c.Description = EnvOr("PUBTHEME_SITE_DESCRIPTION", c.Description)
	c.AccentColor = EnvOr("PUBTHEME_ACCENT_COLOR", c.AccentColor)
	c.Lang = EnvOr("PUBTHEME_LANG", c.Lang)
	c.Addr = EnvOr("PUBTHEME_ADDR", c.Addr)
	c.FixturesDir = EnvOr("PUBTHEME_FIXTURES_DIR", c.FixturesDir)
	c.ImagesDir = EnvOr("PUBTHEME_IMAGES_DIR", c.ImagesDir)
	c.LogLevel = EnvOr("PUBTHEME_LOG_LEVEL", c.LogLevel)
	if v, err := strconv.ParseBool(os.Getenv("PUBTHEME_LOG_PRETTY")); err == nil {
		c.LogPretty = v
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Option configures additional Preview behavior.
type Option func(*Preview)

// WithLogger replaces the logger built from the config.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Preview) {
		p.Logger = l
		p.loggerSet = true
	}
}

// WithFixtures serves the given fixtures instead of loading FixturesDir.
func WithFixtures(f *Fixtures) Option {
	return func(p *Preview) {
		p.Fixtures = f
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the Preview before the server starts.
func WithCustomRoutes(fn func(*Preview)) Option {
	return func(p *Preview) {
		p.customRoutes = append(p.customRoutes, fn)
	}
}
