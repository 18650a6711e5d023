// Package pubtheme renders blog post cards and post pages for a headless CMS
// theme. The templates live in views; this package carries site
// configuration, logging, and a fixture-backed preview server for theme
// development.
package pubtheme

import (
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eringen/pubtheme/content"
)

// Preview serves fixture posts through the theme so changes can be checked
// in a browser. It is a development tool, not a production site.
type Preview struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Logger   zerolog.Logger
	Fixtures *Fixtures

	customRoutes []func(*Preview)
	loggerSet    bool
}

// NewPreview creates a Preview with the given configuration. cfg is
// validated when Setup runs.
func NewPreview(cfg SiteConfig, opts ...Option) *Preview {
	p := &Preview{
		Config: cfg,
		Echo:   echo.New(),
	}
	p.Echo.HideBanner = true
	p.Echo.HidePort = true
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Setup validates the config, loads fixtures unless provided, and registers
// middleware and routes. Start calls it; tests call it directly.
func (p *Preview) Setup() error {
	if err := p.Config.Validate(); err != nil {
		return err
	}
	if !p.loggerSet {
		p.Logger = NewLogger(p.Config.LogLevel, p.Config.LogPretty, os.Stderr)
	}
	if p.Fixtures == nil {
		f, err := LoadFixtures(p.Config.FixturesDir)
		if err != nil {
			return err
		}
		p.Fixtures = f
	}

	p.setupMiddleware()
	p.setupRoutes()
	for _, fn := range p.customRoutes {
		fn(p)
	}
	return nil
}

// Start sets up the preview and serves it on Config.Addr.
func (p *Preview) Start() error {
	if err := p.Setup(); err != nil {
		return fmt.Errorf("pubtheme: setup preview: %w", err)
	}
	p.Logger.Info().
		Str("addr", p.Config.Addr).
		Int("posts", len(p.Fixtures.Posts())).
		Msg("theme preview listening")
	if err := p.Echo.Start(p.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (p *Preview) setupRoutes() {
	e := p.Echo

	e.GET(content.DefaultAvatar, p.handleAvatar)
	e.GET("/content/images/size/:size/*", p.handleSizedImage)
	e.GET("/content/images/*", p.handleImage)

	e.GET("/", p.handleHome)
	e.GET("/:slug/", p.handlePost)
}
