package pubtheme

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/pubtheme/views"
)

func (p *Preview) handleHome(c echo.Context) error {
	site := p.Config.Site()
	return RenderDocument(c, http.StatusOK, site, views.FeedDocument(site, p.Fixtures.Posts()))
}

func (p *Preview) handlePost(c echo.Context) error {
	post, err := p.Fixtures.Post(c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}
	site := p.Config.Site()
	loc := views.NewLocation(site.URL, post.URL())
	return RenderDocument(c, http.StatusOK, site, views.PostDetail(post, site.AccentColor, loc))
}

func (p *Preview) handleAvatar(c echo.Context) error {
	data, err := EmbeddedAssets.ReadFile("embedded/avatar.svg")
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/svg+xml", data)
}

func (p *Preview) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderDocument(c, http.StatusNotFound, p.Config.Site(), views.NotFoundDocument(p.Config.Site()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		p.Logger.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("server error")
	}
	p.Echo.DefaultHTTPErrorHandler(err, c)
}
