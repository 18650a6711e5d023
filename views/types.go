package views

import "github.com/a-h/templ"

// Site holds site-wide settings the templates need. It is a projection of the
// root SiteConfig so this package stays free of server concerns.
type Site struct {
	Name        string
	URL         string // canonical base, e.g. "https://blog.example.com"
	Description string
	AccentColor string // CSS colour for tag links and badges
	Lang        string // <html lang>, default "en"
}

// Location identifies the page being rendered.
type Location struct {
	Pathname string // "/hello-world/"
	Href     string // absolute URL, used as canonical and og:url
}

// NewLocation builds a Location for pathname under siteURL.
func NewLocation(siteURL, pathname string) Location {
	return Location{Pathname: pathname, Href: buildURL(siteURL, pathname)}
}

// Document is a rendered page split into the parts that go into <head> and
// <body>. Layout assembles it into a full page.
type Document struct {
	Head templ.Component
	Body templ.Component
}
