package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/a-h/templ"
	"github.com/joho/godotenv"

	"github.com/eringen/pubtheme"
	"github.com/eringen/pubtheme/views"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: loading .env: %v\n", err)
	}

	switch os.Args[1] {
	case "render":
		if err := runRender(os.Args[2:], os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "preview":
		if err := runPreview(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("pubtheme %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runRender(args []string, out io.Writer) error {
	fset := flag.NewFlagSet("render", flag.ContinueOnError)
	configPath := fset.String("config", pubtheme.EnvOr("PUBTHEME_CONFIG", "pubtheme.yaml"), "path to the YAML site config")
	first := fset.Bool("first", false, "render the card with the large layout")
	if err := fset.Parse(args); err != nil {
		return err
	}
	if fset.NArg() != 2 {
		return errors.New("usage: pubtheme render [flags] card|post <fixture>")
	}
	kind, fixture := fset.Arg(0), fset.Arg(1)

	cfg, err := pubtheme.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	logger := pubtheme.NewLogger(cfg.LogLevel, cfg.LogPretty, os.Stderr)
	ctx := logger.WithContext(context.Background())

	posts, err := pubtheme.LoadPostFile(fixture)
	if err != nil {
		return err
	}
	site := cfg.Site()

	var cmp templ.Component
	switch kind {
	case "card":
		cmp = views.PostFeed(posts, site.AccentColor)
		if len(posts) == 1 {
			cmp = views.PostCard(posts[0], site.AccentColor, *first)
		}
	case "post":
		if len(posts) != 1 {
			return fmt.Errorf("render post needs exactly one post, %s has %d", fixture, len(posts))
		}
		post := posts[0]
		cmp = views.Layout(site, views.PostDetail(post, site.AccentColor, views.NewLocation(site.URL, post.URL())))
	default:
		return fmt.Errorf("unknown render kind %q, want card or post", kind)
	}
	return cmp.Render(ctx, out)
}

func runPreview(args []string) error {
	fset := flag.NewFlagSet("preview", flag.ContinueOnError)
	configPath := fset.String("config", pubtheme.EnvOr("PUBTHEME_CONFIG", "pubtheme.yaml"), "path to the YAML site config")
	if err := fset.Parse(args); err != nil {
		return err
	}
	cfg, err := pubtheme.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	return pubtheme.NewPreview(cfg).Start()
}

func printUsage() {
	fmt.Println(`pubtheme - blog theme renderer for headless CMS content

Usage:
  pubtheme <command> [arguments]

Commands:
  render card <fixture>   Render post cards from a JSON or YAML fixture
  render post <fixture>   Render a full post page from a fixture
  preview                 Serve the fixtures directory through the theme
  version                 Print the pubtheme version
  help                    Show this help message

Flags:
  -config <path>          Site config (default pubtheme.yaml, or $PUBTHEME_CONFIG)
  -first                  Render a card with the large layout

Examples:
  pubtheme render -first card fixtures/hello-world.yaml
  pubtheme preview -config site.yaml`)
}
