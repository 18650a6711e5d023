package pubtheme

import "embed"

// EmbeddedAssets contains assets shipped with the theme: the default avatar.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
