package web

import "embed"

// StaticFiles embeds the stylesheet and page script into the binary.
//
//go:embed static/*
var StaticFiles embed.FS
