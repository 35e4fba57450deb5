package web

import (
	"embed"
)

var (
	//go:embed static/*
	embeddedStaticFiles embed.FS
)
