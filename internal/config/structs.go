package config

import (
	"github.com/ventastarango2700-netizen/unofitmx/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode; 500 responses then carry error details
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover bool   // disable recover middleware
	Port           int    `validate:"required"`     // listening port for the webserver
	ShutDownTime   int    ``                        // wait time for shutdown in seconds
	URL            string `validate:"required,url"` // base url for the webserver
}
