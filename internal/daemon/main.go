// Package daemon wires the database and the web service into a runnable process.
package daemon

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ventastarango2700-netizen/unofitmx/internal/config"
	"github.com/ventastarango2700-netizen/unofitmx/internal/db/dsn"
	"github.com/ventastarango2700-netizen/unofitmx/internal/db/models"
	"github.com/ventastarango2700-netizen/unofitmx/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start starts the Daemon's web service.
func (d *Daemon) Start() error {
	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// WaitShutdown blocks until the web service finished its graceful shutdown.
func (d *Daemon) WaitShutdown() {
	d.webService.WaitShutdown()
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db, err := gorm.Open(openDriver(cfg), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	// create-if-missing migration, run once at startup instead of per request
	if err = db.AutoMigrate(
		&models.SystemState{},
		&models.User{},
		&models.IncomeRecord{},
		&models.ActivityLog{},
	); err != nil {
		panic("failed to migrate database")
	}

	seed(cfg, db)

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, db),
	}
}

// openDriver selects the gorm driver for the configured engine.
func openDriver(cfg *config.Config) gorm.Dialector {
	switch cfg.DB.GormEngine {
	case dsn.EngineMySQL:
		return gormmysql.Open(dsn.Create(cfg))
	case dsn.EnginePostgres:
		return gormpostgres.Open(dsn.Create(cfg))
	default:
		return sqlite.Open(dsn.Create(cfg))
	}
}
