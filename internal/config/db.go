package config

// DB holds the database configuration settings.
type DB struct {
	// GormEngine selects the gorm driver: "sqlite", "mysql" or "postgres".
	GormEngine string `validate:"required,oneof=sqlite mysql postgres"`

	// Path is the database file for the sqlite engine (":memory:" works too).
	Path string

	// Network settings for the mysql and postgres engines.
	Extras   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}
