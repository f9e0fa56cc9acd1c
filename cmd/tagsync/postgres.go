package main

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// postgresSource is grounded on database/postgres/database.go's
// postgresBuildDSN: a key=value DSN string, switching to a host= option when
// connecting over a Unix socket.
type postgresSource struct{}

func (postgresSource) DriverName() string { return "postgres" }

func (postgresSource) BuildDSN(cfg ConnConfig) string {
	host := fmt.Sprintf("host=%s port=%d", cfg.Host, cfg.Port)
	if cfg.Socket != "" {
		host = fmt.Sprintf("host=%s", cfg.Socket)
	}
	dsn := fmt.Sprintf("%s user=%s dbname=%s", host, cfg.User, cfg.DBName)
	if cfg.Password != "" {
		dsn += fmt.Sprintf(" password=%s", cfg.Password)
	}
	if cfg.SslMode != "" {
		dsn += fmt.Sprintf(" sslmode=%s", cfg.SslMode)
	} else {
		dsn += " sslmode=disable"
	}
	return dsn
}

func (s postgresSource) Open(cfg ConnConfig) (*sql.DB, error) {
	return sql.Open(s.DriverName(), s.BuildDSN(cfg))
}
