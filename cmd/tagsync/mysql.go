package main

import (
	"database/sql"
	"fmt"

	driver "github.com/go-sql-driver/mysql"
)

// mysqlSource is grounded on database/mysql/database.go's mysqlBuildDSN: a
// go-sql-driver/mysql Config built field-by-field and formatted, rather than
// hand-assembled.
type mysqlSource struct{}

func (mysqlSource) DriverName() string { return "mysql" }

func (mysqlSource) BuildDSN(cfg ConnConfig) string {
	c := driver.NewConfig()
	c.User = cfg.User
	c.Passwd = cfg.Password
	c.DBName = cfg.DBName
	c.TLSConfig = cfg.SslMode
	if cfg.Socket == "" {
		c.Net = "tcp"
		c.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	} else {
		c.Net = "unix"
		c.Addr = cfg.Socket
	}
	return c.FormatDSN()
}

func (s mysqlSource) Open(cfg ConnConfig) (*sql.DB, error) {
	return sql.Open(s.DriverName(), s.BuildDSN(cfg))
}
