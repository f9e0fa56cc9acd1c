package main

import (
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/denisenkom/go-mssqldb"
)

// mssqlSource is grounded on database/mssql/database.go's mssqlBuildDSN: a
// sqlserver:// URL with credentials in the userinfo component.
type mssqlSource struct{}

func (mssqlSource) DriverName() string { return "sqlserver" }

func (mssqlSource) BuildDSN(cfg ConnConfig) string {
	query := url.Values{}
	query.Add("database", cfg.DBName)
	u := &url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		RawQuery: query.Encode(),
	}
	return u.String()
}

func (s mssqlSource) Open(cfg ConnConfig) (*sql.DB, error) {
	return sql.Open(s.DriverName(), s.BuildDSN(cfg))
}
