package main

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// sqlite3Source is grounded on database/sqlite3/database.go, which opens
// modernc.org/sqlite (a pure-Go driver, so tagsync needs no cgo toolchain)
// under the "sqlite" driver name with the file path as the DSN.
type sqlite3Source struct{}

func (sqlite3Source) DriverName() string { return "sqlite" }

func (sqlite3Source) BuildDSN(cfg ConnConfig) string { return cfg.DBName }

func (s sqlite3Source) Open(cfg ConnConfig) (*sql.DB, error) {
	return sql.Open(s.DriverName(), s.BuildDSN(cfg))
}
