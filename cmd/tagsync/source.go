// Command tagsync is the administrative companion that snapshots tag rows
// out of a backing relational store into the word,category,freq,redirect
// CSV files tagdb.Database.Load expects: turning a live backend into the
// flat text the core loads.
package main

import (
	"context"
	"database/sql"
	"fmt"
)

// ConnConfig holds the handful of fields every backend's DSN builder needs.
type ConnConfig struct {
	Backend  string
	DBName   string
	User     string
	Password string
	Host     string
	Port     int
	Socket   string
	SslMode  string
}

// Source opens a connection to one kind of backing store; FetchRows then
// reads the tag rows over that connection.
type Source interface {
	Open(cfg ConnConfig) (*sql.DB, error)
	BuildDSN(cfg ConnConfig) string
	DriverName() string
}

var sources = map[string]Source{
	"mysql":    mysqlSource{},
	"postgres": postgresSource{},
	"sqlite3":  sqlite3Source{},
	"mssql":    mssqlSource{},
}

// SourceFor returns the registered Source for a --backend flag value.
func SourceFor(backend string) (Source, error) {
	s, ok := sources[backend]
	if !ok {
		return nil, fmt.Errorf("tagsync: unknown backend %q (want mysql, postgres, sqlite3, or mssql)", backend)
	}
	return s, nil
}

// tagRow is one row fetched from the backing store, in the shape
// tagdb.Database.Load expects before it is CSV-encoded.
type tagRow struct {
	Word     string
	Category int
	Freq     int64
	Redirect string
}

// FetchRows runs query against db and scans each result row into a tagRow.
// query must select exactly (word, category, freq, redirect) in that order.
func FetchRows(ctx context.Context, db *sql.DB, query string) ([]tagRow, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("tagsync: query failed: %w", err)
	}
	defer rows.Close()

	var out []tagRow
	for rows.Next() {
		var r tagRow
		if err := rows.Scan(&r.Word, &r.Category, &r.Freq, &r.Redirect); err != nil {
			return nil, fmt.Errorf("tagsync: scan failed: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tagsync: row iteration failed: %w", err)
	}
	return out, nil
}
