package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceForKnownBackends(t *testing.T) {
	for _, name := range []string{"mysql", "postgres", "sqlite3", "mssql"} {
		s, err := SourceFor(name)
		assert.NoError(t, err)
		assert.NotEmpty(t, s.DriverName())
	}
}

func TestSourceForUnknownBackend(t *testing.T) {
	_, err := SourceFor("oracle")
	assert.Error(t, err)
}

func TestMysqlBuildDSNUsesSocketWhenSet(t *testing.T) {
	s := mysqlSource{}
	dsn := s.BuildDSN(ConnConfig{User: "root", DBName: "tags", Socket: "/tmp/mysql.sock"})
	assert.Contains(t, dsn, "unix(/tmp/mysql.sock)")
}

func TestPostgresBuildDSNDefaultsSslModeDisable(t *testing.T) {
	s := postgresSource{}
	dsn := s.BuildDSN(ConnConfig{Host: "localhost", Port: 5432, User: "postgres", DBName: "tags"})
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestSqlite3BuildDSNIsFilePath(t *testing.T) {
	s := sqlite3Source{}
	assert.Equal(t, "tags.db", s.BuildDSN(ConnConfig{DBName: "tags.db"}))
}

func TestMssqlBuildDSNIncludesDatabaseQueryParam(t *testing.T) {
	s := mssqlSource{}
	dsn := s.BuildDSN(ConnConfig{Host: "localhost", Port: 1433, User: "sa", Password: "pw", DBName: "tags"})
	assert.Contains(t, dsn, "database=tags")
	assert.Contains(t, dsn, "sqlserver://")
}

func TestEncodeCSV(t *testing.T) {
	csv := encodeCSV([]tagRow{{Word: "cat", Category: 0, Freq: 100, Redirect: "null"}})
	assert.Equal(t, "cat,0,100,null\n", csv)
}
