package migration

import (
	"embed"
	"path"
)

//go:embed scripts
var scripts embed.FS

const (
	DialectMySQL   = "mysql"
	DialectSQLite3 = "sqlite3"
)

// DialectFor maps a database driver name to the script dialect directory.
func DialectFor(driver string) string {
	if driver == "sqlite" || driver == DialectSQLite3 {
		return DialectSQLite3
	}
	return DialectMySQL
}

func gooseDir(dialect string) string {
	return path.Join("scripts", "goose", dialect)
}

func golangMigrateDir(dialect string) string {
	return path.Join("scripts", "migrate", dialect)
}
