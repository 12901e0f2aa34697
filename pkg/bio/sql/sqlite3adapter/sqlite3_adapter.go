/*
Package sqlite3adapter provides an implementation of the
Adapter interface in the sql package that works
over an SQLite3 database file.
*/
package sqlite3adapter

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	biosql "github.com/pbanos/grove/pkg/bio/sql"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a path to an SQLite3 database file and the maximum number of
open connections to it and returns an Adapter that works on the file's
database or an error if it fails to open as an sqlite3 database.
A maxConns of 0 or less means no limit.
*/
func New(path string, maxConns int) (biosql.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening sqlite3 database %s", path)
	}
	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
	}
	return &adapter{db}, nil
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) Placeholder(int) string {
	return "?"
}

func (a *adapter) IDColumnType() string {
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

func (a *adapter) ListColumns(ctx context.Context, table string) ([]string, error) {
	rows, err := a.db.QueryContext(ctx, `SELECT name FROM pragma_table_info(?) ORDER BY cid`, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	columns := []string{}
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		columns = append(columns, name)
	}
	return columns, rows.Err()
}

func (a *adapter) Close() error {
	return a.db.Close()
}
