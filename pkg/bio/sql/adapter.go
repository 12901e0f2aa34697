package sql

import (
	"context"
	"database/sql"
)

/*
Adapter is an interface providing the database specific
pieces needed to implement a Set with a database backend.
*/
type Adapter interface {
	// DB returns the connection pool the set runs its statements on
	DB() *sql.DB
	// Placeholder returns the bind parameter for the given 1-based position
	Placeholder(position int) string
	// IDColumnType returns the type of an auto-incremented integer primary key
	IDColumnType() string
	// ListColumns returns the column names of a table in declaration order,
	// or an empty slice if the table does not exist
	ListColumns(ctx context.Context, table string) ([]string, error)
	Close() error
}
