package sql

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pbanos/grove/pkg/grove"
)

const (
	// TableName is the name of the table holding the observations
	TableName = "observations"
	// ClassColumn is the name of the column holding the class of each observation
	ClassColumn = "class"
	/*
		MaxObservationInsertionsPerStatement is the maximum number
		of observations that are allowed to be added with a single
		insert command with the Write method of a Set.
		Trying to add more will result in making more insertion commands
	*/
	MaxObservationInsertionsPerStatement = 10
)

// ErrNoSet is returned when opening a set on a database without an observations table.
var ErrNoSet = errors.New("no observations table")

/*
Set is a collection of observations stored on the observations table
of a database, one REAL column per feature named f0, f1... and a TEXT
class column.
*/
type Set struct {
	db             Adapter
	featureColumns []string
}

/*
OpenSet takes a context and an Adapter to a db backend and returns a Set
backed by the given adapter or an error if no set is available through
the given adapter.
*/
func OpenSet(ctx context.Context, dbAdapter Adapter) (*Set, error) {
	columns, err := dbAdapter.ListColumns(ctx, TableName)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s columns", TableName)
	}
	if len(columns) == 0 {
		return nil, ErrNoSet
	}
	indexes := []int{}
	hasClass := false
	for _, c := range columns {
		if c == ClassColumn {
			hasClass = true
			continue
		}
		if i, ok := featureIndex(c); ok {
			indexes = append(indexes, i)
		}
	}
	if !hasClass {
		return nil, errors.Newf("table %s has no %s column", TableName, ClassColumn)
	}
	sort.Ints(indexes)
	for i, index := range indexes {
		if i != index {
			return nil, errors.Newf("table %s is missing the column for feature %d", TableName, i)
		}
	}
	return &Set{db: dbAdapter, featureColumns: featureColumns(len(indexes))}, nil
}

/*
CreateSet takes a context, an Adapter and the number of features of the
observations to store and returns a Set backed by the given adapter or
an error.

This function will ensure that the observations table is created on the
database.
*/
func CreateSet(ctx context.Context, dbAdapter Adapter, featureCount int) (*Set, error) {
	if featureCount < 1 {
		return nil, errors.Newf("a set needs at least one feature, got %d", featureCount)
	}
	s := &Set{db: dbAdapter, featureColumns: featureColumns(featureCount)}
	var createStmtBuf bytes.Buffer
	createStmtBuf.WriteString(fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s(`, TableName))
	for _, c := range s.featureColumns {
		createStmtBuf.WriteString(fmt.Sprintf(`"%s" REAL NOT NULL, `, c))
	}
	createStmtBuf.WriteString(fmt.Sprintf(`"%s" TEXT NOT NULL, "id" %s)`, ClassColumn, dbAdapter.IDColumnType()))
	_, err := dbAdapter.DB().ExecContext(ctx, createStmtBuf.String())
	if err != nil {
		return nil, errors.Wrapf(err, "ensuring %s table exists", TableName)
	}
	return s, nil
}

// FeatureCount returns the number of features of the observations in the set.
func (s *Set) FeatureCount() int {
	return len(s.featureColumns)
}

/*
Write takes a context and a slice of observations and stores them on the
set. It returns the number of observations written and an error if any
of the observations has a different number of features than the set or
the insertion fails.
*/
func (s *Set) Write(ctx context.Context, observations []grove.Observation) (int, error) {
	for i, o := range observations {
		if len(o.Features) != len(s.featureColumns) {
			return 0, errors.Newf("observation %d has %d features, set expects %d", i, len(o.Features), len(s.featureColumns))
		}
	}
	written := 0
	for written < len(observations) {
		end := written + MaxObservationInsertionsPerStatement
		if end > len(observations) {
			end = len(observations)
		}
		chunk := observations[written:end]
		args := make([]interface{}, 0, len(chunk)*(len(s.featureColumns)+1))
		for _, o := range chunk {
			for _, f := range o.Features {
				args = append(args, f)
			}
			args = append(args, o.Class)
		}
		_, err := s.db.DB().ExecContext(ctx, s.insertStatement(len(chunk)), args...)
		if err != nil {
			return written, errors.Wrapf(err, "inserting %d observations", len(chunk))
		}
		written = end
	}
	return written, nil
}

/*
Iterate takes a context and a lambda function that is called with the id and
the observation of every row in the set in id order. The lambda can return
false to stop iterating, or an error to abort it.
*/
func (s *Set) Iterate(ctx context.Context, lambda func(int, grove.Observation) (bool, error)) error {
	query := fmt.Sprintf(`SELECT "id", "%s", "%s" FROM %s ORDER BY "id"`, strings.Join(s.featureColumns, `", "`), ClassColumn, TableName)
	rows, err := s.db.DB().QueryContext(ctx, query)
	if err != nil {
		return errors.Wrapf(err, "querying %s", TableName)
	}
	defer rows.Close()
	for rows.Next() {
		var id int
		o := grove.Observation{Features: make([]float64, len(s.featureColumns))}
		dest := make([]interface{}, 0, len(s.featureColumns)+2)
		dest = append(dest, &id)
		for i := range o.Features {
			dest = append(dest, &o.Features[i])
		}
		dest = append(dest, &o.Class)
		if err = rows.Scan(dest...); err != nil {
			return errors.Wrapf(err, "scanning %s row", TableName)
		}
		ok, err := lambda(id, o)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	return rows.Err()
}

// Read returns all the observations in the set in id order.
func (s *Set) Read(ctx context.Context) (*grove.Observations, error) {
	obs := grove.NewObservations(nil)
	err := s.Iterate(ctx, func(_ int, o grove.Observation) (bool, error) {
		obs.Add(o)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return obs, nil
}

// Count returns the number of observations in the set.
func (s *Set) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.DB().QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", TableName)).Scan(&count)
	if err != nil {
		return 0, errors.Wrapf(err, "counting %s", TableName)
	}
	return count, nil
}

func (s *Set) insertStatement(rows int) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf(`INSERT INTO %s ("%s", "%s") VALUES `, TableName, strings.Join(s.featureColumns, `", "`), ClassColumn))
	position := 1
	for r := 0; r < rows; r++ {
		if r > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString("(")
		for c := 0; c <= len(s.featureColumns); c++ {
			if c > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(s.db.Placeholder(position))
			position++
		}
		buf.WriteString(")")
	}
	return buf.String()
}

func featureColumns(count int) []string {
	columns := make([]string, count)
	for i := range columns {
		columns[i] = "f" + strconv.Itoa(i)
	}
	return columns
}

func featureIndex(column string) (int, bool) {
	if !strings.HasPrefix(column, "f") {
		return 0, false
	}
	i, err := strconv.Atoi(column[1:])
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}
