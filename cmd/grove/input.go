package main

import (
	"context"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pbanos/grove/pkg/bio"
	"github.com/pbanos/grove/pkg/bio/mongo"
	"github.com/pbanos/grove/pkg/bio/sql"
	"github.com/pbanos/grove/pkg/bio/sql/pgadapter"
	"github.com/pbanos/grove/pkg/bio/sql/sqlite3adapter"
	"github.com/pbanos/grove/pkg/grove"
)

type backend int

const (
	csvBackend backend = iota
	sqlite3Backend
	postgreSQLBackend
	mongoBackend
)

func (b backend) String() string {
	switch b {
	case sqlite3Backend:
		return "SQLite3"
	case postgreSQLBackend:
		return "PostgreSQL"
	case mongoBackend:
		return "MongoDB"
	}
	return "CSV"
}

// backendFor chooses how to read or write the observations at a location.
func backendFor(location string) backend {
	switch {
	case strings.HasPrefix(location, "postgresql://") || strings.HasPrefix(location, "postgres://"):
		return postgreSQLBackend
	case strings.HasPrefix(location, "mongodb://"):
		return mongoBackend
	case strings.HasSuffix(location, ".db"):
		return sqlite3Backend
	}
	return csvBackend
}

/*
readObservations reads the observations at a location: a PostgreSQL or
MongoDB connection URL, a path to an SQLite3 (.db) or CSV file, or an
empty string for CSV on STDIN.
*/
func (rcc *rootCmdConfig) readObservations(ctx context.Context, location string) (*grove.Observations, error) {
	switch backendFor(location) {
	case postgreSQLBackend:
		rcc.Logf("Creating PostgreSQL adapter for url %s to read observations...", location)
		adapter, err := pgadapter.New(location)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return readSQLObservations(ctx, adapter)
	case sqlite3Backend:
		rcc.Logf("Creating SQLite3 adapter for file %s to read observations...", location)
		adapter, err := sqlite3adapter.New(location, rcc.maxDBConns)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return readSQLObservations(ctx, adapter)
	case mongoBackend:
		rcc.Logf("Connecting to MongoDB on %s to read observations...", location)
		collection, err := mongo.Dial(location, "")
		if err != nil {
			return nil, err
		}
		defer collection.Close()
		return collection.Read(ctx)
	}
	if location == "" {
		rcc.Logf("Reading observations from STDIN...")
	} else {
		rcc.Logf("Opening %s to read observations...", location)
	}
	return bio.ReadCSVObservationsFromFilePath(location)
}

func readSQLObservations(ctx context.Context, adapter sql.Adapter) (*grove.Observations, error) {
	set, err := sql.OpenSet(ctx, adapter)
	if err != nil {
		return nil, err
	}
	return set.Read(ctx)
}

/*
writeObservations writes the observations onto a location as described
on readObservations, where an empty string means CSV on STDOUT.
*/
func (rcc *rootCmdConfig) writeObservations(ctx context.Context, location string, observations []grove.Observation) error {
	switch backendFor(location) {
	case postgreSQLBackend:
		rcc.Logf("Creating PostgreSQL adapter for url %s to dump observations...", location)
		adapter, err := pgadapter.New(location)
		if err != nil {
			return err
		}
		defer adapter.Close()
		return writeSQLObservations(ctx, adapter, observations)
	case sqlite3Backend:
		rcc.Logf("Creating SQLite3 adapter for file %s to dump observations...", location)
		adapter, err := sqlite3adapter.New(location, rcc.maxDBConns)
		if err != nil {
			return err
		}
		defer adapter.Close()
		return writeSQLObservations(ctx, adapter, observations)
	case mongoBackend:
		rcc.Logf("Connecting to MongoDB on %s to dump observations...", location)
		collection, err := mongo.Dial(location, "")
		if err != nil {
			return err
		}
		defer collection.Close()
		_, err = collection.Write(ctx, observations)
		return err
	}
	f := os.Stdout
	if location != "" {
		rcc.Logf("Creating %s to dump observations...", location)
		var err error
		f, err = os.Create(location)
		if err != nil {
			return errors.Wrapf(err, "creating %s", location)
		}
		defer f.Close()
	}
	w := bio.NewCSVWriter(f)
	if _, err := w.Write(observations); err != nil {
		return err
	}
	return w.Flush()
}

func writeSQLObservations(ctx context.Context, adapter sql.Adapter, observations []grove.Observation) error {
	if len(observations) == 0 {
		return nil
	}
	set, err := sql.CreateSet(ctx, adapter, len(observations[0].Features))
	if err != nil {
		return err
	}
	_, err = set.Write(ctx, observations)
	return err
}
