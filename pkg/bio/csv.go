package bio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/pbanos/grove/pkg/grove"
)

/*
InputFormatError is the error returned when a row of a CSV stream
cannot be parsed into an observation.
*/
type InputFormatError struct {
	// Line of the stream where the row starts, 1-based
	Line int
	// Column of the offending field, 1-based, or 0 if the whole row is wrong
	Column int
	Err    error
}

func (e *InputFormatError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *InputFormatError) Unwrap() error {
	return e.Err
}

/*
ReadCSVObservations takes an io.Reader for a CSV stream and returns
the observations parsed from it or an error.

The stream has no header. Each row consists of the numeric values of
the features of an observation followed by its class. All rows must
have as many columns as the first one. Rows that cannot be parsed
make it return an *InputFormatError.
*/
func ReadCSVObservations(reader io.Reader) (*grove.Observations, error) {
	obs := grove.NewObservations(nil)
	err := ReadCSVObservationsByRow(reader, func(_ int, o grove.Observation) (bool, error) {
		obs.Add(o)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return obs, nil
}

/*
ReadCSVObservationsByRow takes an io.Reader for a CSV stream as described
on ReadCSVObservations and a lambda function that is called with the
line number and the observation parsed from every row. The lambda can
return false to stop reading, or an error to abort it.
*/
func ReadCSVObservationsByRow(reader io.Reader, lambda func(int, grove.Observation) (bool, error)) error {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = 0
	r.TrimLeadingSpace = true
	for {
		row, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return &InputFormatError{Line: pe.StartLine, Column: pe.Column, Err: pe.Err}
			}
			return errors.Wrap(err, "reading CSV")
		}
		line, _ := r.FieldPos(0)
		o, err := parseObservationFromCSVRow(line, row)
		if err != nil {
			return err
		}
		ok, err := lambda(line, o)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

/*
ReadCSVObservationsFromFilePath takes a filepath string, opens the file to
which it points and uses ReadCSVObservations to return the observations
in it or an error. An empty filepath reads from STDIN.
*/
func ReadCSVObservationsFromFilePath(filepath string) (*grove.Observations, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, errors.Wrapf(err, "reading observations")
		}
		defer f.Close()
	}
	obs, err := ReadCSVObservations(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing CSV file %s", filepath)
	}
	return obs, nil
}

func parseObservationFromCSVRow(line int, row []string) (grove.Observation, error) {
	if len(row) < 2 {
		return grove.Observation{}, &InputFormatError{Line: line, Err: errors.Newf("expected at least one feature and a class, got %d columns", len(row))}
	}
	features := make([]float64, len(row)-1)
	for i, v := range row[:len(row)-1] {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return grove.Observation{}, &InputFormatError{Line: line, Column: i + 1, Err: errors.Wrapf(err, "converting %q to float64", v)}
		}
		features[i] = f
	}
	return grove.Observation{Class: row[len(row)-1], Features: features}, nil
}

/*
CSVWriter writes observations as CSV rows in the format read by
ReadCSVObservations.
*/
type CSVWriter struct {
	w     *csv.Writer
	count int
}

// NewCSVWriter returns a CSVWriter writing onto the given io.Writer.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

/*
Write takes a slice of observations and writes a row for each of them.
It returns the number of observations written and an error.
*/
func (cw *CSVWriter) Write(observations []grove.Observation) (int, error) {
	for i, o := range observations {
		row := make([]string, 0, len(o.Features)+1)
		for _, f := range o.Features {
			row = append(row, strconv.FormatFloat(f, 'g', -1, 64))
		}
		row = append(row, o.Class)
		if err := cw.w.Write(row); err != nil {
			return i, errors.Wrap(err, "writing CSV row")
		}
		cw.count++
	}
	return len(observations), nil
}

// Count returns the number of observations written so far.
func (cw *CSVWriter) Count() int {
	return cw.count
}

// Flush writes any buffered rows onto the underlying io.Writer.
func (cw *CSVWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}
