package bio

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/pbanos/grove/pkg/grove"
	"github.com/pterm/pterm"
)

/*
ReportTableData returns the rows of the table printed by WriteReportTable:
a header followed by one row per forest size with the accuracy of each
fold, their mean and standard deviation and the number of failed
predictions.
*/
func ReportTableData(report *grove.Report) pterm.TableData {
	header := []string{"forest size"}
	for i := 0; i < report.Folds; i++ {
		header = append(header, fmt.Sprintf("fold %d", i+1))
	}
	header = append(header, "mean", "stddev", "failures")
	data := pterm.TableData{header}
	for _, result := range report.Results {
		row := []string{strconv.Itoa(result.ForestSize)}
		for _, fold := range result.Folds {
			row = append(row, formatAccuracy(fold.Accuracy))
		}
		row = append(row, formatAccuracy(result.Mean), formatAccuracy(result.StdDev), strconv.Itoa(result.Failures))
		data = append(data, row)
	}
	return data
}

// WriteReportTable renders a report as a table onto the writer.
func WriteReportTable(w io.Writer, report *grove.Report) error {
	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(ReportTableData(report)).Srender()
	if err != nil {
		return errors.Wrap(err, "rendering report table")
	}
	_, err = fmt.Fprintf(w, "report %s: %d observations, %d folds, seed %d\n%s\n", report.ID, report.Observations, report.Folds, report.Seed, table)
	if err != nil {
		return errors.Wrap(err, "printing report table")
	}
	return nil
}

func formatAccuracy(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
