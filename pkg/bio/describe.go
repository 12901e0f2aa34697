package bio

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pbanos/grove/pkg/grove"
)

/*
ObservationsDataFrame returns a dataframe with a float column per feature,
named f0, f1..., and a string column named class.
*/
func ObservationsDataFrame(obs *grove.Observations) dataframe.DataFrame {
	list := obs.Observations()
	features := obs.Features()
	columns := make([]series.Series, 0, len(features)+1)
	for _, f := range features {
		values := make([]float64, len(list))
		for i, o := range list {
			values[i] = o.Feature(f)
		}
		columns = append(columns, series.New(values, series.Float, fmt.Sprintf("f%d", f)))
	}
	classes := make([]string, len(list))
	for i, o := range list {
		classes[i] = o.Class
	}
	columns = append(columns, series.New(classes, series.String, "class"))
	return dataframe.New(columns...)
}

/*
Describe returns the summary statistics (mean, median, stddev, min,
quartiles and max) of every column of the observations, as computed by
gota's DataFrame.Describe.
*/
func Describe(obs *grove.Observations) dataframe.DataFrame {
	return ObservationsDataFrame(obs).Describe()
}
