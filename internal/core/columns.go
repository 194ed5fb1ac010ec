package core

// columns.go lifts the cell rules in convert.go to whole gota columns.
//
// Source tables are read with every column typed as string. A missing cell is
// a gota NA element; series.New turns the literal missingCell back into NA
// when building an output column.

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// missingCell is the value gota string series store for NA elements.
const missingCell = "NaN"

// sourceColumn returns the named column of df.
func sourceColumn(df dataframe.DataFrame, name string) (series.Series, error) {
	for _, n := range df.Names() {
		if n == name {
			return df.Col(name), nil
		}
	}
	return series.Series{}, fmt.Errorf("column not found: %s", name)
}

// cellsOf returns the column values with missing cells replaced by "".
func cellsOf(s series.Series) (values []string, missing []bool) {
	values = s.Records()
	missing = s.IsNaN()
	for i := range values {
		if missing[i] {
			values[i] = ""
		}
	}
	return values, missing
}

// MapText derives a string column from the source column col. fn is applied
// to present cells only; missing cells stay missing. When fn reports
// ok == false the output cell is missing.
func MapText(col string, fn func(string) (string, bool)) DeriveFunc {
	return func(df dataframe.DataFrame) (series.Series, error) {
		src, err := sourceColumn(df, col)
		if err != nil {
			return series.Series{}, err
		}

		values, missing := cellsOf(src)
		out := make([]string, len(values))
		for i, v := range values {
			if missing[i] {
				out[i] = missingCell
				continue
			}
			mapped, ok := fn(v)
			if !ok {
				out[i] = missingCell
				continue
			}
			out[i] = mapped
		}

		return series.New(out, series.String, col), nil
	}
}

// Replace adapts a total string function for MapText.
func Replace(fn func(string) string) func(string) (string, bool) {
	return func(s string) (string, bool) {
		return fn(s), true
	}
}

// FlagColumn derives an integer 0/1 column: 1 where the source cell equals
// match exactly, 0 everywhere else including missing cells.
func FlagColumn(col, match string) DeriveFunc {
	return func(df dataframe.DataFrame) (series.Series, error) {
		src, err := sourceColumn(df, col)
		if err != nil {
			return series.Series{}, err
		}

		values, missing := cellsOf(src)
		out := make([]int, len(values))
		for i, v := range values {
			if missing[i] {
				continue
			}
			out[i] = Flag(v, match)
		}

		return series.New(out, series.Int, col), nil
	}
}

// ContactDateColumn derives the last contact date from the month and day
// columns. Rows whose combination is not a valid date get a missing cell.
func ContactDateColumn(name, monthCol, dayCol string) DeriveFunc {
	return func(df dataframe.DataFrame) (series.Series, error) {
		monthSrc, err := sourceColumn(df, monthCol)
		if err != nil {
			return series.Series{}, err
		}
		daySrc, err := sourceColumn(df, dayCol)
		if err != nil {
			return series.Series{}, err
		}

		months, _ := cellsOf(monthSrc)
		days, _ := cellsOf(daySrc)
		out := make([]string, len(months))
		for i := range months {
			formatted, ok := FormatDate(LastContactDate(months[i], days[i]))
			if !ok {
				out[i] = missingCell
				continue
			}
			out[i] = formatted
		}

		return series.New(out, series.String, name), nil
	}
}
