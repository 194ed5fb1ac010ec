package core

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Project builds the output table described by def from the aggregated
// source table. Columns appear in def order; the result has exactly
// src.Nrow() rows in source order. src is not modified.
func Project(src dataframe.DataFrame, def TableDefinition) (dataframe.DataFrame, error) {
	if src.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("project %s: %w", def.Info.Key, src.Err)
	}

	cols := make([]series.Series, 0, len(def.Columns))
	for _, spec := range def.Columns {
		var (
			s   series.Series
			err error
		)
		if spec.Derive == nil {
			s, err = sourceColumn(src, spec.Name)
			if err == nil {
				s = s.Copy()
			}
		} else {
			s, err = spec.Derive(src)
		}
		if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("project %s: %w", def.Info.Key, err)
		}
		if s.Len() != src.Nrow() {
			return dataframe.DataFrame{}, fmt.Errorf("project %s: column %s has %d rows, want %d",
				def.Info.Key, spec.Name, s.Len(), src.Nrow())
		}

		s.Name = spec.Name
		cols = append(cols, s)
	}

	out := dataframe.New(cols...)
	if out.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("project %s: %w", def.Info.Key, out.Err)
	}
	return out, nil
}
