package core

import (
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// DeriveFunc builds an output column from the aggregated source table.
// It must not modify df and must return a series with df.Nrow() elements.
type DeriveFunc func(df dataframe.DataFrame) (series.Series, error)

// ColumnSpec describes one column of a projection.
type ColumnSpec struct {
	Name   string     // Output column header
	Derive DeriveFunc // nil copies the source column named Name unchanged
}

// TableInfo contains descriptive information about a projection.
type TableInfo struct {
	Key   string // Unique identifier: "client"
	Group string // Dataset the projection belongs to: "campaign"
	Label string // Display name: "Clients"
	Order int    // Position within the group when writing outputs
}

// FileName returns the output file name for the projection.
func (i TableInfo) FileName() string {
	return i.Key + ".csv"
}

// TableDefinition contains everything needed to build one output file.
type TableDefinition struct {
	Info    TableInfo
	Columns []ColumnSpec
}

// ColumnNames returns the output header in order.
func (t TableDefinition) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// SourceStats describes one archive that contributed rows to a run.
type SourceStats struct {
	Archive string // Base name of the zip file
	Entries int    // CSV entries read
	Rows    int    // Data rows across all entries
	Bytes   int64  // Uncompressed bytes read
}

// OutputStats describes one written output file.
type OutputStats struct {
	Key  string
	Path string
	Rows int
}

// RunResult contains the final result of a cleaning run.
type RunResult struct {
	RunID    string
	Sources  []SourceStats
	Rows     int // Rows in the aggregated table
	Outputs  []OutputStats
	Duration time.Duration
}
