package core

// writer.go serializes projected tables to plain CSV files.
//
// Missing cells are written as empty fields. gota's WriteCSV renders them as
// "NaN", so rows are assembled here and written with encoding/csv.

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
)

// PrepareOutput creates dir if needed and removes any existing file named in
// names. Files that do not exist are ignored.
func PrepareOutput(dir string, names []string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove previous output %s: %w", name, err)
		}
	}
	return nil
}

// WriteTable writes df to path as comma-separated text with a header row.
func WriteTable(path string, df dataframe.DataFrame) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output %s: %w", filepath.Base(path), err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output %s: %w", filepath.Base(path), cerr)
		}
	}()

	if err := EncodeCSV(f, df); err != nil {
		return fmt.Errorf("write output %s: %w", filepath.Base(path), err)
	}
	return nil
}

// EncodeCSV writes df as CSV: header first, then one record per row, with
// missing cells as empty fields. No index column is written.
func EncodeCSV(w io.Writer, df dataframe.DataFrame) error {
	if df.Err != nil {
		return df.Err
	}

	names := df.Names()
	columns := make([][]string, len(names))
	for j, name := range names {
		columns[j], _ = cellsOf(df.Col(name))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(names); err != nil {
		return err
	}

	record := make([]string, len(names))
	for i := 0; i < df.Nrow(); i++ {
		for j := range columns {
			record[j] = columns[j][i]
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
