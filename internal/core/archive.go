package core

// archive.go reads zip containers of CSV entries without extracting them.

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/klauspost/compress/zip"
	"golang.org/x/text/encoding"
)

// NaNValues lists the cell spellings read as missing.
var NaNValues = []string{"", "NA", "N/A", "n/a", "NaN", "nan", "null", "NULL", "<NA>"}

// errEmptyTable is returned by concatFrames when there is nothing to join.
var errEmptyTable = errors.New("no tables to concatenate")

// ReadArchive reads every CSV entry of the zip file at path and returns their
// concatenation in entry order. ok is false when the archive holds no entries.
// The archive is closed on every return path.
func ReadArchive(path string) (df dataframe.DataFrame, stats SourceStats, ok bool, err error) {
	stats.Archive = filepath.Base(path)

	zr, err := zip.OpenReader(path)
	if err != nil {
		return dataframe.DataFrame{}, stats, false, fmt.Errorf("open archive %s: %w", stats.Archive, err)
	}
	defer zr.Close()

	var frames []dataframe.DataFrame
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}

		entry, n, err := readEntry(f)
		if err != nil {
			return dataframe.DataFrame{}, stats, false, fmt.Errorf("archive %s: %w", stats.Archive, err)
		}

		frames = append(frames, entry)
		stats.Entries++
		stats.Rows += entry.Nrow()
		stats.Bytes += n
	}

	if len(frames) == 0 {
		return dataframe.DataFrame{}, stats, false, nil
	}

	df, err = concatFrames(frames)
	if err != nil {
		return dataframe.DataFrame{}, stats, false, fmt.Errorf("archive %s: %w", stats.Archive, err)
	}
	return df, stats, true, nil
}

// readEntry parses one zip entry as a CSV table with a header row.
// Returns the table and the number of uncompressed bytes consumed.
// An entry holding only a header row yields a table with no rows.
func readEntry(f *zip.File) (dataframe.DataFrame, int64, error) {
	rc, err := f.Open()
	if err != nil {
		return dataframe.DataFrame{}, 0, fmt.Errorf("open entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	r, counter := WrapEntry(rc)
	data, err := io.ReadAll(r)
	if err != nil {
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return dataframe.DataFrame{}, counter.BytesRead, fmt.Errorf("invalid csv in entry %s: %w", f.Name, err)
		}
		return dataframe.DataFrame{}, counter.BytesRead, fmt.Errorf("read entry %s: %w", f.Name, err)
	}

	df := ParseCSV(bytes.NewReader(data))
	if df.Err != nil && isEmptyTable(df.Err) {
		df = headerFrame(data)
	}
	if df.Err != nil {
		return dataframe.DataFrame{}, counter.BytesRead, fmt.Errorf("invalid csv in entry %s: %w", f.Name, df.Err)
	}
	return df, counter.BytesRead, nil
}

// isEmptyTable reports whether err is gota's error for a table without rows.
func isEmptyTable(err error) bool {
	return strings.Contains(err.Error(), "empty DataFrame")
}

// headerFrame builds a table with no rows from data holding exactly one
// record, which is taken as the header. Anything else is an error.
func headerFrame(data []byte) dataframe.DataFrame {
	raw := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(false),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	)
	if raw.Err != nil {
		return raw
	}
	if raw.Nrow() != 1 {
		return dataframe.DataFrame{Err: fmt.Errorf("load records: want a single header row, got %d rows", raw.Nrow())}
	}

	names := raw.Records()[1]
	cols := make([]series.Series, len(names))
	for i, name := range names {
		cols[i] = series.New([]string{}, series.String, name)
	}
	return dataframe.New(cols...)
}

// ParseCSV reads a comma-separated table with a header row. Every column is
// kept as text so values are written back exactly as read.
func ParseCSV(r io.Reader) dataframe.DataFrame {
	return dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(NaNValues),
	)
}

// concatFrames appends the rows of frames in order. Columns are matched by
// name against the first frame.
func concatFrames(frames []dataframe.DataFrame) (dataframe.DataFrame, error) {
	if len(frames) == 0 {
		return dataframe.DataFrame{}, errEmptyTable
	}

	out := frames[0]
	for _, next := range frames[1:] {
		out = out.RBind(next)
		if out.Err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("concatenate tables: %w", out.Err)
		}
	}
	return out, nil
}
