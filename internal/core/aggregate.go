package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/JonMunkholm/campaignclean/internal/logging"
	"github.com/go-gota/gota/dataframe"
)

// ErrNoValidData is returned when the input directory yields no table.
var ErrNoValidData = errors.New("no valid data found in zip archives")

// ListArchives returns the paths of regular files in dir whose name ends with
// ext, in lexical order.
func ListArchives(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list input directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

// LoadDirectory reads every archive in dir and concatenates their tables in
// directory order. Archives without entries are skipped. Returns
// ErrNoValidData when nothing was read.
func LoadDirectory(ctx context.Context, dir, ext string) (dataframe.DataFrame, []SourceStats, error) {
	paths, err := ListArchives(dir, ext)
	if err != nil {
		return dataframe.DataFrame{}, nil, err
	}

	var (
		frames  []dataframe.DataFrame
		sources []SourceStats
	)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return dataframe.DataFrame{}, nil, err
		}

		archiveLogger := logging.WithFields(ctx, "archive", filepath.Base(path))

		df, stats, ok, err := ReadArchive(path)
		if err != nil {
			return dataframe.DataFrame{}, nil, err
		}
		if !ok {
			archiveLogger.Warn("archive has no entries, skipping")
			continue
		}

		archiveLogger.Debug("archive loaded",
			"entries", stats.Entries,
			"rows", stats.Rows,
			"bytes", stats.Bytes,
		)
		frames = append(frames, df)
		sources = append(sources, stats)
	}

	if len(frames) == 0 {
		return dataframe.DataFrame{}, nil, fmt.Errorf("%s: %w", dir, ErrNoValidData)
	}

	df, err := concatFrames(frames)
	if err != nil {
		return dataframe.DataFrame{}, nil, err
	}
	return df, sources, nil
}
