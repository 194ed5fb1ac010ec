package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/JonMunkholm/campaignclean/internal/logging"
	"github.com/go-gota/gota/dataframe"
	"github.com/google/uuid"
)

// Service runs the cleaning pipeline between one input and one output folder.
type Service struct {
	inputDir   string
	outputDir  string
	archiveExt string
	tables     []TableDefinition
}

// NewService creates a service writing one file per table definition.
// Definitions are written in the order given.
func NewService(inputDir, outputDir, archiveExt string, tables []TableDefinition) (*Service, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("no table definitions registered")
	}
	return &Service{
		inputDir:   inputDir,
		outputDir:  outputDir,
		archiveExt: archiveExt,
		tables:     tables,
	}, nil
}

// OutputNames returns the file names the service writes.
func (s *Service) OutputNames() []string {
	names := make([]string, len(s.tables))
	for i, def := range s.tables {
		names[i] = def.Info.FileName()
	}
	return names
}

// Run executes one full pass:
//
//  1. Remove previous outputs (creating the output folder if needed)
//  2. Read and concatenate every archive in the input folder
//  3. Project the aggregated table once per definition
//  4. Write every projection
//
// Any error aborts the run and leaves none of the output files in place.
// Outputs removed in step 1 are not restored.
func (s *Service) Run(ctx context.Context) (RunResult, error) {
	start := time.Now()
	result := RunResult{RunID: uuid.NewString()}

	ctx = logging.WithRunID(ctx, result.RunID)
	logger := logging.FromContext(ctx)
	logger.Info("run started", "input", s.inputDir, "output", s.outputDir)

	if err := PrepareOutput(s.outputDir, s.OutputNames()); err != nil {
		return result, err
	}

	df, sources, err := LoadDirectory(ctx, s.inputDir, s.archiveExt)
	if err != nil {
		return result, err
	}
	result.Sources = sources
	result.Rows = df.Nrow()
	logger.Info("input aggregated", "archives", len(sources), "rows", result.Rows)

	// All projections succeed before any file is written.
	projected := make([]dataframe.DataFrame, len(s.tables))
	for i, def := range s.tables {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		out, err := Project(df, def)
		if err != nil {
			return result, err
		}
		projected[i] = out
	}

	outputs, err := s.writeOutputs(projected)
	if err != nil {
		return result, err
	}
	result.Outputs = outputs
	for _, out := range outputs {
		logger.Info("output written", "table", out.Key, "path", out.Path, "rows", out.Rows)
	}

	result.Duration = time.Since(start)
	logger.Info("run completed", "rows", result.Rows, "outputs", len(result.Outputs), "duration", result.Duration)
	return result, nil
}

// writeOutputs writes projected[i] for s.tables[i]. When any write fails,
// every file written by this call is removed again.
func (s *Service) writeOutputs(projected []dataframe.DataFrame) ([]OutputStats, error) {
	var outputs []OutputStats
	for i, def := range s.tables {
		path := filepath.Join(s.outputDir, def.Info.FileName())
		if err := WriteTable(path, projected[i]); err != nil {
			removeOutputs(append(outputs, OutputStats{Path: path}))
			return nil, err
		}

		outputs = append(outputs, OutputStats{
			Key:  def.Info.Key,
			Path: path,
			Rows: projected[i].Nrow(),
		})
	}
	return outputs, nil
}

func removeOutputs(outputs []OutputStats) {
	for _, out := range outputs {
		_ = os.Remove(out.Path)
	}
}
