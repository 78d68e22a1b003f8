package pkg

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"helmert/pkg/io"
	"helmert/pkg/model"
)

type EncoderParameters struct {
	// CategoricalColumns lists the columns to encode, in processing order.
	// When nil, every string-backed column is encoded in table order.
	CategoricalColumns []string

	// DropInvariant removes output columns whose variance on the fit data is
	// at or below the invariance threshold
	DropInvariant bool

	// Verbose raises per-column fit diagnostics from debug to info level.
	// It has no effect on the encoding itself.
	Verbose bool
}

// Encoder learns a Helmert contrast encoding on a fit dataset and applies it
// to any dataset with the same column count. Fit must be called exactly once
// and is not safe for concurrent use; after it returns the encoder is
// read-only and Transform may be called concurrently.
type Encoder struct {
	params EncoderParameters
	model  *model.Model
}

func NewEncoder(params EncoderParameters) *Encoder {
	return &Encoder{params: params}
}

// NewFittedEncoder wraps a previously fitted and persisted model.
func NewFittedEncoder(m *model.Model) *Encoder {
	return &Encoder{model: m}
}

// Model returns the fitted snapshot, or nil before Fit.
func (e *Encoder) Model() *model.Model {
	return e.model
}

// Fit learns the category codes for every categorical column and, when
// pruning is enabled, the set of invariant output columns. y is accepted for
// pipeline symmetry and never read.
func (e *Encoder) Fit(t *io.Table, y []float64) error {
	if err := t.Validate(); err != nil {
		return err
	}

	cols := e.params.CategoricalColumns
	if cols == nil {
		cols = detectCategorical(t)
	}

	metaData := model.NewMetadata()
	metaData.NumColumns = t.NumColumns()
	metaData.Columns = t.ColumnNames()
	metaData.Roles = make([]model.ColumnRole, t.NumColumns())

	for _, name := range cols {
		col, ok := t.ColumnByName(name)
		if !ok {
			return fmt.Errorf("categorical column %s not found in input", name)
		}
		categories := model.NewCategoryMap()
		categories.Learn(col.StringValues())
		metaData.CategoryMaps[name] = categories
		metaData.CategoricalColumns = append(metaData.CategoricalColumns, name)

		event := log.Debug()
		if e.params.Verbose {
			event = log.Info()
		}
		event.Str("column", name).Int("cardinality", categories.Size()).Msg("Learned categorical column")
	}
	for i, name := range metaData.Columns {
		if _, ok := metaData.CategoryMaps[name]; ok {
			metaData.Roles[i] = model.Categorical
		}
	}

	fitted := &model.Model{MetaData: metaData, DropColumns: model.NewColumnSet()}
	if e.params.DropInvariant {
		expanded, err := expandCategorical(t, metaData)
		if err != nil {
			return err
		}
		fitted.DropColumns = invariantColumns(expanded)
	}

	e.model = fitted
	return nil
}

// FitTransform fits the encoder and transforms the fit dataset in one call.
func (e *Encoder) FitTransform(t *io.Table, y []float64) (*io.Table, error) {
	if err := e.Fit(t, y); err != nil {
		return nil, err
	}
	return e.Transform(t)
}

// detectCategorical returns the string-backed columns in table order
func detectCategorical(t *io.Table) []string {
	var cols []string
	for _, col := range t.Columns {
		if !col.Numeric() {
			cols = append(cols, col.Name)
		}
	}
	return cols
}

// FitFile fits an encoder on a CSV dataset and saves the fitted model. When
// transformedFileName is set the transformed fit data is written there as CSV.
func FitFile(trainFile, outputFileName, transformedFileName string, params EncoderParameters) error {
	table, dataErrors, err := io.LoadCSVFile(trainFile)
	if err != nil {
		return fmt.Errorf("error reading training data: %w", err)
	}
	printDataErrors(dataErrors)
	if table.NumRows() == 0 {
		return fmt.Errorf("no data to fit")
	}

	encoder := NewEncoder(params)
	if err := encoder.Fit(table, nil); err != nil {
		return fmt.Errorf("error fitting encoder: %w", err)
	}
	metaData := encoder.Model().MetaData
	log.Info().Int("columns", metaData.NumColumns).
		Int("categorical", len(metaData.CategoricalColumns)).
		Int("dropped", encoder.Model().DropColumns.Size()).
		Msg("Fitted encoder")

	outputFile, err := os.Create(outputFileName)
	if err != nil {
		return fmt.Errorf("error creating output file %s: %w", outputFileName, err)
	}
	defer outputFile.Close()
	if err := io.SaveModel(encoder.Model(), outputFile); err != nil {
		return fmt.Errorf("error saving model to %s: %w", outputFileName, err)
	}

	if transformedFileName == "" {
		return nil
	}
	transformed, err := encoder.Transform(table)
	if err != nil {
		return err
	}
	transformedFile, err := os.Create(transformedFileName)
	if err != nil {
		return fmt.Errorf("error creating output file %s: %w", transformedFileName, err)
	}
	defer transformedFile.Close()
	return io.WriteCSV(transformed, transformedFile)
}
