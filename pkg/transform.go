package pkg

import (
	"fmt"
	gio "io"
	"os"

	"github.com/rs/zerolog/log"

	"helmert/pkg/io"
)

// Transform applies the fitted encoding: category codes map to contrast
// matrix rows, expanded blocks replace the categorical columns, and any
// invariant columns learned at fit time are removed. The input table is left
// untouched and a fresh output table is returned. Safe for concurrent use on
// a fitted encoder.
func (e *Encoder) Transform(t *io.Table) (*io.Table, error) {
	if e.model == nil {
		return nil, NotFittedError{}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	metaData := e.model.MetaData
	if t.NumColumns() != metaData.NumColumns {
		return nil, DimensionMismatchError{Expected: metaData.NumColumns, Actual: t.NumColumns()}
	}
	if len(metaData.CategoricalColumns) == 0 {
		return t, nil
	}

	out, err := expandCategorical(t, metaData)
	if err != nil {
		return nil, err
	}
	return dropColumns(out, e.model.DropColumns), nil
}

func printDataErrors(errors []io.DataError) {
	for _, err := range errors {
		log.Error().Msgf("Error parsing data at line %d: %s", err.Line, err.Error)
	}
}

// TransformFile applies a previously saved encoder to a CSV dataset, writing
// the result to outputFileName or to stdout when it is empty.
func TransformFile(modelFileName, inputFileName, outputFileName string) error {
	modelFile, err := os.Open(modelFileName)
	if err != nil {
		return fmt.Errorf("error opening model file %s: %w", modelFileName, err)
	}
	defer modelFile.Close()

	fitted, err := io.LoadModel(modelFile)
	if err != nil {
		return fmt.Errorf("error loading model from file %s: %w", modelFileName, err)
	}

	table, dataErrors, err := io.LoadCSVFile(inputFileName)
	if err != nil {
		return fmt.Errorf("error loading data from %s: %w", inputFileName, err)
	}
	printDataErrors(dataErrors)

	encoder := NewFittedEncoder(fitted)
	out, err := encoder.Transform(table)
	if err != nil {
		return err
	}

	var outputWriter gio.Writer = os.Stdout
	if outputFileName != "" {
		outputFile, err := os.Create(outputFileName)
		if err != nil {
			return fmt.Errorf("error opening output file %s: %w", outputFileName, err)
		}
		defer outputFile.Close()
		outputWriter = outputFile
	}
	return io.WriteCSV(out, outputWriter)
}
