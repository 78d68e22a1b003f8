package io

import (
	"encoding/csv"
	"encoding/gob"
	"errors"
	"fmt"
	gio "io"
	"os"
	"strconv"

	"helmert/pkg/model"
)

type DataError struct {
	Line  int
	Error string
}

// LoadCSV reads a dataset with a header row into a Table. Columns whose every
// cell parses as a float become numeric; all others stay string backed. Rows
// with the wrong field count are skipped and reported as DataErrors.
func LoadCSV(r gio.Reader) (*Table, []DataError, error) {
	reader := csv.NewReader(r)
	reader.Comma = ','

	//First line is expected to be a header
	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("error reading data header: %w", err)
	}

	cells := make([][]string, len(header))
	var dataErrors []DataError
	currentLine := 0

	for {
		record, err := reader.Read()
		if err == gio.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) && parseErr.Err == csv.ErrFieldCount {
				dataErrors = append(dataErrors, DataError{Line: currentLine, Error: err.Error()})
				currentLine++
				continue
			}
			return nil, nil, fmt.Errorf("error reading data: %w", err)
		}
		for i := range header {
			cells[i] = append(cells[i], record[i])
		}
		currentLine++
	}

	table := &Table{Columns: make([]*Column, len(header))}
	for i, name := range header {
		table.Columns[i] = buildColumn(name, cells[i])
	}
	return table, dataErrors, nil
}

func LoadCSVFile(name string) (*Table, []DataError, error) {
	inputFile, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening file: %w", err)
	}
	defer inputFile.Close()
	return LoadCSV(inputFile)
}

func buildColumn(name string, raw []string) *Column {
	floats := make([]float64, len(raw))
	for i, cell := range raw {
		value, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return &Column{Name: name, Strings: raw}
		}
		floats[i] = value
	}
	return &Column{Name: name, Floats: floats}
}

// WriteCSV writes the table with a header row. Floats use the shortest exact
// decimal rendering; undefined values appear as NaN.
func WriteCSV(t *Table, w gio.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.ColumnNames()); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}
	record := make([]string, t.NumColumns())
	for i := 0; i < t.NumRows(); i++ {
		for j, col := range t.Columns {
			record[j] = col.Cell(i)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("error writing row %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func SaveModel(model *model.Model, writer gio.Writer) error {
	encoder := gob.NewEncoder(writer)
	err := encoder.Encode(model)
	if err != nil {
		return fmt.Errorf("error encoding model: %w", err)
	}
	return nil
}

func LoadModel(input gio.Reader) (*model.Model, error) {
	decoder := gob.NewDecoder(input)
	model := model.Model{}
	err := decoder.Decode(&model)
	if err != nil {
		return nil, fmt.Errorf("error decoding model: %w", err)
	}
	return &model, nil
}
