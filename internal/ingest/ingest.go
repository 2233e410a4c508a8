// Package ingest reads spreadsheet exports off disk for the dashboards. The
// generic reader produces raw header-keyed rows and leaves every
// interpretation decision (header variants, amount locales, month names) to
// the classifier; the typed readers cover the fixed cash-flow and budget
// templates via gocsv.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"rmoreira/findash/internal/models"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Delimiter is the CSV field delimiter used by all readers.
var Delimiter rune = ','

// SetDelimiter configures the CSV field delimiter.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// ReadRawRows reads a CSV export into raw rows keyed by the header line,
// preserving header casing. Short records are padded with empty cells; a
// file without a header yields no rows.
func ReadRawRows(path string) ([]models.RawRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening upload file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close upload file")
		}
	}()
	return readRawRows(file)
}

func readRawRows(r io.Reader) ([]models.RawRow, error) {
	reader := csv.NewReader(r)
	reader.Comma = Delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	rows := make([]models.RawRow, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading row: %w", err)
		}
		row := make(models.RawRow, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}

	log.WithField("count", len(rows)).Info("Read upload rows")
	return rows, nil
}
