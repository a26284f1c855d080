package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	customsDomain "hufschlaeger.net/customs-data-exporter/internal/domain/customs"
)

// WriteDataset schreibt das Dataset als CSV-Datei an den angegebenen Pfad.
// Der Header kommt aus dem ersten Datensatz; ein leeres Dataset erzeugt eine
// leere Datei ohne Header. Geschrieben wird in eine temporäre Datei im
// Zielverzeichnis, die erst bei Erfolg umbenannt wird. Eine fehlgeschlagene
// Ausführung hinterlässt daher keine halbfertige Zieldatei.
func WriteDataset(ds customsDomain.Dataset, path string) error {
	header := BuildHeader(ds)

	rows, err := BuildRows(ds, header)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return &WriteError{Path: path, Err: fmt.Errorf("error creating CSV file: %w", err)}
	}
	tmpPath := tmpFile.Name()

	if err := writeAll(tmpFile, header, rows); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return &WriteError{Path: path, Err: err}
	}

	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return &WriteError{Path: path, Err: err}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return &WriteError{Path: path, Err: err}
	}

	return nil
}

func writeAll(file *os.File, header []string, rows [][]string) error {
	// Leeres Dataset: Datei bleibt leer, kein Header
	if len(header) == 0 {
		return nil
	}

	writer := csv.NewWriter(file)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("error writing headers to CSV: %w", err)
	}

	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("error writing data to CSV: %w", err)
	}

	writer.Flush()
	return writer.Error()
}
