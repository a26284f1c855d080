package csv

import (
	"fmt"

	customsDomain "hufschlaeger.net/customs-data-exporter/internal/domain/customs"
	"hufschlaeger.net/customs-data-exporter/pkg/utils"
)

// BuildHeader leitet die Spaltenüberschriften aus den Feldnamen des ersten
// Datensatzes ab. Bei leerem Dataset gibt es keine Überschriften.
func BuildHeader(ds customsDomain.Dataset) []string {
	if len(ds) == 0 {
		return nil
	}
	return ds[0].Fields()
}

// BuildRows erzeugt eine CSV-Zeile pro Datensatz in Eingabe-Reihenfolge.
// Fehlende Felder werden zur leeren Zelle; Felder, die nicht im Header stehen,
// fallen weg. Der Header ist durch den ersten Datensatz fixiert.
func BuildRows(ds customsDomain.Dataset, header []string) ([][]string, error) {
	rows := make([][]string, 0, len(ds))

	for i, record := range ds {
		row := make([]string, len(header))
		for j, field := range header {
			value, ok := record.Get(field)
			if !ok {
				continue
			}

			cell, err := utils.FormatValue(value)
			if err != nil {
				return nil, fmt.Errorf("datensatz %d, Feld %q: %w", i, field, err)
			}
			row[j] = cell
		}
		rows = append(rows, row)
	}

	return rows, nil
}
