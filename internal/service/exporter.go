package service

import (
	"fmt"

	"hufschlaeger.net/customs-data-exporter/internal/config"
	"hufschlaeger.net/customs-data-exporter/internal/csv"
	customsRepo "hufschlaeger.net/customs-data-exporter/internal/repository/customs"
)

type Exporter struct {
	config      *config.Config
	customsRepo *customsRepo.Repository
}

func NewExporter(cfg *config.Config) *Exporter {
	return &Exporter{
		config:      cfg,
		customsRepo: customsRepo.NewRepository(cfg),
	}
}

// Export startet den Hauptexport-Prozess: Abruf von der Zoll-API, danach
// CSV-Export in die Zieldatei.
func (e *Exporter) Export() error {
	// 1. Konfiguration validieren
	if err := e.config.Validate(); err != nil {
		return fmt.Errorf("konfiguration ungültig: %w", err)
	}

	fmt.Printf("🔍 Lade Zolldaten von der API: %s\n", e.config.APIURL)

	// 2. Datensätze von der API laden
	records, err := e.customsRepo.FetchRecords()
	if err != nil {
		return fmt.Errorf("fehler beim Laden der Zolldaten: %w", err)
	}

	fmt.Printf("📊 Gefunden: %d Datensätze\n", len(records))

	if len(records) == 0 {
		fmt.Println("ℹ️  Keine Datensätze gefunden")
	}

	// 3. CSV schreiben (leere Antwort ergibt eine leere Datei)
	outputFile := e.config.GetOutputFile()

	if err := csv.WriteDataset(records, outputFile); err != nil {
		return fmt.Errorf("CSV-Export fehlgeschlagen: %w", err)
	}

	fmt.Printf("✅ Datei erstellt: %s (%d Datensätze)\n", outputFile, len(records))
	return nil
}
