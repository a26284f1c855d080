package cli

import (
	"flag"
	"fmt"
	"os"

	"hufschlaeger.net/customs-data-exporter/internal/config"
)

func ParseFlags() (*config.Config, error) {
	// Environment (inkl. .env) liefert die Defaults, Flags überschreiben
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	flag.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "Zoll-API Endpunkt URL")
	flag.StringVar(&cfg.APIToken, "api-token", cfg.APIToken, "API Token (optional)")
	flag.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "Output CSV Datei")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Ausführliche Ausgabe")

	flag.Parse()

	if err := cfg.Validate(); err != nil {
		flag.Usage()
		return nil, err
	}

	return cfg, nil
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Zolldaten zu CSV Exporter

Usage: %s [OPTIONS]

Beispiele:
  # Export mit Standard-Endpunkt nach customs_data.csv
  %s

  # Export in eine bestimmte Datei
  %s -output zolldaten-2024.csv

  # Anderer Endpunkt mit Token
  %s -api-url "https://api.example.com/v1/logs" -api-token "xxxx"

Optionen:
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment Variables:
  CUSTOMS_API_URL    Zoll-API Endpunkt URL
  CUSTOMS_API_TOKEN  API Token
  OUTPUT_FILE        Output CSV Datei
  VERBOSE            Ausführliche Ausgabe
`)
	}
}
