package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// DefaultAPIURL ist der Standard-Endpunkt der Zoll-API.
	DefaultAPIURL = "http://5.159.103.79:4000/api/v1/logs"

	// DefaultOutputFile ist der Standard-Dateiname für den CSV-Export.
	DefaultOutputFile = "customs_data.csv"
)

type Config struct {
	APIURL     string
	APIToken   string
	OutputFile string
	Verbose    bool
}

func NewConfig() (*Config, error) {
	// .env laden (ignoriere Fehler wenn Datei nicht existiert)
	if os.Getenv("GODOTENV_DISABLE") == "" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			fmt.Printf("⚠️  Warnung beim Laden der .env: %v\n", err)
		}
	}

	cfg := &Config{
		APIURL:     getEnv("CUSTOMS_API_URL", DefaultAPIURL),
		APIToken:   getEnv("CUSTOMS_API_TOKEN", ""),
		OutputFile: getEnv("OUTPUT_FILE", DefaultOutputFile),
		Verbose:    getBoolEnv("VERBOSE", false),
	}

	if cfg.Verbose {
		cfg.printDebugInfo()
	}

	return cfg, nil
}

func (c *Config) printDebugInfo() {
	fmt.Printf("🔧 Configuration loaded:\n")
	fmt.Printf("   API URL: %s\n", c.APIURL)
	fmt.Printf("   Output File: %s\n", c.OutputFile)
	fmt.Printf("   Has API Token: %t (length: %d)\n",
		c.APIToken != "", len(c.APIToken))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("API URL fehlt (CUSTOMS_API_URL)")
	}

	parsed, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("ungültige API URL %q: %w", c.APIURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("ungültige API URL %q: http oder https erwartet", c.APIURL)
	}

	return nil
}

// GetOutputFile liefert den Zielpfad, mit Standardwert falls leer.
func (c *Config) GetOutputFile() string {
	if c.OutputFile == "" {
		return DefaultOutputFile
	}
	return c.OutputFile
}
