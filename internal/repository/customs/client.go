package customs

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"hufschlaeger.net/customs-data-exporter/internal/config"
	customsDomain "hufschlaeger.net/customs-data-exporter/internal/domain/customs"
	"hufschlaeger.net/customs-data-exporter/pkg/utils"
)

type Repository struct {
	config     *config.Config
	httpClient *http.Client
}

func NewRepository(cfg *config.Config) *Repository {
	return &Repository{
		config:     cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchRecords holt alle Datensätze vom konfigurierten API-Endpunkt.
// Ein Versuch, kein Retry.
func (r *Repository) FetchRecords() (customsDomain.Dataset, error) {
	req, err := http.NewRequest("GET", r.config.APIURL, nil)
	if err != nil {
		return nil, &FetchError{URL: r.config.APIURL, Err: err}
	}

	req.Header.Set("accept", "application/json")
	if r.config.APIToken != "" {
		req.Header.Set("Authorization", "Bearer "+r.config.APIToken)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: r.config.APIURL, Err: err}
	}
	defer func() {
		err = resp.Body.Close()
		if err != nil {
			fmt.Printf("fehler beim Abschliessen des Response bodies.")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &FetchError{
			URL:        r.config.APIURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %d: %s", resp.StatusCode, utils.TruncateText(string(body), 300)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: r.config.APIURL, Err: fmt.Errorf("read response: %w", err)}
	}

	records, err := parseRecords(body)
	if err != nil {
		return nil, &FetchError{URL: r.config.APIURL, Err: err}
	}

	return records, nil
}

// parseRecords akzeptiert entweder ein Top-Level JSON-Array oder ein Objekt
// mit einem "items"-Array (die Hülle der Zoll-API).
func parseRecords(body []byte) (customsDomain.Dataset, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("response is not valid JSON")
	}

	parsed := gjson.ParseBytes(body)

	items := parsed
	if parsed.IsObject() {
		items = parsed.Get("items")
		if !items.Exists() {
			return nil, fmt.Errorf("response object has no 'items' array")
		}
	}

	if !items.IsArray() {
		return nil, fmt.Errorf("response is neither an array nor an 'items' envelope")
	}

	var records customsDomain.Dataset
	var itemErr error

	items.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			itemErr = fmt.Errorf("record %d is not a JSON object", len(records))
			return false
		}

		record := customsDomain.NewRecord()
		item.ForEach(func(key, value gjson.Result) bool {
			record.Set(key.String(), resultToValue(value))
			return true
		})

		records = append(records, record)
		return true
	})

	if itemErr != nil {
		return nil, itemErr
	}

	return records, nil
}

// resultToValue übersetzt einen gjson-Wert in die internen Feldwert-Typen.
// Verschachtelte Strukturen bleiben als Roh-JSON stehen und werden erst beim
// Schreiben beanstandet.
func resultToValue(value gjson.Result) any {
	switch value.Type {
	case gjson.String:
		return value.Str
	case gjson.Number:
		return value.Num
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Null:
		return nil
	default:
		return json.RawMessage(value.Raw)
	}
}
