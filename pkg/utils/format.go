package utils

import (
	"fmt"
	"strconv"
)

// FormatValue formatiert einen Feldwert für eine CSV-Zelle. Null wird zur
// leeren Zelle, Zahlen ohne überflüssige Nachkommastellen. Nicht-primitive
// Werte (verschachtelte Objekte/Arrays) sind ein Fehler.
func FormatValue(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	default:
		return "", fmt.Errorf("nicht-primitiver Feldwert (%T)", value)
	}
}

// TruncateText kürzt Text auf maximale Länge
func TruncateText(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}

	if maxLength <= 3 {
		return text[:maxLength]
	}

	return text[:maxLength-3] + "..."
}
