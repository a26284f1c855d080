package customs

import "fmt"

// FetchError beschreibt einen fehlgeschlagenen API-Abruf: Netzwerkfehler,
// Nicht-200-Status oder ein nicht parsbarer Response-Body.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s failed (HTTP %d): %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s failed: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
