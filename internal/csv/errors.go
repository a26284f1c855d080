package csv

import "fmt"

// WriteError beschreibt einen fehlgeschlagenen CSV-Export: Zielpfad nicht
// beschreibbar oder ein nicht serialisierbarer Feldwert.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s failed: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
