package ingestion

import (
	"errors"
	"fmt"
)

// ErrNoText indicates a document produced no usable text. Callers must
// not fabricate a profile from it; the unit of work is retried or
// dead-lettered upstream.
var ErrNoText = errors.New("document contains no extractable text")

// UnsupportedTypeError indicates a document content type the extractor
// cannot handle.
type UnsupportedTypeError struct {
	ContentType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported document type: %s", e.ContentType)
}
