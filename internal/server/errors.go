package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/store"
)

// HTTPStatus maps pipeline and store errors onto response codes. The
// distinction between "no data yet" (empty results, 200) and
// "processing failed" (explicit error) is handled by the callers; this
// only classifies genuine errors.
func HTTPStatus(err error) int {
	var unsupported *ingestion.UnsupportedTypeError
	var fieldErrors validator.ValidationErrors

	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ingestion.ErrNoText):
		return http.StatusUnprocessableEntity
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &fieldErrors):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
