package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/batch"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/matching"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var extractionErr *extraction.ExtractionError
	var classificationErr *matching.ClassificationError

	switch {
	case errors.Is(err, batch.ErrNothingToProcess):
		return http.StatusBadRequest
	case errors.As(err, &extractionErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &classificationErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
