package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/ats-checker/internal/checker"
	"github.com/jonathan/ats-checker/internal/extraction"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		unsupported  *extraction.UnsupportedFormatError
		tooLarge     *extraction.FileTooLargeError
		imageOnly    *extraction.ImageOnlyPDFError
		emptyDoc     *extraction.EmptyDocumentError
		insufficient *extraction.InsufficientContentError
		extractFail  *extraction.ExtractionError
	)

	switch {
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &imageOnly), errors.As(err, &emptyDoc),
		errors.As(err, &insufficient), errors.As(err, &extractFail):
		return http.StatusUnprocessableEntity
	case errors.Is(err, checker.ErrSuperseded):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
