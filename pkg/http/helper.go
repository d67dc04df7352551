package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"

	apperrors "hoteldesk/pkg/errors"
)

// DecodeBody reads one JSON document from the request body into dst.
// Unknown fields are ignored; a type mismatch names the offending field.
func DecodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var timeErr *time.ParseError
	var sizeErr *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return apperrors.InvalidInput("Request body cannot be empty")
	case errors.As(err, &sizeErr):
		return &apperrors.AppError{
			Code:       apperrors.CodeInvalidInput,
			Message:    fmt.Sprintf("Request body exceeds %d bytes", sizeErr.Limit),
			HTTPStatus: http.StatusRequestEntityTooLarge,
		}
	case errors.As(err, &typeErr):
		return apperrors.Validation("Invalid field type", map[string]any{
			typeErr.Field: fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type.String()),
		})
	case errors.As(err, &timeErr):
		return apperrors.Validation("Invalid date format", map[string]any{
			"error": "dates must be RFC 3339 (2024-01-31T00:00:00Z), ISO 8601 without offset (2024-01-31T00:00:00.000) or a plain date (2024-01-31)",
		})
	default:
		return apperrors.InvalidInput("Invalid request body")
	}
}

// YearMonth extracts the :year and :month route parameters.
func YearMonth(ps httprouter.Params) (int, time.Month, error) {
	yearStr := ps.ByName("year")
	monthStr := ps.ByName("month")

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 || year > 9999 {
		return 0, 0, apperrors.InvalidInput(fmt.Sprintf("invalid year parameter: %s", yearStr))
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, apperrors.InvalidInput(fmt.Sprintf("invalid month parameter: %s", monthStr))
	}

	return year, time.Month(month), nil
}

// MonthRange returns the first instant of the month and the last whole
// second of its last day, both in UTC.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}
