package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "hoteldesk/pkg/errors"
	"hoteldesk/pkg/model"
)

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		start string
		end   string
	}{
		{"leap february", 2024, time.February, "2024-02-01T00:00:00Z", "2024-02-29T23:59:59Z"},
		{"common february", 2023, time.February, "2023-02-01T00:00:00Z", "2023-02-28T23:59:59Z"},
		{"december rolls year", 2024, time.December, "2024-12-01T00:00:00Z", "2024-12-31T23:59:59Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthRange(tt.year, tt.month)
			assert.Equal(t, tt.start, start.Format(time.RFC3339))
			assert.Equal(t, tt.end, end.Format(time.RFC3339))
		})
	}
}

func TestYearMonth(t *testing.T) {
	tests := []struct {
		name    string
		year    string
		month   string
		wantErr bool
	}{
		{"valid", "2024", "2", false},
		{"zero padded month", "2024", "02", false},
		{"month out of range", "2024", "13", true},
		{"month zero", "2024", "0", true},
		{"alphabetic year", "abcd", "2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := httprouter.Params{{Key: "year", Value: tt.year}, {Key: "month", Value: tt.month}}
			year, month, err := YearMonth(ps)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, apperrors.AsAppError(err).StatusCode())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2024, year)
			assert.Equal(t, time.February, month)
		})
	}
}

func TestDecodeBody(t *testing.T) {
	type payload struct {
		Amount *float64         `json:"amount"`
		Date   *model.Timestamp `json:"date"`
	}

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"valid", `{"amount": 12.5, "date": "2024-02-10T00:00:00Z"}`, ""},
		{"plain date", `{"date": "2024-02-10"}`, ""},
		{"date without offset", `{"date": "2024-02-10T00:00:00.000"}`, ""},
		{"empty body", ``, apperrors.CodeInvalidInput},
		{"malformed json", `{"amount": `, apperrors.CodeInvalidInput},
		{"wrong type", `{"amount": "twelve"}`, apperrors.CodeValidation},
		{"bad date", `{"date": "10/02/2024"}`, apperrors.CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var p payload
			err := DecodeBody(req, &p)
			if tt.wantCode == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperrors.AsAppError(err).Code)
		})
	}
}

func TestWriteError_HidesInternalCause(t *testing.T) {
	w := httptest.NewRecorder()

	require.NoError(t, WriteError(w, apperrors.Internal("Failed to list expenses", assert.AnError)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Failed to list expenses"`)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
