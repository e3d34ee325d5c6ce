package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/fleet/internal/entities"
)

func createReport(t *testing.T, router http.Handler, comment string) entities.ReportRecord {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/reports", map[string]any{"comment": comment})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[entities.ReportRecord](t, w)
}

func TestReportsController(t *testing.T) {
	router, _ := newTestRouter(t)

	report := createReport(t, router, "  broken seat  ")
	assert.Equal(t, "broken seat", report.Comment)

	t.Run("missing or blank comment", func(t *testing.T) {
		for _, body := range []any{map[string]any{"comment": "   "}, map[string]any{}, nil} {
			w := doJSON(t, router, http.MethodPost, "/api/v1/reports", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), invalidInputMessage)
		}
	})

	t.Run("too long", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/reports", map[string]any{
			"comment": "this comment is definitely longer than fifty characters",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list and get", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/reports", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []entities.ReportRecord{report}, decode[[]entities.ReportRecord](t, w))

		w = doJSON(t, router, http.MethodGet, "/api/v1/reports/missing", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("update", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/v1/reports/"+report.ID, map[string]any{"comment": "fixed seat"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "fixed seat", decode[entities.ReportRecord](t, w).Comment)

		w = doJSON(t, router, http.MethodPut, "/api/v1/reports/"+report.ID, map[string]any{"comment": " "})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), invalidInputMessage)

		w = doJSON(t, router, http.MethodPut, "/api/v1/reports/missing", map[string]any{"comment": "x"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/api/v1/reports/"+report.ID, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodDelete, "/api/v1/reports/"+report.ID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
