package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/fleet/internal/entities"
)

func TestReportService_Create(t *testing.T) {
	f := New()

	t.Run("comment is trimmed", func(t *testing.T) {
		report, err := f.Reports.Create("  broken heater  ")
		require.NoError(t, err)
		assert.Equal(t, "broken heater", report.Comment)

		found, ok := f.Reports.Get(report.ID)
		require.True(t, ok)
		assert.Equal(t, report, found)
	})

	t.Run("blank comment creates nothing", func(t *testing.T) {
		report, err := f.Reports.Create("    ")
		assert.Nil(t, report)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})

	t.Run("fifty characters succeed", func(t *testing.T) {
		_, err := f.Reports.Create(strings.Repeat("c", 50))
		assert.NoError(t, err)
	})

	t.Run("fifty one characters fail validation", func(t *testing.T) {
		_, err := f.Reports.Create(strings.Repeat("c", 51))
		var vErr *entities.ValidationError
		assert.True(t, errors.As(err, &vErr))
	})

	assert.Len(t, f.Reports.GetAll(), 2)
}

func TestReportService_UpdateDelete(t *testing.T) {
	f := New()
	report, err := f.Reports.Create("old")
	require.NoError(t, err)

	updated, err := f.Reports.Update(report.ID, entities.ReportUpdate{Comment: ptr(" new ")})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Comment)

	_, err = f.Reports.Update(report.ID, entities.ReportUpdate{Comment: ptr(" ")})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = f.Reports.Update("missing", entities.ReportUpdate{Comment: ptr("x")})
	assert.True(t, errors.Is(err, ErrNotFound))

	removed, ok := f.Reports.Delete(report.ID)
	require.True(t, ok)
	assert.Equal(t, "new", removed.Comment)

	_, ok = f.Reports.Delete(report.ID)
	assert.False(t, ok)
}
