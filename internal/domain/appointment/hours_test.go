package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashugithubb/BookSaloon-Backend/internal/models"
)

func TestDayWindow(t *testing.T) {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	t.Run("open day", func(t *testing.T) {
		h := &models.BusinessHour{IsOpen: true, StartTime: "09:00", EndTime: "18:00"}

		open, close, ok := DayWindow(h, date)
		require.True(t, ok)
		assert.True(t, open.Equal(date.Add(9*time.Hour)))
		assert.True(t, close.Equal(date.Add(18*time.Hour)))
	})

	t.Run("closed day", func(t *testing.T) {
		h := &models.BusinessHour{IsOpen: false, StartTime: "09:00", EndTime: "18:00"}
		_, _, ok := DayWindow(h, date)
		assert.False(t, ok)
	})

	t.Run("missing row", func(t *testing.T) {
		_, _, ok := DayWindow(nil, date)
		assert.False(t, ok)
	})

	t.Run("garbage times", func(t *testing.T) {
		h := &models.BusinessHour{IsOpen: true, StartTime: "morning", EndTime: "18:00"}
		_, _, ok := DayWindow(h, date)
		assert.False(t, ok)
	})

	t.Run("inverted window", func(t *testing.T) {
		h := &models.BusinessHour{IsOpen: true, StartTime: "18:00", EndTime: "09:00"}
		_, _, ok := DayWindow(h, date)
		assert.False(t, ok)
	})
}

func TestWithinWindow(t *testing.T) {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	h := &models.BusinessHour{IsOpen: true, StartTime: "09:00", EndTime: "18:00"}

	assert.True(t, WithinWindow(h, date.Add(9*time.Hour), date.Add(10*time.Hour)))
	assert.True(t, WithinWindow(h, date.Add(17*time.Hour+30*time.Minute), date.Add(18*time.Hour)))
	assert.False(t, WithinWindow(h, date.Add(8*time.Hour+30*time.Minute), date.Add(9*time.Hour+30*time.Minute)))
	assert.False(t, WithinWindow(h, date.Add(17*time.Hour+30*time.Minute), date.Add(18*time.Hour+30*time.Minute)))
	assert.False(t, WithinWindow(nil, date.Add(9*time.Hour), date.Add(10*time.Hour)))
}
