package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayStart(t *testing.T) {
	ts := time.Date(2025, 3, 15, 17, 42, 9, 123, time.Local)
	got := DayStart(ts)

	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local), got)
	assert.Equal(t, ts.Location(), got.Location())
}

func TestIsSameDay(t *testing.T) {
	morning := time.Date(2025, 3, 15, 0, 0, 1, 0, time.Local)
	night := time.Date(2025, 3, 15, 23, 59, 59, 0, time.Local)
	nextDay := time.Date(2025, 3, 16, 0, 0, 0, 0, time.Local)

	assert.True(t, IsSameDay(morning, night))
	assert.False(t, IsSameDay(night, nextDay))
}

func TestIsYesterday(t *testing.T) {
	day := time.Date(2025, 3, 15, 22, 0, 0, 0, time.Local)
	next := time.Date(2025, 3, 16, 1, 0, 0, 0, time.Local)
	twoLater := time.Date(2025, 3, 17, 1, 0, 0, 0, time.Local)

	assert.True(t, IsYesterday(day, next))
	assert.False(t, IsYesterday(day, twoLater))
	assert.False(t, IsYesterday(next, day))
	assert.False(t, IsYesterday(day, day))
}

func TestIsYesterdayAcrossMonthBoundary(t *testing.T) {
	endOfMonth := time.Date(2025, 1, 31, 12, 0, 0, 0, time.Local)
	startOfNext := time.Date(2025, 2, 1, 8, 0, 0, 0, time.Local)

	assert.True(t, IsYesterday(endOfMonth, startOfNext))
}

func TestIsCompactTime(t *testing.T) {
	assert.True(t, IsCompactTime("20250101T090000Z"))
	assert.True(t, IsCompactTime("20240501T090000"))

	assert.False(t, IsCompactTime(""))
	assert.False(t, IsCompactTime("2025-01-01T09:00:00Z"))
	assert.False(t, IsCompactTime("tomorrow at 9"))
	assert.False(t, IsCompactTime("20251301T090000Z"))
}
