package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homely/models"
)

// fakeBookingSource serves canned bookings per date and records lookups.
type fakeBookingSource struct {
	byDate map[string][]models.Booking
	err    error
	calls  []string
}

func (f *fakeBookingSource) ListBookingsForDate(ctx context.Context, date string) ([]models.Booking, error) {
	f.calls = append(f.calls, date)
	if f.err != nil {
		return nil, f.err
	}
	return f.byDate[date], nil
}

// saturateDay fills every candidate start on a date for the test config
// (cleaning limit 2, hourly starts 9:00 through 16:00).
func saturateDay(date string) []models.Booking {
	var bookings []models.Booking
	for start := 540; start <= 960; start += 60 {
		for i := 0; i < 2; i++ {
			b := confirmedBooking("", "basic-clean", start)
			b.Date = date
			bookings = append(bookings, b)
		}
	}
	return bookings
}

func TestFindNextAvailableDayReturnsStartDateWhenOpen(t *testing.T) {
	source := &fakeBookingSource{byDate: map[string][]models.Booking{}}

	date, slots, err := FindNextAvailableDay(
		context.Background(), testDate, testNow(), cleanCart(), source, testCatalog(), testConfig(), 3)

	require.NoError(t, err)
	assert.Equal(t, testDate, date)
	assert.Len(t, slots, 8)
	assert.Equal(t, []string{testDate}, source.calls)
}

func TestFindNextAvailableDayAdvancesPastFullDays(t *testing.T) {
	// Monday through Wednesday fully booked, Thursday open.
	source := &fakeBookingSource{byDate: map[string][]models.Booking{
		"2025-06-02": saturateDay("2025-06-02"),
		"2025-06-03": saturateDay("2025-06-03"),
		"2025-06-04": saturateDay("2025-06-04"),
	}}

	date, slots, err := FindNextAvailableDay(
		context.Background(), testDate, testNow(), cleanCart(), source, testCatalog(), testConfig(), 3)

	require.NoError(t, err)
	assert.Equal(t, "2025-06-05", date)
	assert.NotEmpty(t, slots)
	assert.Len(t, source.calls, 4)
}

func TestFindNextAvailableDayExhaustsScanBound(t *testing.T) {
	source := &fakeBookingSource{byDate: map[string][]models.Booking{
		"2025-06-02": saturateDay("2025-06-02"),
		"2025-06-03": saturateDay("2025-06-03"),
		"2025-06-04": saturateDay("2025-06-04"),
		"2025-06-05": saturateDay("2025-06-05"),
	}}

	date, slots, err := FindNextAvailableDay(
		context.Background(), testDate, testNow(), cleanCart(), source, testCatalog(), testConfig(), 3)

	require.ErrorIs(t, err, ErrScanExhausted)
	assert.Empty(t, date)
	assert.Nil(t, slots)
	// Start day plus three advances, then stop.
	assert.Len(t, source.calls, 4)
}

func TestFindNextAvailableDaySkipsDisabledWeekdays(t *testing.T) {
	// Saturday start: the weekend has no windows, Monday is the first hit.
	source := &fakeBookingSource{byDate: map[string][]models.Booking{}}

	date, slots, err := FindNextAvailableDay(
		context.Background(), "2025-06-07", testNow(), cleanCart(), source, testCatalog(), testConfig(), 5)

	require.NoError(t, err)
	assert.Equal(t, "2025-06-09", date)
	assert.NotEmpty(t, slots)
}

func TestFindNextAvailableDayPropagatesSourceError(t *testing.T) {
	sourceErr := errors.New("ledger offline")
	source := &fakeBookingSource{err: sourceErr}

	_, _, err := FindNextAvailableDay(
		context.Background(), testDate, testNow(), cleanCart(), source, testCatalog(), testConfig(), 3)

	require.ErrorIs(t, err, sourceErr)
}

func TestFindNextAvailableDayRejectsInvalidStartDate(t *testing.T) {
	source := &fakeBookingSource{}

	_, _, err := FindNextAvailableDay(
		context.Background(), "02/06/2025", time.Now(), cleanCart(), source, testCatalog(), testConfig(), 3)

	require.Error(t, err)
	assert.Empty(t, source.calls)
}
