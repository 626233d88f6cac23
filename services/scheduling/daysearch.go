package scheduling

import (
	"context"
	"fmt"
	"time"

	"homely/models"
	"homely/utils"
)

// BookingSource supplies a day's bookings to the day search. Satisfied by
// the booking ledger repository.
type BookingSource interface {
	ListBookingsForDate(ctx context.Context, date string) ([]models.Booking, error)
}

// FindNextAvailableDay runs the engine for startDate and, when that day has
// nothing, advances one calendar day at a time (re-fetching that day's
// bookings) until a day with availability is found or maxDaysToScan
// advances have been tried. The bound keeps a permanently saturated
// category or indefinitely disabled business hours from turning into an
// unbounded scan; hitting it returns ErrScanExhausted, a normal outcome the
// caller reports distinctly from an empty day.
func FindNextAvailableDay(
	ctx context.Context,
	startDate string,
	now time.Time,
	cart models.CartRequirement,
	source BookingSource,
	catalog map[string]models.ServiceDurationInfo,
	cfg models.SchedulingConfig,
	maxDaysToScan int,
) (string, []models.SlotResult, error) {
	start, err := time.ParseInLocation(utils.DateFormat, startDate, now.Location())
	if err != nil {
		return "", nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}

	for offset := 0; offset <= maxDaysToScan; offset++ {
		date := start.AddDate(0, 0, offset).Format(utils.DateFormat)

		bookings, err := source.ListBookingsForDate(ctx, date)
		if err != nil {
			return "", nil, fmt.Errorf("failed to list bookings for %s: %w", date, err)
		}

		slots := ComputeSlots(date, now, cart, bookings, catalog, cfg)
		if len(slots) > 0 {
			return date, slots, nil
		}
	}

	return "", nil, ErrScanExhausted
}
