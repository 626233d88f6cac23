package scheduling

import (
	"fmt"
	"time"

	"homely/models"
)

// BuildRescheduleRequirement derives the capacity requirement for moving an
// existing booking. Unlike a fresh cart there is no duration packing across
// items: the booking's total duration is the single representative window
// it must fit inside, while category totals still drive the concurrency
// checks. Every line must still resolve in the catalog.
func BuildRescheduleRequirement(
	booking models.Booking,
	catalog map[string]models.ServiceDurationInfo,
) (models.CartRequirement, error) {
	req := models.CartRequirement{
		Durations: make(map[string]int),
	}

	total := 0
	for _, item := range booking.Items {
		info, ok := catalog[item.ServiceID]
		if !ok {
			return models.CartRequirement{}, fmt.Errorf("%w: %s", ErrServiceNotFound, item.ServiceID)
		}
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		required := info.DurationMinutes * qty
		req.Durations[info.CategoryID] += required
		total += required
	}
	req.MaxDuration = total

	return req, nil
}

// ComputeRescheduleSlots computes the bookable slots for moving a booking to
// a new date. It applies the same weekly-availability, lead-time and
// per-category concurrency rules as ComputeSlots, but excludes the booking
// being moved from occupancy on the target day: a booking must never block
// its own move.
func ComputeRescheduleSlots(
	date string,
	now time.Time,
	moving models.Booking,
	dayBookings []models.Booking,
	catalog map[string]models.ServiceDurationInfo,
	cfg models.SchedulingConfig,
) ([]models.SlotResult, error) {
	req, err := BuildRescheduleRequirement(moving, catalog)
	if err != nil {
		return nil, err
	}
	return computeSlots(date, now, req, dayBookings, catalog, cfg, moving.ID), nil
}
