package scheduling

import (
	"homely/models"
)

// occupancyMap tracks, per slot-aligned bucket, how many existing bookings
// occupy each category. Built fresh per engine invocation and discarded
// with it; never persisted.
type occupancyMap map[int]map[string]int

func (o occupancyMap) count(bucket int, categoryID string) int {
	if cats, ok := o[bucket]; ok {
		return cats[categoryID]
	}
	return 0
}

func (o occupancyMap) add(bucket int, categoryID string) {
	cats, ok := o[bucket]
	if !ok {
		cats = make(map[string]int)
		o[bucket] = cats
	}
	cats[categoryID]++
}

// buildOccupancy attributes every existing booking on the day to the buckets
// it spans. A booking's span is ceil(totalDuration / interval) buckets
// (minimum 1), and each spanned bucket is incremented once per category the
// booking touches: concurrency is tracked per category, not globally.
//
// Line items whose service no longer resolves in the catalog contribute
// nothing; a booking with no resolvable items is skipped entirely rather
// than blocking the day. Cancelled bookings never occupy capacity, and the
// booking identified by excludeBookingID is ignored so a reschedule cannot
// be blocked by the booking being moved.
func buildOccupancy(
	windowStart, interval int,
	bookings []models.Booking,
	catalog map[string]models.ServiceDurationInfo,
	excludeBookingID string,
) occupancyMap {
	occ := make(occupancyMap)

	for _, b := range bookings {
		if b.Status == models.BookingStatusCancelled {
			continue
		}
		if excludeBookingID != "" && b.ID == excludeBookingID {
			continue
		}

		total := 0
		categories := make(map[string]struct{})
		for _, item := range b.Items {
			info, ok := catalog[item.ServiceID]
			if !ok {
				continue
			}
			qty := item.Quantity
			if qty < 1 {
				qty = 1
			}
			total += info.DurationMinutes * qty
			categories[info.CategoryID] = struct{}{}
		}
		if len(categories) == 0 {
			continue
		}

		base := floorDiv(b.Start-windowStart, interval)
		span := ceilDiv(total, interval)
		if span < 1 {
			span = 1
		}

		for bucket := base; bucket < base+span; bucket++ {
			for categoryID := range categories {
				occ.add(bucket, categoryID)
			}
		}
	}

	return occ
}

// floorDiv divides rounding toward negative infinity, so bookings that start
// before the window still land in the bucket covering their start minute.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
