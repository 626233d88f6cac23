package scheduling

import (
	"math"
	"time"

	"homely/models"
	"homely/utils"
)

// ComputeSlots computes the bookable slots for a cart on a single date.
// It is a pure function over fully-resolved in-memory inputs: the caller
// prefetches the day's bookings, the catalog duration index and the
// configuration snapshot before invoking it. It never fails for valid
// inputs; a day with nothing bookable yields an empty (never nil) list.
//
// The result is ordered by increasing start time, every entry has
// RemainingCapacity >= 1, and every entry fits entirely inside the day's
// business-hour window.
func ComputeSlots(
	date string,
	now time.Time,
	cart models.CartRequirement,
	bookings []models.Booking,
	catalog map[string]models.ServiceDurationInfo,
	cfg models.SchedulingConfig,
) []models.SlotResult {
	return computeSlots(date, now, cart, bookings, catalog, cfg, "")
}

func computeSlots(
	date string,
	now time.Time,
	cart models.CartRequirement,
	bookings []models.Booking,
	catalog map[string]models.ServiceDurationInfo,
	cfg models.SchedulingConfig,
	excludeBookingID string,
) []models.SlotResult {
	results := []models.SlotResult{}

	day, err := time.ParseInLocation(utils.DateFormat, date, now.Location())
	if err != nil {
		return results
	}
	if len(cart.Durations) == 0 {
		return results
	}

	interval := cfg.Policy.SlotIntervalMinutes
	cadence := interval + cfg.Policy.BreakMinutes
	if interval <= 0 || cadence <= 0 {
		return results
	}

	window := cfg.WindowFor(day.Weekday())
	if !window.Enabled {
		return results
	}

	// One-minute margin on top of the lead time so a slot sitting exactly on
	// the boundary cannot flap in and out while "now" advances mid-request.
	earliest := now
	if cfg.Policy.LeadTimeEnabled {
		earliest = earliest.Add(time.Duration(cfg.Policy.LeadTimeHours) * time.Hour)
	}
	earliest = earliest.Add(time.Minute)

	occ := buildOccupancy(window.Start, interval, bookings, catalog, excludeBookingID)

	requiredBuckets := ceilDiv(cart.MaxDuration, interval)
	if requiredBuckets < 1 {
		requiredBuckets = 1
	}

	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	for start := window.Start; start < window.End; start += cadence {
		// The whole booking must fit inside business hours. The fit only
		// gets worse as the walk advances, so stop here.
		if start+cart.MaxDuration > window.End {
			break
		}
		if midnight.Add(time.Duration(start) * time.Minute).Before(earliest) {
			continue
		}

		base := floorDiv(start-window.Start, interval)
		remaining := math.MaxInt32
		blocked := false
		for bucket := base; bucket < base+requiredBuckets && !blocked; bucket++ {
			for categoryID := range cart.Durations {
				avail := cfg.LimitFor(categoryID) - occ.count(bucket, categoryID)
				if avail <= 0 {
					blocked = true
					break
				}
				if avail < remaining {
					remaining = avail
				}
			}
		}
		if blocked {
			continue
		}

		results = append(results, models.SlotResult{
			Start:             start,
			RemainingCapacity: remaining,
			Label:             utils.MinutesToLabel(start),
		})
	}

	return results
}
