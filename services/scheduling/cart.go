package scheduling

import (
	"fmt"

	"homely/models"
)

// BuildCartRequirement aggregates a cart's service lines into per-category
// duration totals plus the largest single-item requirement, which sizes the
// window a booking must fit inside. Every line must resolve in the catalog;
// a missing service aborts the request so the caller can prompt a cart
// correction instead of quietly dropping the item.
func BuildCartRequirement(
	items []models.BookingItem,
	catalog map[string]models.ServiceDurationInfo,
) (models.CartRequirement, error) {
	req := models.CartRequirement{
		Durations: make(map[string]int),
	}

	for _, item := range items {
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
		if required > req.MaxDuration {
			req.MaxDuration = required
		}
	}

	return req, nil
}
