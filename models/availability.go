package models

import "time"

// AvailabilityWindow holds the business hours for one day of the week.
// If Enabled is false no slots exist for that weekday, whatever else is set.
type AvailabilityWindow struct {
	Weekday time.Weekday `bson:"weekday" json:"weekday"`
	Enabled bool         `bson:"enabled" json:"enabled"`
	Start   int          `bson:"start" json:"start"` // minutes from midnight (e.g., 540 for 9:00 AM)
	End     int          `bson:"end" json:"end"`     // minutes from midnight (e.g., 1080 for 6:00 PM)
}

// SchedulingPolicy controls slot cadence and lead time.
// SlotIntervalMinutes + BreakMinutes is the spacing between candidate starts.
type SchedulingPolicy struct {
	SlotIntervalMinutes int  `bson:"slot_interval_minutes" json:"slotIntervalMinutes"`
	BreakMinutes        int  `bson:"break_minutes" json:"breakMinutes"`
	LeadTimeEnabled     bool `bson:"lead_time_enabled" json:"leadTimeEnabled"`
	LeadTimeHours       int  `bson:"lead_time_hours" json:"leadTimeHours"`
}

// SchedulingConfig is the immutable configuration snapshot read once per
// scheduling request: weekly windows, cadence policy and per-category
// concurrency ceilings.
type SchedulingConfig struct {
	Windows        []AvailabilityWindow `bson:"windows" json:"windows"`
	Policy         SchedulingPolicy     `bson:"policy" json:"policy"`
	CategoryLimits map[string]int       `bson:"category_limits" json:"categoryLimits"`
	UpdatedAt      time.Time            `bson:"updated_at" json:"updatedAt"`
}

// DefaultCategoryLimit applies when a category has no explicit ceiling.
const DefaultCategoryLimit = 1

// WindowFor returns the availability window for the given weekday.
// A weekday with no configured window is treated as disabled.
func (c *SchedulingConfig) WindowFor(day time.Weekday) AvailabilityWindow {
	for _, w := range c.Windows {
		if w.Weekday == day {
			return w
		}
	}
	return AvailabilityWindow{Weekday: day, Enabled: false}
}

// LimitFor returns the concurrency ceiling for a category.
func (c *SchedulingConfig) LimitFor(categoryID string) int {
	if limit, ok := c.CategoryLimits[categoryID]; ok && limit >= 1 {
		return limit
	}
	return DefaultCategoryLimit
}
