package models

// CartRequirement aggregates a cart's demand per category, plus the largest
// single requirement used to size the window a booking must fit inside.
// Built once per scheduling request and read-only afterwards.
type CartRequirement struct {
	Durations   map[string]int `json:"durations"`   // categoryID -> total required minutes
	MaxDuration int            `json:"maxDuration"` // largest per-item requirement in minutes
}

// SlotResult is one bookable slot with the capacity left across every
// category the requesting cart touches.
type SlotResult struct {
	Start             int    `json:"start"` // minutes from midnight
	RemainingCapacity int    `json:"remainingCapacity"`
	Label             string `json:"label"` // e.g., "9:00 AM"
}

// DaySearchResult is the outcome of scanning forward for the first day
// with availability.
type DaySearchResult struct {
	Date          string       `json:"date"`
	Slots         []SlotResult `json:"slots"`
	AdvancedFrom  string       `json:"advancedFrom,omitempty"`  // set when the requested day had nothing
	ScanExhausted bool         `json:"scanExhausted,omitempty"` // scan bound hit without a hit
}
