package models

// ScheduleSession carries a customer's cart and chosen slot across the
// scheduling steps. Lives in the session cache, never in Mongo.
type ScheduleSession struct {
	SessionID     string        `json:"sessionId"`
	UserID        string        `json:"userId"`
	Items         []BookingItem `json:"items"`
	SelectedDate  string        `json:"selectedDate,omitempty"`  // "YYYY-MM-DD"
	SelectedStart int           `json:"selectedStart,omitempty"` // minutes from midnight
}
