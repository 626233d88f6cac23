package models

import "time"

// Booking statuses. Cancelled bookings release their capacity.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// BookingItem is one service line on a booking.
type BookingItem struct {
	ServiceID string `bson:"service_id" json:"serviceId"`
	Quantity  int    `bson:"quantity" json:"quantity"`
}

// Booking represents a confirmed booking record.
type Booking struct {
	ID        string        `bson:"id" json:"id"`                 // Unique booking identifier (UUID)
	UserID    string        `bson:"user_id" json:"userId"`        // Customer who made the booking
	Date      string        `bson:"date" json:"date"`             // Booking date in "YYYY-MM-DD" format
	Start     int           `bson:"start" json:"start"`           // Start time (minutes from midnight)
	Items     []BookingItem `bson:"items" json:"items"`           // Booked service lines
	Status    string        `bson:"status" json:"status"`         // "confirmed" or "cancelled"
	CreatedAt time.Time     `bson:"created_at" json:"createdAt"`  // Timestamp when booking was created
	UpdatedAt time.Time     `bson:"updated_at" json:"updatedAt"`  // Timestamp of last change (e.g., reschedule)
}
