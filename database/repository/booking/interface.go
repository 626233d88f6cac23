package bookingRepo

import (
	"context"
	"errors"

	"homely/models"
)

var (
	// ErrBookingNotFound is returned when a booking id does not resolve.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrSlotTaken is returned by the validated write paths when the
	// commit-time capacity check fails: another customer won the slot
	// between display and confirmation.
	ErrSlotTaken = errors.New("slot no longer available")
)

// ValidateFn re-runs the capacity rule against the day's bookings as seen
// inside the write transaction. Returning an error aborts the write.
type ValidateFn func(existing []models.Booking) error

// BookingRepository is the booking ledger contract. Reads feed the
// scheduler; writes go through a transactional capacity re-check so that
// the advisory availability shown at display time is enforced again at
// commit time.
type BookingRepository interface {
	// ListBookingsForDate returns all confirmed bookings whose date equals the given date.
	ListBookingsForDate(ctx context.Context, date string) ([]models.Booking, error)
	// GetByID retrieves a booking by its unique id.
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	// CreateBookingValidated inserts the booking after validate passes
	// against the target day's bookings, all inside one transaction.
	CreateBookingValidated(ctx context.Context, booking *models.Booking, validate ValidateFn) error
	// UpdateBookingScheduleValidated moves a booking to a new date/start
	// under the same transactional check. The moved booking itself is part
	// of the slice handed to validate; excluding it is the validator's job.
	UpdateBookingScheduleValidated(ctx context.Context, bookingID, date string, start int, validate ValidateFn) error
	// CancelBooking marks a booking cancelled, releasing its capacity.
	CancelBooking(ctx context.Context, bookingID string) error
}
