package scheduling

import (
	"context"

	availabilityRepo "homely/database/repository/availability"
	bookingRepo "homely/database/repository/booking"
	catalogRepo "homely/database/repository/catalog"
	"homely/models"
)

// SchedulingService defines the customer- and admin-facing scheduling flows.
type SchedulingService interface {
	// StartSession opens a schedule session for a cart of services.
	StartSession(ctx context.Context, userID string, items []models.BookingItem) (*models.ScheduleSession, error)
	// GetAvailableSlots computes the bookable slots for the session's cart
	// on a date. An empty result means no availability, not an error.
	GetAvailableSlots(ctx context.Context, sessionID, date string) ([]models.SlotResult, error)
	// GetNextAvailableDay finds the first day with availability at or after
	// fromDate, reporting when it advanced past the requested day or
	// exhausted the scan bound.
	GetNextAvailableDay(ctx context.Context, sessionID, fromDate string) (*models.DaySearchResult, error)
	// SelectSlot records the chosen (date, start) pair on the session.
	SelectSlot(ctx context.Context, sessionID, date string, start int) (*models.ScheduleSession, error)
	// ConfirmBooking commits the selected slot through the ledger's
	// transactional capacity check.
	ConfirmBooking(ctx context.Context, sessionID string) (*models.Booking, error)
	// CancelSession discards a session.
	CancelSession(ctx context.Context, sessionID string) error
	// RescheduleBooking moves an existing booking to a new date/start,
	// never letting the booking block its own move.
	RescheduleBooking(ctx context.Context, bookingID, date string, start int) (*models.Booking, error)
	// CancelBooking cancels a booking, freeing the capacity it occupied.
	CancelBooking(ctx context.Context, bookingID string) error
	// NextAvailableDayForCategory finds the next day with capacity for one
	// slot-interval of work in a category. Feeds the storefront badge cache;
	// an empty date means the scan bound was exhausted.
	NextAvailableDayForCategory(ctx context.Context, categoryID string) (string, error)
}

// PrecomputeEnqueuer schedules a refresh of the per-category
// next-available-day cache.
type PrecomputeEnqueuer interface {
	EnqueuePrecompute(ctx context.Context) error
}

// DefaultSchedulingService implements SchedulingService over the catalog,
// ledger and configuration repositories. All I/O happens here, before the
// pure engine is invoked.
type DefaultSchedulingService struct {
	CatalogRepo      catalogRepo.CatalogRepository
	LedgerRepo       bookingRepo.BookingRepository
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	Sessions         *SessionStore
	Precompute       PrecomputeEnqueuer
	MaxDaysToScan    int
}
