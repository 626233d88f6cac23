package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "homely/database/repository/booking"
	catalogRepo "homely/database/repository/catalog"
	"homely/models"
	"homely/utils"
)

// schedulingInputs is the prefetched, immutable input set for one request:
// one read each for the catalog index and the configuration snapshot.
type schedulingInputs struct {
	catalog map[string]models.ServiceDurationInfo
	cfg     models.SchedulingConfig
}

func (s *DefaultSchedulingService) loadInputs(ctx context.Context) (*schedulingInputs, error) {
	cfg, err := s.AvailabilityRepo.GetSchedulingConfiguration(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := s.CatalogRepo.GetAllServiceDurationInfos(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog duration index: %w", err)
	}
	return &schedulingInputs{catalog: catalog, cfg: *cfg}, nil
}

func (s *DefaultSchedulingService) StartSession(ctx context.Context, userID string, items []models.BookingItem) (*models.ScheduleSession, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("at least one cart item is required")
	}

	// Fail fast on stale cart items before the customer picks a date.
	for _, item := range items {
		if _, err := s.CatalogRepo.GetServiceDurationInfo(ctx, item.ServiceID); err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, item.ServiceID)
			}
			return nil, err
		}
	}

	session := &models.ScheduleSession{
		SessionID: uuid.New().String(),
		UserID:    userID,
		Items:     items,
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultSchedulingService) GetAvailableSlots(ctx context.Context, sessionID, date string) ([]models.SlotResult, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	inputs, err := s.loadInputs(ctx)
	if err != nil {
		return nil, err
	}
	cart, err := BuildCartRequirement(session.Items, inputs.catalog)
	if err != nil {
		return nil, err
	}
	bookings, err := s.LedgerRepo.ListBookingsForDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}

	return ComputeSlots(date, time.Now(), cart, bookings, inputs.catalog, inputs.cfg), nil
}

func (s *DefaultSchedulingService) GetNextAvailableDay(ctx context.Context, sessionID, fromDate string) (*models.DaySearchResult, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	inputs, err := s.loadInputs(ctx)
	if err != nil {
		return nil, err
	}
	cart, err := BuildCartRequirement(session.Items, inputs.catalog)
	if err != nil {
		return nil, err
	}

	date, slots, err := FindNextAvailableDay(ctx, fromDate, time.Now(), cart, s.LedgerRepo, inputs.catalog, inputs.cfg, s.MaxDaysToScan)
	if err != nil {
		if errors.Is(err, ErrScanExhausted) {
			return &models.DaySearchResult{ScanExhausted: true}, nil
		}
		return nil, err
	}

	result := &models.DaySearchResult{Date: date, Slots: slots}
	if date != fromDate {
		// The caller must be able to tell the customer the day moved.
		result.AdvancedFrom = fromDate
	}
	return result, nil
}

func (s *DefaultSchedulingService) SelectSlot(ctx context.Context, sessionID, date string, start int) (*models.ScheduleSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := time.Parse(utils.DateFormat, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	session.SelectedDate = date
	session.SelectedStart = start
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultSchedulingService) ConfirmBooking(ctx context.Context, sessionID string) (*models.Booking, error) {
	logger := utils.GetLogger()

	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.SelectedDate == "" {
		return nil, ErrSlotNotSelected
	}

	inputs, err := s.loadInputs(ctx)
	if err != nil {
		return nil, err
	}
	cart, err := BuildCartRequirement(session.Items, inputs.catalog)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &models.Booking{
		ID:        uuid.New().String(),
		UserID:    session.UserID,
		Date:      session.SelectedDate,
		Start:     session.SelectedStart,
		Items:     session.Items,
		Status:    models.BookingStatusConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Whatever was displayed is advisory; the ledger re-checks capacity
	// against the bookings visible inside the write transaction.
	validate := func(existing []models.Booking) error {
		slots := ComputeSlots(booking.Date, time.Now(), cart, existing, inputs.catalog, inputs.cfg)
		for _, slot := range slots {
			if slot.Start == booking.Start {
				return nil
			}
		}
		return bookingRepo.ErrSlotTaken
	}
	if err := s.LedgerRepo.CreateBookingValidated(ctx, booking, validate); err != nil {
		return nil, err
	}

	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		logger.Warn("failed to discard schedule session after confirmation",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
	s.refreshPrecompute(ctx)

	return booking, nil
}

func (s *DefaultSchedulingService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

func (s *DefaultSchedulingService) RescheduleBooking(ctx context.Context, bookingID, date string, start int) (*models.Booking, error) {
	booking, err := s.LedgerRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	inputs, err := s.loadInputs(ctx)
	if err != nil {
		return nil, err
	}

	validate := func(existing []models.Booking) error {
		slots, err := ComputeRescheduleSlots(date, time.Now(), *booking, existing, inputs.catalog, inputs.cfg)
		if err != nil {
			return err
		}
		for _, slot := range slots {
			if slot.Start == start {
				return nil
			}
		}
		return bookingRepo.ErrSlotTaken
	}
	if err := s.LedgerRepo.UpdateBookingScheduleValidated(ctx, bookingID, date, start, validate); err != nil {
		return nil, err
	}
	s.refreshPrecompute(ctx)

	booking.Date = date
	booking.Start = start
	return booking, nil
}

func (s *DefaultSchedulingService) CancelBooking(ctx context.Context, bookingID string) error {
	if err := s.LedgerRepo.CancelBooking(ctx, bookingID); err != nil {
		return err
	}
	// Freed capacity may pull the next available day closer.
	s.refreshPrecompute(ctx)
	return nil
}

func (s *DefaultSchedulingService) NextAvailableDayForCategory(ctx context.Context, categoryID string) (string, error) {
	inputs, err := s.loadInputs(ctx)
	if err != nil {
		return "", err
	}

	// One slot-interval of work stands in for the category: the earliest
	// day a minimal job could be booked.
	interval := inputs.cfg.Policy.SlotIntervalMinutes
	cart := models.CartRequirement{
		Durations:   map[string]int{categoryID: interval},
		MaxDuration: interval,
	}

	now := time.Now()
	today := now.Format(utils.DateFormat)
	date, _, err := FindNextAvailableDay(ctx, today, now, cart, s.LedgerRepo, inputs.catalog, inputs.cfg, s.MaxDaysToScan)
	if err != nil {
		if errors.Is(err, ErrScanExhausted) {
			return "", nil
		}
		return "", err
	}
	return date, nil
}

// refreshPrecompute nudges the availability precompute worker after a write.
// Best effort: a failed enqueue only delays badge freshness.
func (s *DefaultSchedulingService) refreshPrecompute(ctx context.Context) {
	if s.Precompute == nil {
		return
	}
	if err := s.Precompute.EnqueuePrecompute(ctx); err != nil {
		utils.GetLogger().Warn("failed to enqueue availability precompute", zap.Error(err))
	}
}
