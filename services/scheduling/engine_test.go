package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homely/models"
)

// 2025-06-02 is a Monday.
const testDate = "2025-06-02"

func testCatalog() map[string]models.ServiceDurationInfo {
	return map[string]models.ServiceDurationInfo{
		"basic-clean": {ServiceID: "basic-clean", DurationMinutes: 60, CategoryID: "cleaning"},
		"deep-clean":  {ServiceID: "deep-clean", DurationMinutes: 120, CategoryID: "cleaning"},
		"odd-clean":   {ServiceID: "odd-clean", DurationMinutes: 70, CategoryID: "cleaning"},
		"drain-fix":   {ServiceID: "drain-fix", DurationMinutes: 45, CategoryID: "plumbing"},
	}
}

// Monday to Friday, 9:00 to 17:00, hourly slots with no break.
func testConfig() models.SchedulingConfig {
	windows := make([]models.AvailabilityWindow, 0, 5)
	for wd := time.Monday; wd <= time.Friday; wd++ {
		windows = append(windows, models.AvailabilityWindow{
			Weekday: wd, Enabled: true, Start: 540, End: 1020,
		})
	}
	return models.SchedulingConfig{
		Windows: windows,
		Policy: models.SchedulingPolicy{
			SlotIntervalMinutes: 60,
			BreakMinutes:        0,
		},
		CategoryLimits: map[string]int{
			"cleaning": 2,
			"plumbing": 1,
		},
	}
}

// A point in time well before the test date so lead time never interferes.
func testNow() time.Time {
	return time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
}

func cleanCart() models.CartRequirement {
	return models.CartRequirement{
		Durations:   map[string]int{"cleaning": 60},
		MaxDuration: 60,
	}
}

func confirmedBooking(id, serviceID string, start int) models.Booking {
	return models.Booking{
		ID:     id,
		Date:   testDate,
		Start:  start,
		Items:  []models.BookingItem{{ServiceID: serviceID, Quantity: 1}},
		Status: models.BookingStatusConfirmed,
	}
}

func slotStarts(slots []models.SlotResult) []int {
	starts := make([]int, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.Start)
	}
	return starts
}

func TestComputeSlotsEmptyDay(t *testing.T) {
	slots := ComputeSlots(testDate, testNow(), cleanCart(), nil, testCatalog(), testConfig())

	require.Len(t, slots, 8)
	assert.Equal(t, []int{540, 600, 660, 720, 780, 840, 900, 960}, slotStarts(slots))
	for _, s := range slots {
		assert.Equal(t, 2, s.RemainingCapacity)
	}
	assert.Equal(t, "9:00 AM", slots[0].Label)
}

func TestComputeSlotsCadenceIncludesBreak(t *testing.T) {
	cfg := testConfig()
	cfg.Policy.BreakMinutes = 30

	// Candidates step at interval + break: 90 minutes apart from 9:00.
	slots := ComputeSlots(testDate, testNow(), cleanCart(), nil, testCatalog(), cfg)

	assert.Equal(t, []int{540, 630, 720, 810, 900}, slotStarts(slots))
	for _, s := range slots {
		assert.Equal(t, 2, s.RemainingCapacity)
	}
}

func TestComputeSlotsOffCadenceBookingBlocksSharedBucket(t *testing.T) {
	cfg := testConfig()
	cfg.Policy.BreakMinutes = 30
	cfg.CategoryLimits = map[string]int{"cleaning": 1}

	// A 10:00 booking written off the 90-minute cadence lands in the bucket
	// covering 10:00-11:00, which the 10:30 candidate also occupies.
	bookings := []models.Booking{confirmedBooking("b1", "basic-clean", 600)}

	slots := ComputeSlots(testDate, testNow(), cleanCart(), bookings, testCatalog(), cfg)

	assert.Equal(t, []int{540, 720, 810, 900}, slotStarts(slots))
}

func TestComputeSlotsCountsOverlappingBookings(t *testing.T) {
	bookings := []models.Booking{confirmedBooking("b1", "basic-clean", 600)}

	slots := ComputeSlots(testDate, testNow(), cleanCart(), bookings, testCatalog(), testConfig())

	require.Len(t, slots, 8)
	for _, s := range slots {
		if s.Start == 600 {
			assert.Equal(t, 1, s.RemainingCapacity)
		} else {
			assert.Equal(t, 2, s.RemainingCapacity)
		}
	}
}

func TestComputeSlotsDropsSaturatedSlot(t *testing.T) {
	bookings := []models.Booking{
		confirmedBooking("b1", "basic-clean", 600),
		confirmedBooking("b2", "basic-clean", 600),
	}

	slots := ComputeSlots(testDate, testNow(), cleanCart(), bookings, testCatalog(), testConfig())

	assert.NotContains(t, slotStarts(slots), 600)
	assert.Len(t, slots, 7)
	for _, s := range slots {
		assert.GreaterOrEqual(t, s.RemainingCapacity, 1)
	}
}

func TestComputeSlotsLongBookingSpansMultipleBuckets(t *testing.T) {
	// A 120-minute booking at 10:00 occupies the 10:00 and 11:00 buckets.
	bookings := []models.Booking{confirmedBooking("b1", "deep-clean", 600)}

	slots := ComputeSlots(testDate, testNow(), cleanCart(), bookings, testCatalog(), testConfig())

	for _, s := range slots {
		if s.Start == 600 || s.Start == 660 {
			assert.Equal(t, 1, s.RemainingCapacity, "start %d", s.Start)
		} else {
			assert.Equal(t, 2, s.RemainingCapacity, "start %d", s.Start)
		}
	}
}

func TestComputeSlotsNonAlignedDurationRoundsUp(t *testing.T) {
	// 70 minutes is more than one 60-minute bucket, so it must claim two.
	bookings := []models.Booking{confirmedBooking("b1", "odd-clean", 540)}

	slots := ComputeSlots(testDate, testNow(), cleanCart(), bookings, testCatalog(), testConfig())

	for _, s := range slots {
		if s.Start == 540 || s.Start == 600 {
			assert.Equal(t, 1, s.RemainingCapacity, "start %d", s.Start)
		} else {
			assert.Equal(t, 2, s.RemainingCapacity, "start %d", s.Start)
		}
	}
}

func TestComputeSlotsQuantityExtendsSpan(t *testing.T) {
	booking := confirmedBooking("b1", "basic-clean", 540)
	booking.Items[0].Quantity = 2

	slots := ComputeSlots(testDate, testNow(), cleanCart(), []models.Booking{booking}, testCatalog(), testConfig())

	for _, s := range slots {
		if s.Start == 540 || s.Start == 600 {
			assert.Equal(t, 1, s.RemainingCapacity, "start %d", s.Start)
		} else {
			assert.Equal(t, 2, s.RemainingCapacity, "start %d", s.Start)
		}
	}
}

func TestComputeSlotsIgnoresCancelledBookings(t *testing.T) {
	booking := confirmedBooking("b1", "basic-clean", 600)
	booking.Status = models.BookingStatusCancelled

	slots := ComputeSlots(testDate, testNow(), cleanCart(), []models.Booking{booking}, testCatalog(), testConfig())

	for _, s := range slots {
		assert.Equal(t, 2, s.RemainingCapacity)
	}
}

func TestComputeSlotsSkipsStaleLedgerItems(t *testing.T) {
	// A booking whose service was removed from the catalog must not block
	// the day; it simply contributes nothing.
	bookings := []models.Booking{confirmedBooking("b1", "retired-service", 600)}

	slots := ComputeSlots(testDate, testNow(), cleanCart(), bookings, testCatalog(), testConfig())

	require.Len(t, slots, 8)
	for _, s := range slots {
		assert.Equal(t, 2, s.RemainingCapacity)
	}
}

func TestComputeSlotsMultiCategoryCart(t *testing.T) {
	cart := models.CartRequirement{
		Durations:   map[string]int{"cleaning": 60, "plumbing": 45},
		MaxDuration: 60,
	}
	// Plumbing has a limit of 1, so a plumbing booking at 9:00 blocks 9:00.
	bookings := []models.Booking{confirmedBooking("b1", "drain-fix", 540)}

	slots := ComputeSlots(testDate, testNow(), cart, bookings, testCatalog(), testConfig())

	starts := slotStarts(slots)
	assert.NotContains(t, starts, 540)
	require.Contains(t, starts, 600)
	for _, s := range slots {
		// The tighter plumbing limit caps the reported capacity.
		assert.Equal(t, 1, s.RemainingCapacity)
	}
}

func TestComputeSlotsLeadTime(t *testing.T) {
	cfg := testConfig()
	cfg.Policy.LeadTimeEnabled = true
	cfg.Policy.LeadTimeHours = 4

	// 7:59 + 4h lead + 1m margin = 12:00, so the noon slot survives.
	now := time.Date(2025, 6, 2, 7, 59, 0, 0, time.UTC)
	slots := ComputeSlots(testDate, now, cleanCart(), nil, testCatalog(), cfg)

	assert.Equal(t, []int{720, 780, 840, 900, 960}, slotStarts(slots))
}

func TestComputeSlotsLeadTimeMarginExcludesBoundary(t *testing.T) {
	cfg := testConfig()
	cfg.Policy.LeadTimeEnabled = true
	cfg.Policy.LeadTimeHours = 4

	// At exactly 8:00 the margin pushes the cutoff past noon.
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	slots := ComputeSlots(testDate, now, cleanCart(), nil, testCatalog(), cfg)

	assert.Equal(t, []int{780, 840, 900, 960}, slotStarts(slots))
}

func TestComputeSlotsDisabledWeekday(t *testing.T) {
	// 2025-06-01 is a Sunday, which has no configured window.
	slots := ComputeSlots("2025-06-01", testNow(), cleanCart(), nil, testCatalog(), testConfig())

	require.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestComputeSlotsMalformedWindow(t *testing.T) {
	cfg := testConfig()
	cfg.Windows = []models.AvailabilityWindow{
		{Weekday: time.Monday, Enabled: true, Start: 600, End: 600},
	}

	slots := ComputeSlots(testDate, testNow(), cleanCart(), nil, testCatalog(), cfg)

	require.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestComputeSlotsBookingMustFitWindow(t *testing.T) {
	// A 2-hour job cannot start at 16:00 when the day ends at 17:00.
	cart := models.CartRequirement{
		Durations:   map[string]int{"cleaning": 120},
		MaxDuration: 120,
	}

	slots := ComputeSlots(testDate, testNow(), cart, nil, testCatalog(), testConfig())

	starts := slotStarts(slots)
	require.NotEmpty(t, starts)
	assert.Equal(t, 900, starts[len(starts)-1])
	for _, start := range starts {
		assert.LessOrEqual(t, start+cart.MaxDuration, 1020)
	}
}

func TestComputeSlotsDeterministicAndOrdered(t *testing.T) {
	bookings := []models.Booking{
		confirmedBooking("b1", "deep-clean", 600),
		confirmedBooking("b2", "basic-clean", 780),
	}

	first := ComputeSlots(testDate, testNow(), cleanCart(), bookings, testCatalog(), testConfig())
	second := ComputeSlots(testDate, testNow(), cleanCart(), bookings, testCatalog(), testConfig())

	assert.Equal(t, first, second)
	for i := 1; i < len(first); i++ {
		assert.Greater(t, first[i].Start, first[i-1].Start)
	}
}

func TestComputeSlotsInvalidInputsYieldEmpty(t *testing.T) {
	cfg := testConfig()

	slots := ComputeSlots("not-a-date", testNow(), cleanCart(), nil, testCatalog(), cfg)
	require.NotNil(t, slots)
	assert.Empty(t, slots)

	slots = ComputeSlots(testDate, testNow(), models.CartRequirement{}, nil, testCatalog(), cfg)
	require.NotNil(t, slots)
	assert.Empty(t, slots)

	cfg.Policy.SlotIntervalMinutes = 0
	slots = ComputeSlots(testDate, testNow(), cleanCart(), nil, testCatalog(), cfg)
	require.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestComputeSlotsDefaultCategoryLimit(t *testing.T) {
	cfg := testConfig()
	cfg.CategoryLimits = nil

	// With no configured ceiling a single booking saturates its slot.
	bookings := []models.Booking{confirmedBooking("b1", "basic-clean", 600)}
	slots := ComputeSlots(testDate, testNow(), cleanCart(), bookings, testCatalog(), cfg)

	starts := slotStarts(slots)
	assert.NotContains(t, starts, 600)
	for _, s := range slots {
		assert.Equal(t, 1, s.RemainingCapacity)
	}
}
