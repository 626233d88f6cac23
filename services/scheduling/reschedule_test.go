package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homely/models"
)

func TestComputeRescheduleSlotsExcludesMovingBooking(t *testing.T) {
	cfg := testConfig()
	cfg.CategoryLimits = map[string]int{"cleaning": 1}

	moving := confirmedBooking("b-move", "basic-clean", 600)
	// The day's ledger still contains the moving booking at its old start.
	dayBookings := []models.Booking{moving}

	slots, err := ComputeRescheduleSlots(testDate, testNow(), moving, dayBookings, testCatalog(), cfg)

	require.NoError(t, err)
	assert.Contains(t, slotStarts(slots), 600, "a booking must not block its own move")
}

func TestComputeRescheduleSlotsOtherBookingsStillBlock(t *testing.T) {
	cfg := testConfig()
	cfg.CategoryLimits = map[string]int{"cleaning": 1}

	moving := confirmedBooking("b-move", "basic-clean", 600)
	dayBookings := []models.Booking{
		moving,
		confirmedBooking("b-other", "basic-clean", 660),
	}

	slots, err := ComputeRescheduleSlots(testDate, testNow(), moving, dayBookings, testCatalog(), cfg)

	require.NoError(t, err)
	starts := slotStarts(slots)
	assert.Contains(t, starts, 600)
	assert.NotContains(t, starts, 660)
}

func TestComputeRescheduleSlotsMissingServiceFails(t *testing.T) {
	moving := confirmedBooking("b-move", "retired-service", 600)

	_, err := ComputeRescheduleSlots(testDate, testNow(), moving, nil, testCatalog(), testConfig())

	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestBuildRescheduleRequirementTotalsDurations(t *testing.T) {
	booking := models.Booking{
		ID: "b1",
		Items: []models.BookingItem{
			{ServiceID: "basic-clean", Quantity: 1},
			{ServiceID: "drain-fix", Quantity: 2},
		},
	}

	req, err := BuildRescheduleRequirement(booking, testCatalog())

	require.NoError(t, err)
	assert.Equal(t, 60, req.Durations["cleaning"])
	assert.Equal(t, 90, req.Durations["plumbing"])
	// The whole booking is one contiguous job: the fit window is the total.
	assert.Equal(t, 150, req.MaxDuration)
}
