package scheduling

import "errors"

var (
	// ErrServiceNotFound means a cart or booking line references a service
	// that no longer exists in the catalog. Fatal to the request; the caller
	// must prompt a cart correction rather than silently drop the item.
	ErrServiceNotFound = errors.New("service not found in catalog")

	// ErrScanExhausted means the day search hit its bound without finding a
	// bookable day. A normal, reportable outcome, not a fault.
	ErrScanExhausted = errors.New("no availability within scan bound")

	// ErrSessionNotFound means the schedule session is unknown or expired.
	ErrSessionNotFound = errors.New("schedule session not found or expired")

	// ErrSlotNotSelected means confirmation was attempted before a slot was
	// chosen for the session.
	ErrSlotNotSelected = errors.New("no slot selected for this session")
)
