// File: utils/constants.go
package utils

import "time"

// ScheduleSessionPrefix is the prefix used for Redis schedule-session keys.
const ScheduleSessionPrefix = "schedsess:"

// NextAvailableDayPrefix is the prefix for cached next-available-day lookups.
const NextAvailableDayPrefix = "nextday:"

// NextAvailableDayTTL is the time-to-live for cached next-available-day entries.
const NextAvailableDayTTL = 6 * time.Hour

// DateFormat is the canonical wire/storage format for booking dates.
const DateFormat = "2006-01-02"
