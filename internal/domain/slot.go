package domain

import "github.com/m04kA/Arena-BookingService/pkg/types"

// Slot represents a bookable time interval [StartTime, EndTime) derived from
// a club's operating hours. Slots are generated on every query, never stored.
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
}
