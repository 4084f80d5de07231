package domain

import (
	"time"

	"github.com/m04kA/Arena-BookingService/pkg/types"
)

// Club represents a sports facility listed by a partner
type Club struct {
	ID                  int64
	OwnerID             int64
	Name                string
	Location            string
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotDurationMinutes int
	PricePerHour        float64
	ContactNumber       string
	Approved            bool
	Sports              []Sport
	CreatedAt           time.Time
}

// OffersSport returns true if the club offers the given sport
func (c *Club) OffersSport(sportID int64) bool {
	for _, s := range c.Sports {
		if s.ID == sportID {
			return true
		}
	}
	return false
}

// HasValidHours returns true if the operating hours can produce slots
func (c *Club) HasValidHours() bool {
	return !c.OpenTime.IsZero() && !c.CloseTime.IsZero() &&
		c.OpenTime.IsBefore(c.CloseTime) && c.SlotDurationMinutes > 0
}

// ComputeAmount calculates the booking price for the interval [start, end).
// An end at or before the start wraps past midnight (+24h).
func (c *Club) ComputeAmount(start, end types.TimeString) (float64, error) {
	startMin, err := start.Minutes()
	if err != nil {
		return 0, err
	}
	endMin, err := end.Minutes()
	if err != nil {
		return 0, err
	}
	if endMin <= startMin {
		endMin += 24 * MinutesPerHour
	}
	hours := float64(endMin-startMin) / MinutesPerHour
	return c.PricePerHour * hours, nil
}
