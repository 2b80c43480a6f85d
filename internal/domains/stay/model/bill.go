package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// graceSeconds of a started day are not billed as an extra night.
const graceSeconds = 3600

// Bill is the amount owed by a stay at a given instant.
type Bill struct {
	Nights      int
	NightlyRate decimal.Decimal
	RoomCost    decimal.Decimal
	Services    decimal.Decimal
	Total       decimal.Decimal
	AsOf        time.Time
}

// NightCount counts whole days since check-in and adds a night when the rest, in whole
// seconds, exceeds the grace hour. It never returns less than one.
func NightCount(checkedInAt, asOf time.Time) int {
	elapsed := asOf.Sub(checkedInAt)
	if elapsed <= 0 {
		return 1
	}

	day := 24 * time.Hour
	nights := int(elapsed / day)

	if int64((elapsed%day)/time.Second) > graceSeconds {
		nights++
	}

	return max(nights, 1)
}

func (s Stay) ComputeBill(asOf time.Time) Bill {
	nights := NightCount(s.CheckedInAt, asOf)
	roomCost := s.NightlyRate.Mul(decimal.NewFromInt(int64(nights)))

	return Bill{
		Nights:      nights,
		NightlyRate: s.NightlyRate,
		RoomCost:    roomCost,
		Services:    s.Balance,
		Total:       roomCost.Add(s.Balance),
		AsOf:        asOf,
	}
}
