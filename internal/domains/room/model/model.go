package model

import (
	"hotelpos/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldNumber      = "number"
	FieldType        = "type"
	FieldNightlyRate = "nightly_rate"
	FieldStatus      = "status"
)

// Status is derived from stays and reservations, never stored.
const (
	StatusFree     = "free"
	StatusOccupied = "occupied"
	StatusReserved = "reserved"
)

// CachePrefix covers every cached room read; stay and reservation flows clear it too.
const CachePrefix = "room"

type Room struct {
	ID          string          `db:"id"`
	Number      string          `db:"number"`
	Type        string          `db:"type"`
	NightlyRate decimal.Decimal `db:"nightly_rate"`
	model.Metadata
}

type RoomWithStatus struct {
	Room
	Status string `db:"status"`
}
