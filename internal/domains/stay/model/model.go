package model

import (
	"errors"
	"time"

	roomModel "hotelpos/internal/domains/room/model"
	"hotelpos/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "stays"
	EntityName = "stay"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldGuestName   = "guest_name"
	FieldCheckedInAt = "checked_in_at"
	FieldBalance     = "balance"
	FieldStatus      = "status"
)

const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

const CachePrefix = "stay"

var (
	ErrNotFound = errors.New("stay not found")
	ErrClosed   = errors.New("stay already closed")
)

type Stay struct {
	ID               string          `db:"id"`
	RoomID           string          `db:"room_id"`
	RoomNumber       string          `db:"room_number" table:"rooms" column:"number"`
	RoomType         string          `db:"room_type" table:"rooms" column:"type"`
	NightlyRate      decimal.Decimal `db:"nightly_rate" table:"rooms" column:"nightly_rate"`
	GuestName        string          `db:"guest_name"`
	CheckedInAt      time.Time       `db:"checked_in_at"`
	ExpectedCheckout *time.Time      `db:"expected_checkout"`
	CheckedOutAt     *time.Time      `db:"checked_out_at"`
	Balance          decimal.Decimal `db:"balance"`
	Status           string          `db:"status"`
	model.Metadata
}

func (Stay) GetJoinQuery() string {
	return "JOIN " + roomModel.TableName + " ON " + roomModel.TableName + ".id = " + TableName + ".room_id"
}

func (s Stay) IsOpen() bool {
	return s.Status == StatusOpen
}
