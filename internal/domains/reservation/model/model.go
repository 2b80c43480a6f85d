package model

import (
	"time"

	roomModel "hotelpos/internal/domains/room/model"
	"hotelpos/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID        = "id"
	FieldRoomID    = "room_id"
	FieldGuestName = "guest_name"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	FieldStatus    = "status"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

const CachePrefix = "reservation"

// Reservation covers the nights in [StartDate, EndDate).
type Reservation struct {
	ID         string    `db:"id"`
	RoomID     string    `db:"room_id"`
	RoomNumber string    `db:"room_number" table:"rooms" column:"number"`
	GuestName  string    `db:"guest_name"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	Status     string    `db:"status"`
	model.Metadata
}

func (Reservation) GetJoinQuery() string {
	return "JOIN " + roomModel.TableName + " ON " + roomModel.TableName + ".id = " + TableName + ".room_id"
}

