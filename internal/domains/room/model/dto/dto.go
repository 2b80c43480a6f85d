package dto

import (
	"hotelpos/internal/domains/room/model"
	"hotelpos/shared"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	Number      string          `json:"number"       validate:"required,alphanum,max=10"`
	Type        string          `json:"type"         validate:"required,max=50"`
	NightlyRate decimal.Decimal `json:"nightly_rate" validate:"gte=0,money"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	room := model.Room{
		ID:          uuid.NewString(),
		Number:      c.Number,
		Type:        c.Type,
		NightlyRate: c.NightlyRate,
	}
	room.Stamp(timezone.Now(), user)

	return room
}

type UpdateRoomRequest struct {
	Number      *string          `db:"number"       json:"number"       validate:"omitempty,alphanum,max=10"`
	Type        *string          `db:"type"         json:"type"         validate:"omitempty,max=50"`
	NightlyRate *decimal.Decimal `db:"nightly_rate" json:"nightly_rate" validate:"omitempty,gte=0,money"`
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=free occupied reserved"`
}

type RoomResponse struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	Type        string          `json:"type"`
	NightlyRate decimal.Decimal `json:"nightly_rate"`
	Status      string          `json:"status,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = model.Type
	r.NightlyRate = model.NightlyRate
	r.Metadata.FromModel(model.Metadata)
}

func (r *RoomResponse) FromStatusModel(model model.RoomWithStatus) {
	r.FromModel(model.Room)
	r.Status = model.Status
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.RoomWithStatus, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromStatusModel(mod)
	}
}

type AvailableRoomsResponse struct {
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Rooms     []RoomResponse `json:"rooms"`
}

func (r *AvailableRoomsResponse) FromModels(models []model.Room, startDate, endDate string) {
	r.StartDate = startDate
	r.EndDate = endDate

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
		r.Rooms[i].Status = model.StatusFree
	}
}
