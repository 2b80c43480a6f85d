package dto

import (
	"hotelpos/internal/domains/reservation/model"
	"hotelpos/shared"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/timezone"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RoomID    string `json:"room_id"    validate:"required,uuid"`
	GuestName string `json:"guest_name" validate:"required,max=150"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
}

// ToModel parses both dates as calendar days in the application timezone.
func (c *CreateReservationRequest) ToModel(user string) (model.Reservation, error) {
	start, err := timezone.Parse(constant.DayFormat, c.StartDate)
	if err != nil {
		return model.Reservation{}, err
	}

	end, err := timezone.Parse(constant.DayFormat, c.EndDate)
	if err != nil {
		return model.Reservation{}, err
	}

	reservation := model.Reservation{
		ID:        uuid.NewString(),
		RoomID:    c.RoomID,
		GuestName: c.GuestName,
		StartDate: start,
		EndDate:   end,
		Status:    model.StatusConfirmed,
	}
	reservation.Stamp(timezone.Now(), user)

	return reservation, nil
}

type ReservationResponse struct {
	ID         string `json:"id"`
	RoomID     string `json:"room_id"`
	RoomNumber string `json:"room_number,omitempty"`
	GuestName  string `json:"guest_name"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.RoomNumber = model.RoomNumber
	r.GuestName = model.GuestName
	r.StartDate = model.StartDate.Format(constant.DayFormat)
	r.EndDate = model.EndDate.Format(constant.DayFormat)
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
