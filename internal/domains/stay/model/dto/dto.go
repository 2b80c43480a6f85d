package dto

import (
	"time"

	orderModel "hotelpos/internal/domains/order/model"
	"hotelpos/internal/domains/stay/model"
	"hotelpos/shared"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CheckInRequest struct {
	RoomID           string `json:"room_id"           validate:"required,uuid"`
	GuestName        string `json:"guest_name"        validate:"required,max=150"`
	ExpectedCheckout string `json:"expected_checkout" validate:"omitempty,datetime=2006-01-02"`
}

func (c *CheckInRequest) ToModel(now time.Time, user string) (model.Stay, error) {
	stay := model.Stay{
		ID:          uuid.NewString(),
		RoomID:      c.RoomID,
		GuestName:   c.GuestName,
		CheckedInAt: now,
		Balance:     decimal.Zero,
		Status:      model.StatusOpen,
	}
	stay.Stamp(now, user)

	if c.ExpectedCheckout != constant.Empty {
		expected, err := timezone.Parse(constant.DayFormat, c.ExpectedCheckout)
		if err != nil {
			return stay, err
		}

		stay.ExpectedCheckout = &expected
	}

	return stay, nil
}

type ChargeRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"gt=0,money"`
}

type ChargeResponse struct {
	StayID  string          `json:"stay_id"`
	Balance decimal.Decimal `json:"balance"`
}

type CheckoutRequest struct {
	PaidAmount decimal.Decimal `json:"paid_amount" validate:"gte=0,money"`
}

type BillResponse struct {
	StayID      string          `json:"stay_id"`
	AsOf        string          `json:"as_of"`
	Nights      int             `json:"nights"`
	NightlyRate decimal.Decimal `json:"nightly_rate"`
	RoomCost    decimal.Decimal `json:"room_cost"`
	Services    decimal.Decimal `json:"services"`
	Total       decimal.Decimal `json:"total"`
}

func (r *BillResponse) FromModel(stayID string, bill model.Bill) {
	r.StayID = stayID
	r.AsOf = timezone.Format(bill.AsOf, constant.DateFormat)
	r.Nights = bill.Nights
	r.NightlyRate = bill.NightlyRate
	r.RoomCost = bill.RoomCost
	r.Services = bill.Services
	r.Total = bill.Total
}

type CheckoutResponse struct {
	StayID       string          `json:"stay_id"`
	CheckedOutAt string          `json:"checked_out_at"`
	Paid         decimal.Decimal `json:"paid"`
	Bill         BillResponse    `json:"bill"`
	Settled      int64           `json:"settled_orders"`
}

type StayLineResponse struct {
	OrderID   string          `json:"order_id"`
	OrderedAt string          `json:"ordered_at"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type StayResponse struct {
	ID               string             `json:"id"`
	RoomID           string             `json:"room_id"`
	RoomNumber       string             `json:"room_number"`
	RoomType         string             `json:"room_type"`
	NightlyRate      decimal.Decimal    `json:"nightly_rate"`
	GuestName        string             `json:"guest_name"`
	CheckedInAt      string             `json:"checked_in_at"`
	ExpectedCheckout string             `json:"expected_checkout,omitempty"`
	CheckedOutAt     string             `json:"checked_out_at,omitempty"`
	Balance          decimal.Decimal    `json:"balance"`
	Status           string             `json:"status"`
	Lines            []StayLineResponse `json:"lines,omitempty"`
	gDto.Metadata
}

func (r *StayResponse) FromModel(stay model.Stay) {
	r.ID = stay.ID
	r.RoomID = stay.RoomID
	r.RoomNumber = stay.RoomNumber
	r.RoomType = stay.RoomType
	r.NightlyRate = stay.NightlyRate
	r.GuestName = stay.GuestName
	r.CheckedInAt = timezone.Format(stay.CheckedInAt, constant.DateFormat)
	r.Balance = stay.Balance
	r.Status = stay.Status
	r.Metadata.FromModel(stay.Metadata)

	if stay.ExpectedCheckout != nil {
		r.ExpectedCheckout = timezone.Format(*stay.ExpectedCheckout, constant.DayFormat)
	}

	if stay.CheckedOutAt != nil {
		r.CheckedOutAt = timezone.Format(*stay.CheckedOutAt, constant.DateFormat)
	}
}

func (r *StayResponse) WithLines(lines []orderModel.StayLine) {
	r.Lines = make([]StayLineResponse, len(lines))
	for i, line := range lines {
		r.Lines[i] = StayLineResponse{
			OrderID:   line.OrderID,
			OrderedAt: timezone.Format(line.OrderedAt, constant.DateFormat),
			Name:      line.ProductName,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  line.Subtotal(),
		}
	}
}

type GetStaysResponse struct {
	Stays     []StayResponse `json:"stays"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetStaysResponse) FromModels(models []model.Stay, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Stays = make([]StayResponse, len(models))
	for i, mod := range models {
		r.Stays[i].FromModel(mod)
	}
}
