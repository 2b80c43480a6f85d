package dto

import (
	"hotelpos/internal/domains/order/model"
	"hotelpos/shared"
	"hotelpos/shared/constant"
	"hotelpos/shared/timezone"

	"github.com/shopspring/decimal"
)

type LineRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"   validate:"required,min=1"`
}

type SubmitOrderRequest struct {
	Lines         []LineRequest `json:"lines"          validate:"required,min=1,dive"`
	PaymentMethod string        `json:"payment_method" validate:"required,oneof=cash card mobile account_transfer"`
	StayID        string        `json:"stay_id"        validate:"omitempty,uuid"`
}

// ProductIDs returns the distinct product ids of the cart in first-seen order.
func (s SubmitOrderRequest) ProductIDs() []string {
	seen := make(map[string]struct{}, len(s.Lines))
	ids := make([]string, 0, len(s.Lines))

	for _, line := range s.Lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}

		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}

	return ids
}

type SubmitOrderResponse struct {
	ID            string          `json:"id"`
	NetTotal      decimal.Decimal `json:"net_total"`
	PaymentStatus string          `json:"payment_status"`
}

type LineResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

func (r *LineResponse) FromModel(line model.Line) {
	r.ProductID = line.ProductID
	r.Name = line.ProductName
	r.Quantity = line.Quantity
	r.UnitPrice = line.UnitPrice
	r.Subtotal = line.Subtotal()
}

type PaymentResponse struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	PaidAt string          `json:"paid_at"`
}

type OrderResponse struct {
	ID            string          `json:"id"`
	OrderedAt     string          `json:"ordered_at"`
	NetTotal      decimal.Decimal `json:"net_total"`
	PaymentStatus string          `json:"payment_status"`
	PaymentMethod string          `json:"payment_method"`
	Operator      string          `json:"operator"`
	StayID        string          `json:"stay_id,omitempty"`
	GuestName     string          `json:"guest_name,omitempty"`
	RoomNumber    string          `json:"room_number,omitempty"`
}

func (r *OrderResponse) FromModel(order model.Order) {
	r.ID = order.ID
	r.OrderedAt = timezone.Format(order.OrderedAt, constant.DateFormat)
	r.NetTotal = order.NetTotal
	r.PaymentStatus = order.PaymentStatus
	r.PaymentMethod = order.PaymentMethod
	r.Operator = order.OperatorName
	r.StayID = deref(order.StayID)
	r.GuestName = deref(order.GuestName)
	r.RoomNumber = deref(order.RoomNumber)
}

type ReceiptResponse struct {
	OrderResponse
	Payment PaymentResponse `json:"payment"`
	Lines   []LineResponse  `json:"lines"`
}

func (r *ReceiptResponse) FromModel(order model.Order, payment model.Payment, lines []model.Line) {
	r.OrderResponse.FromModel(order)

	r.Payment = PaymentResponse{
		Amount: payment.Amount,
		Method: payment.Method,
		PaidAt: timezone.Format(payment.PaidAt, constant.DateFormat),
	}

	r.Lines = make([]LineResponse, len(lines))
	for i, line := range lines {
		r.Lines[i].FromModel(line)
	}
}

type GetOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetOrdersResponse) FromModels(models []model.Order, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Orders = make([]OrderResponse, len(models))
	for i, mod := range models {
		r.Orders[i].FromModel(mod)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
