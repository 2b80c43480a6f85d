package model

import (
	"time"

	docModel "hotelpos/internal/domains/document/model"
)

const (
	TypeStayCheckedOut = "stay.checked_out"
	TypeOrderSubmitted = "order.submitted"
)

// StayCheckedOut carries the final invoice of a closed stay.
type StayCheckedOut struct {
	Type         string           `json:"type"`
	StayID       string           `json:"stay_id"`
	CheckedOutAt time.Time        `json:"checked_out_at"`
	Actor        string           `json:"actor"`
	Invoice      docModel.Invoice `json:"invoice"`
}

// OrderSubmitted carries the receipt of a committed POS order.
type OrderSubmitted struct {
	Type    string          `json:"type"`
	OrderID string          `json:"order_id"`
	Actor   string          `json:"actor"`
	Ticket  docModel.Ticket `json:"ticket"`
}
