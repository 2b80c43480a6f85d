package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	KindInvoice = "invoice"
	KindTicket  = "ticket"

	DirectoryInvoices = "invoices"
	DirectoryTickets  = "tickets"
)

// Line is one billed item, priced at the moment of sale.
type Line struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	OrderedAt time.Time       `json:"ordered_at"`
}

// Invoice is the A4 folio statement of a stay. Paid is set once the stay is closed.
type Invoice struct {
	StayID      string           `json:"stay_id"`
	GuestName   string           `json:"guest_name"`
	RoomNumber  string           `json:"room_number"`
	RoomType    string           `json:"room_type"`
	CheckedInAt time.Time        `json:"checked_in_at"`
	AsOf        time.Time        `json:"as_of"`
	Nights      int              `json:"nights"`
	NightlyRate decimal.Decimal  `json:"nightly_rate"`
	RoomCost    decimal.Decimal  `json:"room_cost"`
	Services    decimal.Decimal  `json:"services"`
	Total       decimal.Decimal  `json:"total"`
	Paid        *decimal.Decimal `json:"paid,omitempty"`
	Lines       []Line           `json:"lines"`
	IssuedBy    string           `json:"issued_by"`
}

// Ticket is the 80mm receipt of a POS order.
type Ticket struct {
	OrderID       string          `json:"order_id"`
	OrderedAt     time.Time       `json:"ordered_at"`
	Operator      string          `json:"operator"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status"`
	GuestName     string          `json:"guest_name,omitempty"`
	RoomNumber    string          `json:"room_number,omitempty"`
	Lines         []Line          `json:"lines"`
	Total         decimal.Decimal `json:"total"`
}
