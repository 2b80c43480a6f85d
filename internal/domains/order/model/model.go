package model

import (
	"time"

	"hotelpos/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName        = "orders"
	LineTableName    = "order_lines"
	PaymentTableName = "payments"
	EntityName       = "order"

	FieldID            = "id"
	FieldOrderID       = "order_id"
	FieldStayID        = "stay_id"
	FieldOperatorID    = "operator_id"
	FieldPaymentStatus = "payment_status"
	FieldPaymentMethod = "payment_method"
	FieldOrderedAt     = "ordered_at"
	FieldNetTotal      = "net_total"
)

const (
	StatusPaid        = "paid"
	StatusTransferred = "transferred"
)

const (
	MethodCash            = "cash"
	MethodCard            = "card"
	MethodMobile          = "mobile"
	MethodAccountTransfer = "account_transfer"
)

var Methods = []string{MethodCash, MethodCard, MethodMobile, MethodAccountTransfer}

const CachePrefix = "order"

// Order is a POS sale. Transferred orders carry the stay they were billed to
// and turn Paid when that stay checks out.
type Order struct {
	ID            string          `db:"id"`
	OperatorID    string          `db:"operator_id"`
	OperatorName  string          `db:"operator_name" table:"users" column:"username"`
	StayID        *string         `db:"stay_id"`
	GuestName     *string         `db:"guest_name" table:"stays" column:"guest_name"`
	RoomNumber    *string         `db:"room_number" table:"rooms" column:"number"`
	NetTotal      decimal.Decimal `db:"net_total"`
	PaymentStatus string          `db:"payment_status"`
	PaymentMethod string          `db:"payment_method"`
	OrderedAt     time.Time       `db:"ordered_at"`
	model.Metadata
}

func (Order) GetJoinQuery() string {
	return "JOIN users ON users.id = orders.operator_id " +
		"LEFT JOIN stays ON stays.id = orders.stay_id " +
		"LEFT JOIN rooms ON rooms.id = stays.room_id"
}

func (o Order) IsTransfer() bool {
	return o.PaymentMethod == MethodAccountTransfer
}

// Line freezes the catalog price of a product at the time of sale.
type Line struct {
	ID          string          `db:"id"`
	OrderID     string          `db:"order_id"`
	ProductID   string          `db:"product_id"`
	ProductName string          `db:"product_name" table:"products" column:"name"`
	Quantity    int             `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	model.Metadata
}

func (Line) GetJoinQuery() string {
	return "JOIN products ON products.id = order_lines.product_id"
}

func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Payment struct {
	ID      string          `db:"id"`
	OrderID string          `db:"order_id"`
	Amount  decimal.Decimal `db:"amount"`
	Method  string          `db:"method"`
	PaidAt  time.Time       `db:"paid_at"`
	model.Metadata
}

// StayLine is a product line of an order billed to a stay.
type StayLine struct {
	OrderID     string          `db:"order_id"`
	OrderedAt   time.Time       `db:"ordered_at"`
	ProductName string          `db:"product_name"`
	Quantity    int             `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
}

func (l StayLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
