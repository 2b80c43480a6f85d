package model

import (
	"hotelpos/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "products"
	EntityName = "product"

	FieldID        = "id"
	FieldName      = "name"
	FieldUnitPrice = "unit_price"
	FieldSaleType  = "sale_type"
	FieldCategory  = "category"
)

const (
	SaleTypeLodging          = "lodging"
	SaleTypeConsumption      = "consumption"
	SaleTypeAuxiliaryService = "auxiliary_service"
)

const CachePrefix = "product"

type Product struct {
	ID        string          `db:"id"`
	Name      string          `db:"name"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	SaleType  string          `db:"sale_type"`
	Category  string          `db:"category"`
	model.Metadata
}

// SellableAtPOS reports whether the product can be rung up at the point of sale.
func (p Product) SellableAtPOS() bool {
	return p.SaleType != SaleTypeLodging
}
