package model

import "github.com/shopspring/decimal"

const CachePrefix = "report"

// TopLimit bounds both product rankings of the sales report.
const TopLimit = 5

type MethodTotal struct {
	Method string          `db:"method"`
	Amount decimal.Decimal `db:"amount"`
}

type ProductTotal struct {
	ProductID string          `db:"product_id"`
	Name      string          `db:"name"`
	Quantity  int64           `db:"quantity"`
	Value     decimal.Decimal `db:"value"`
}
