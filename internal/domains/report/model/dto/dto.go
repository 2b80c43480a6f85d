package dto

import (
	"time"

	"hotelpos/internal/domains/report/model"
	"hotelpos/shared/constant"
	"hotelpos/shared/timezone"

	"github.com/shopspring/decimal"
)

type MethodTotalResponse struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

type ProductTotalResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	Value     decimal.Decimal `json:"value"`
}

type SalesReportResponse struct {
	StartDate        string                 `json:"start_date"`
	EndDate          string                 `json:"end_date"`
	StayRevenue      decimal.Decimal        `json:"stay_revenue"`
	POSRevenue       decimal.Decimal        `json:"pos_revenue"`
	Total            decimal.Decimal        `json:"total"`
	PaymentBreakdown []MethodTotalResponse  `json:"payment_breakdown"`
	TopByQuantity    []ProductTotalResponse `json:"top_by_quantity"`
	TopByValue       []ProductTotalResponse `json:"top_by_value"`
}

func (r *SalesReportResponse) SetRange(start, end time.Time) {
	r.StartDate = timezone.Format(start, constant.DayFormat)
	r.EndDate = timezone.Format(end, constant.DayFormat)
}

func (r *SalesReportResponse) SetRevenue(stay, pos decimal.Decimal) {
	r.StayRevenue = stay
	r.POSRevenue = pos
	r.Total = stay.Add(pos)
}

func (r *SalesReportResponse) SetBreakdown(totals []model.MethodTotal) {
	r.PaymentBreakdown = make([]MethodTotalResponse, len(totals))
	for i, total := range totals {
		r.PaymentBreakdown[i] = MethodTotalResponse{Method: total.Method, Amount: total.Amount}
	}
}

func ProductTotals(totals []model.ProductTotal) []ProductTotalResponse {
	res := make([]ProductTotalResponse, len(totals))
	for i, total := range totals {
		res[i] = ProductTotalResponse{
			ProductID: total.ProductID,
			Name:      total.Name,
			Quantity:  total.Quantity,
			Value:     total.Value,
		}
	}

	return res
}
