package report

import (
	"fmt"
	"net/http"
	"time"

	"hotelpos/infras/otel"
	"hotelpos/internal/domains/report/service"
	"hotelpos/shared"
	"hotelpos/shared/constant"
	"hotelpos/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/sales", handler.GetSalesReport)
		routerGroup.Get("/sales/export", handler.ExportSalesReport)
	})
}

func dateRange(r *http.Request) (time.Time, time.Time, error) {
	query := r.URL.Query()

	startDate, err := shared.ParseDayParam(constant.RequestParamStartDate, query.Get(constant.RequestParamStartDate))
	if err != nil {
		return startDate, time.Time{}, err
	}

	endDate, err := shared.ParseDayParam(constant.RequestParamEndDate, query.Get(constant.RequestParamEndDate))

	return startDate, endDate, err
}

// GetSalesReport aggregates closed stays and paid orders over an inclusive day range.
// @Summary Sales report
// @Tags Report
// @Produce json
// @Param start_date query string false "First day (yyyy-mm-dd), defaults to the first of the month"
// @Param end_date query string false "Last day (yyyy-mm-dd), defaults to today"
// @Success 200 {object} response.Data[dto.SalesReportResponse]
// @Failure 400 {object} response.Error
// @Router /v1/reports/sales [get]
// @Security BearerAuth
func (handler *Handler) GetSalesReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSalesReport")
	defer scope.End()

	startDate, endDate, err := dateRange(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	report, err := handler.service.SalesReport(ctx, startDate, endDate)
	if err != nil {
		response.Fail(w, scope, err, "build sales report")

		return
	}

	response.WithJSON(w, http.StatusOK, report)
}

// ExportSalesReport downloads the sales report as an xlsx workbook.
// @Summary Export the sales report
// @Tags Report
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start_date query string false "First day (yyyy-mm-dd)"
// @Param end_date query string false "Last day (yyyy-mm-dd)"
// @Success 200 {file} binary
// @Failure 400 {object} response.Error
// @Router /v1/reports/sales/export [get]
// @Security BearerAuth
func (handler *Handler) ExportSalesReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportSalesReport")
	defer scope.End()

	startDate, endDate, err := dateRange(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	content, err := handler.service.Export(ctx, startDate, endDate)
	if err != nil {
		response.Fail(w, scope, err, "export sales report")

		return
	}

	filename := fmt.Sprintf("sales-%s.xlsx", r.URL.Query().Get(constant.RequestParamStartDate))
	if r.URL.Query().Get(constant.RequestParamStartDate) == "" {
		filename = "sales.xlsx"
	}

	response.WithFile(w, constant.ContentTypeXLSX, filename, content)
}
