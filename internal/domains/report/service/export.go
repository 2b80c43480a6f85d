package service

import (
	"bytes"
	"fmt"

	"hotelpos/internal/domains/report/model/dto"
	"hotelpos/shared/timezone"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary  = "Summary"
	sheetPayments = "Payments"
	sheetProducts = "Top products"
)

func workbook(report dto.SalesReportResponse, currency string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, fmt.Errorf("rename summary sheet: %w", err)
	}

	summary := [][]any{
		{"Period", report.StartDate + " - " + report.EndDate},
		{"Currency", currency},
		{"Stay revenue", money(report.StayRevenue)},
		{"POS revenue", money(report.POSRevenue)},
		{"Total", money(report.Total)},
		{"Timezone", timezone.GetLocation().String()},
	}
	if err := writeRows(f, sheetSummary, summary); err != nil {
		return nil, err
	}

	payments := [][]any{{"Method", "Amount"}}
	for _, total := range report.PaymentBreakdown {
		payments = append(payments, []any{total.Method, money(total.Amount)})
	}

	if err := writeSheet(f, sheetPayments, payments); err != nil {
		return nil, err
	}

	products := [][]any{{"Rank", "By quantity", "Quantity", "By value", "Value"}}
	for i := range max(len(report.TopByQuantity), len(report.TopByValue)) {
		row := []any{i + 1, "", "", "", ""}

		if i < len(report.TopByQuantity) {
			row[1] = report.TopByQuantity[i].Name
			row[2] = report.TopByQuantity[i].Quantity
		}

		if i < len(report.TopByValue) {
			row[3] = report.TopByValue[i].Name
			row[4] = money(report.TopByValue[i].Value)
		}

		products = append(products, row)
	}

	if err := writeSheet(f, sheetProducts, products); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	return writeRows(f, sheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}

		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}

	return nil
}

func money(amount decimal.Decimal) float64 {
	return amount.Round(2).InexactFloat64()
}
