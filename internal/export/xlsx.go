// Package export renders reports as XLSX workbooks for download.
package export

import (
	"bytes"
	"fmt"

	"textile-books/internal/core"

	"github.com/xuri/excelize/v2"
)

const sheet = "Sheet1"

// LedgerStatementXLSX renders a ledger's passbook as a workbook. Rows are
// most recent first, matching the on-screen statement, with summary totals
// below the table.
func LedgerStatementXLSX(ledger *core.Ledger, st *core.LedgerStatement) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue(sheet, "A1", "Ledger Statement")
	f.SetCellValue(sheet, "A2", fmt.Sprintf("%s — %s", ledger.LedgerCode, ledger.Name))

	headers := []string{"Date", "Detail", "Remark", "Credit", "Debit", "Balance"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 4)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	row := 5
	for _, line := range st.DisplayLines() {
		f.SetCellValue(sheet, "A"+fmt.Sprint(row), line.Date.Format("2006-01-02"))
		f.SetCellValue(sheet, "B"+fmt.Sprint(row), line.Detail)
		f.SetCellValue(sheet, "C"+fmt.Sprint(row), line.Remark)
		f.SetCellValue(sheet, "D"+fmt.Sprint(row), line.Credit.StringFixed(2))
		f.SetCellValue(sheet, "E"+fmt.Sprint(row), line.Debit.StringFixed(2))
		f.SetCellValue(sheet, "F"+fmt.Sprint(row), line.Balance.StringFixed(2))
		row++
	}

	row++
	f.SetCellValue(sheet, "A"+fmt.Sprint(row), "Total Credit")
	f.SetCellValue(sheet, "B"+fmt.Sprint(row), st.TotalCredit.StringFixed(2))
	row++
	f.SetCellValue(sheet, "A"+fmt.Sprint(row), "Total Debit")
	f.SetCellValue(sheet, "B"+fmt.Sprint(row), st.TotalDebit.StringFixed(2))
	row++
	f.SetCellValue(sheet, "A"+fmt.Sprint(row), "Balance")
	f.SetCellValue(sheet, "B"+fmt.Sprint(row), st.Balance.StringFixed(2))

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// BatchReportXLSX renders a batch reconciliation report as a workbook:
// the receipt summary, the derived totals, and the per-output rows.
func BatchReportXLSX(r *core.BatchReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	wc := r.WeaverChallan
	f.SetCellValue(sheet, "A1", "Batch Report")
	f.SetCellValue(sheet, "A2", wc.BatchNumber)

	ledgerCode := ""
	if wc.LedgerCode != nil {
		ledgerCode = *wc.LedgerCode
	}
	summary := [][2]any{
		{"Challan Date", wc.ChallanDate.Format("2006-01-02")},
		{"Ledger", ledgerCode},
		{"Received (m)", wc.Quantity.StringFixed(2)},
		{"Total Shorting (m)", r.TotalShorting.StringFixed(2)},
		{"Remaining (m)", r.RemainingQuantity.StringFixed(2)},
		{"Stitched (pcs)", r.TotalStitching},
		{"Total Expenses", r.TotalExpenses.StringFixed(2)},
		{"Good", r.GoodPieces},
		{"Bad", r.BadPieces},
		{"Wastage", r.WastagePieces},
		{"Shorting (pcs)", r.ShortingPieces},
		{"Utilization (%)", r.UtilizationRate.StringFixed(2)},
	}
	if r.CostPerUnitDefined {
		summary = append(summary, [2]any{"Cost Per Unit", r.CostPerUnit.StringFixed(2)})
	}
	row := 4
	for _, kv := range summary {
		f.SetCellValue(sheet, "A"+fmt.Sprint(row), kv[0])
		f.SetCellValue(sheet, "B"+fmt.Sprint(row), kv[1])
		row++
	}

	row += 2
	headers := []string{"Challan No", "Date", "Pieces", "Classification"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}
	for _, out := range r.IsteachingChallans {
		row++
		f.SetCellValue(sheet, "A"+fmt.Sprint(row), out.ChallanNumber)
		f.SetCellValue(sheet, "B"+fmt.Sprint(row), out.ChallanDate.Format("2006-01-02"))
		f.SetCellValue(sheet, "C"+fmt.Sprint(row), out.Quantity)
		f.SetCellValue(sheet, "D"+fmt.Sprint(row), string(out.Classification))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
