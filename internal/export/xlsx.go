// Package export renders ledger projections as downloadable spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

// TransactionsSheet is the name of the single sheet in a transaction export.
const TransactionsSheet = "Transactions"

// XLSXContentType is the MIME type of the workbook written by WriteTransactionsXLSX.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var transactionHeaders = []string{"Date", "Description", "Type", "Category", "Account", "Amount", "Status", "Person", "Cost Center"}

var columnWidths = map[string]float64{
	"A": 12, "B": 36, "C": 10, "D": 20, "E": 20, "F": 14, "G": 12, "H": 20, "I": 20,
}

// WriteTransactionsXLSX writes one row per transaction under a header row.
// Amounts are signed: expenses are negative.
func WriteTransactionsXLSX(w io.Writer, rows []domain.TransactionDetail) error {
	f := excelize.NewFile()
	defer f.Close()

	// Rename the default sheet instead of adding a second one.
	if err := f.SetSheetName(f.GetSheetName(0), TransactionsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range transactionHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(TransactionsSheet, cell, h); err != nil {
			return fmt.Errorf("write header %s: %w", h, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(transactionHeaders), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(TransactionsSheet, "A1", lastHeader, headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for idx, r := range rows {
		person := ""
		if r.Person != nil {
			person = r.Person.Name
		}
		costCenter := ""
		if r.CostCenter != nil {
			costCenter = r.CostCenter.Name
		}
		values := []any{
			r.Date.Format("2006-01-02"),
			r.Description,
			string(r.Type),
			r.Category.Name,
			r.Account.Name,
			r.SignedAmount().InexactFloat64(),
			string(r.Status),
			person,
			costCenter,
		}
		start, err := excelize.CoordinatesToCellName(1, idx+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(TransactionsSheet, start, &values); err != nil {
			return fmt.Errorf("write row %d: %w", idx+2, err)
		}
	}

	if err := styleAmounts(f, len(rows)); err != nil {
		return err
	}
	for col, width := range columnWidths {
		if err := f.SetColWidth(TransactionsSheet, col, col, width); err != nil {
			return fmt.Errorf("set width of column %s: %w", col, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func styleAmounts(f *excelize.File, n int) error {
	if n == 0 {
		return nil
	}
	numFmt := "#,##0.00"
	style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return fmt.Errorf("create amount style: %w", err)
	}
	return f.SetCellStyle(TransactionsSheet, "F2", fmt.Sprintf("F%d", n+1), style)
}
