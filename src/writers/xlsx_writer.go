package writers

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/username/tallybridge/src/security/validation"
	"github.com/username/tallybridge/src/tally"
)

const (
	SalesSheet   = "Sales"
	ReturnsSheet = "Sales Return"
	MetaSheet    = "_metadata"
)

// Metadata is the generation record written to the _metadata sheet.
type Metadata struct {
	GeneratedOn string
	SourceFiles string
	SellerState string
}

// BuildWorkbook assembles the output workbook: the converted voucher rows on
// "Sales", a header-only "Sales Return" placeholder, and a one-row metadata
// sheet. Free-text cells are sanitized against spreadsheet formula injection.
func BuildWorkbook(rows []tally.VoucherRow, meta Metadata) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SalesSheet); err != nil {
		return nil, fmt.Errorf("failed to name sales sheet: %w", err)
	}
	header := columnsAsCells()
	if err := f.SetSheetRow(SalesSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write sales header: %w", err)
	}
	for i, row := range rows {
		cells := voucherCells(row)
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(SalesSheet, cell, &cells); err != nil {
			return nil, fmt.Errorf("failed to write sales row %d: %w", i+1, err)
		}
	}

	if _, err := f.NewSheet(ReturnsSheet); err != nil {
		return nil, fmt.Errorf("failed to create returns sheet: %w", err)
	}
	if err := f.SetSheetRow(ReturnsSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write returns header: %w", err)
	}

	if _, err := f.NewSheet(MetaSheet); err != nil {
		return nil, fmt.Errorf("failed to create metadata sheet: %w", err)
	}
	metaHeader := []interface{}{"Generated On", "Source Files", "Seller State"}
	metaRow := []interface{}{meta.GeneratedOn, sanitize(meta.SourceFiles), sanitize(meta.SellerState)}
	if err := f.SetSheetRow(MetaSheet, "A1", &metaHeader); err != nil {
		return nil, fmt.Errorf("failed to write metadata header: %w", err)
	}
	if err := f.SetSheetRow(MetaSheet, "A2", &metaRow); err != nil {
		return nil, fmt.Errorf("failed to write metadata row: %w", err)
	}

	return f, nil
}

// WorkbookBytes serializes a workbook for caching or streaming.
func WorkbookBytes(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func columnsAsCells() []interface{} {
	cells := make([]interface{}, len(tally.Columns))
	for i, c := range tally.Columns {
		cells[i] = c
	}
	return cells
}

// voucherCells keeps numeric columns numeric so the spreadsheet receives
// numbers, and passes only free-text columns through the sanitizer. Ledger
// names and GST type are fixed constants and need no sanitizing.
func voucherCells(v tally.VoucherRow) []interface{} {
	return []interface{}{
		sanitize(v.VoucherNo),
		v.VoucherDate,
		sanitize(v.CustomerName),
		v.Group,
		sanitize(v.Address),
		sanitize(v.State),
		v.GSTType,
		sanitize(v.GSTNumber),
		v.SalesLedger,
		sanitize(v.ItemName),
		v.BatchNo,
		v.Expiry,
		sanitize(v.HSNCode),
		v.Quantity,
		v.Rate,
		v.Amount,
		v.Taxes,
		v.CGSTLedger,
		v.CGSTAmount,
		v.SGSTLedger,
		v.SGSTAmount,
		v.IGSTLedger,
		v.IGSTAmount,
		v.TotalAmount,
		v.OtherLedger,
		v.OtherAmount,
	}
}

func sanitize(s string) string {
	return validation.SanitizeForFormulaInjection(validation.StripUnprintable(s))
}
