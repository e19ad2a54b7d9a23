package writers

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/username/tallybridge/src/readers"
	"github.com/username/tallybridge/src/tally"
)

func buildTestWorkbookBytes(t *testing.T, rows []tally.VoucherRow) []byte {
	t.Helper()
	f, err := BuildWorkbook(rows, Metadata{
		GeneratedOn: "2024-01-15 10:00:00 UTC",
		SourceFiles: "amazon.csv",
		SellerState: "Maharashtra",
	})
	if err != nil {
		t.Fatalf("BuildWorkbook failed: %v", err)
	}
	b, err := WorkbookBytes(f)
	if err != nil {
		t.Fatalf("WorkbookBytes failed: %v", err)
	}
	return b
}

func TestBuildWorkbookSheets(t *testing.T) {
	row := tally.BuildRow("AB123", "2024-01-15", "Buyer", "Maharashtra", tally.GSTTypeUnregistered, "",
		"Widget", "8471", 1, 1000, 1000, 180, 90, 90, 0)
	b := buildTestWorkbookBytes(t, []tally.VoucherRow{row})

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{SalesSheet, ReturnsSheet, MetaSheet}
	if len(sheets) != len(want) {
		t.Fatalf("sheets = %v, want %v", sheets, want)
	}
	for i, s := range want {
		if sheets[i] != s {
			t.Errorf("sheet %d = %q, want %q", i, sheets[i], s)
		}
	}

	salesRows, err := f.GetRows(SalesSheet)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(salesRows) != 2 {
		t.Fatalf("sales sheet has %d rows, want header + 1", len(salesRows))
	}
	for i, col := range tally.Columns {
		if salesRows[0][i] != col {
			t.Errorf("header col %d = %q, want %q", i, salesRows[0][i], col)
		}
	}
	if salesRows[1][0] != "AB123" {
		t.Errorf("first data cell = %q", salesRows[1][0])
	}

	returnRows, err := f.GetRows(ReturnsSheet)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(returnRows) != 1 {
		t.Errorf("returns sheet must be header-only, got %d rows", len(returnRows))
	}

	metaRows, err := f.GetRows(MetaSheet)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(metaRows) != 2 || metaRows[1][2] != "Maharashtra" {
		t.Errorf("metadata sheet wrong: %v", metaRows)
	}
}

func TestBuildWorkbookSanitizesFormulaCells(t *testing.T) {
	row := tally.BuildRow("=SUM(A1:A9)", "", "@cmd", "Goa", tally.GSTTypeUnregistered, "",
		"Widget", "", 1, 0, 100, 18, 0, 0, 18)
	b := buildTestWorkbookBytes(t, []tally.VoucherRow{row})

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	defer f.Close()

	voucherNo, err := f.GetCellValue(SalesSheet, "A2")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if voucherNo != "'=SUM(A1:A9)" {
		t.Errorf("formula cell not sanitized: %q", voucherNo)
	}
	customer, err := f.GetCellValue(SalesSheet, "C2")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if customer != "'@cmd" {
		t.Errorf("@-cell not sanitized: %q", customer)
	}
}

// The workbook written here must be readable by the upload path's reader.
func TestWorkbookRoundTripThroughReader(t *testing.T) {
	row := tally.BuildRow("AB123", "2024-01-15", "Buyer", "Delhi", tally.GSTTypeUnregistered, "",
		"Widget", "", 1, 1000, 1000, 180, 0, 0, 180)
	b := buildTestWorkbookBytes(t, []tally.VoucherRow{row})

	table, err := readers.ReadTable(bytes.NewReader(b), "converted.xlsx")
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if table.RowCount != 1 {
		t.Fatalf("RowCount = %d, want 1", table.RowCount)
	}
	if got := table.Rows[0].Get("voucher no"); got != "AB123" {
		t.Errorf("voucher no = %q", got)
	}
}
