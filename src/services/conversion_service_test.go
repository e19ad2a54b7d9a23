package services

import (
	"errors"
	"testing"

	"github.com/username/tallybridge/src/converters"
	"github.com/username/tallybridge/src/models"
)

func amazonInput(filename string, records ...[]string) NamedTable {
	headers := []string{"invoice-id", "ship-state", "taxable-value", "tax-amount"}
	return NamedTable{
		Table:    models.NewTable(filename, headers, records),
		Filename: filename,
	}
}

func TestConvertAllRequiresSellerState(t *testing.T) {
	inputs := []NamedTable{amazonInput("amazon.csv", []string{"A1", "Goa", "100", "18"})}

	for _, state := range []string{"", "   "} {
		if _, err := ConvertAll(inputs, state); !errors.Is(err, ErrMissingSellerState) {
			t.Errorf("seller state %q: got %v, want ErrMissingSellerState", state, err)
		}
	}
}

func TestConvertAllFailsWhenNothingSurvives(t *testing.T) {
	// One unconvertible input (nil table), one with zero rows.
	inputs := []NamedTable{
		{Table: nil, Filename: "amazon_broken.csv"},
		amazonInput("amazon_empty.csv"),
	}

	if _, err := ConvertAll(inputs, "Goa"); !errors.Is(err, ErrNoRowsConverted) {
		t.Errorf("got %v, want ErrNoRowsConverted", err)
	}
}

func TestConvertAllSkipsBadInputsAndContinues(t *testing.T) {
	inputs := []NamedTable{
		{Table: nil, Filename: "amazon_broken.csv"},
		amazonInput("amazon_empty.csv"),
		amazonInput("amazon_good.csv", []string{"A1", "Goa", "100", "18"}),
	}

	result, err := ConvertAll(inputs, "Goa")
	if err != nil {
		t.Fatalf("ConvertAll failed: %v", err)
	}
	if len(result.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(result.Rows))
	}
	if len(result.Skipped) != 2 {
		t.Fatalf("got %d skipped, want 2: %+v", len(result.Skipped), result.Skipped)
	}
	if result.Skipped[0].Filename != "amazon_broken.csv" || result.Skipped[1].Filename != "amazon_empty.csv" {
		t.Errorf("skipped diagnostics wrong: %+v", result.Skipped)
	}
	if len(result.Sources) != 1 || result.Sources[0] != "amazon_good.csv" {
		t.Errorf("sources = %v", result.Sources)
	}
}

func TestConvertAllPreservesInputOrder(t *testing.T) {
	first := amazonInput("amazon_jan.csv",
		[]string{"A1", "Goa", "100", "18"},
		[]string{"A2", "Goa", "200", "36"})
	second := NamedTable{
		Table: models.NewTable("unknown.csv",
			[]string{"invoice id", "state", "amount", "tax amount"},
			[][]string{{"G1", "Delhi", "300", "54"}}),
		Filename: "unknown.csv",
	}

	result, err := ConvertAll([]NamedTable{first, second}, "Goa")
	if err != nil {
		t.Fatalf("ConvertAll failed: %v", err)
	}

	wantOrder := []string{"A1", "A2", "G1"}
	if len(result.Rows) != len(wantOrder) {
		t.Fatalf("got %d rows, want %d", len(result.Rows), len(wantOrder))
	}
	for i, want := range wantOrder {
		if result.Rows[i].VoucherNo != want {
			t.Errorf("row %d: VoucherNo = %q, want %q", i, result.Rows[i].VoucherNo, want)
		}
	}

	// The unknown file must have gone through the generic converter and
	// produced an inter-state split.
	last := result.Rows[2]
	if last.IGSTAmount != 54 || last.CGSTAmount != 0 {
		t.Errorf("generic inter-state split wrong: %v/%v/%v", last.CGSTAmount, last.SGSTAmount, last.IGSTAmount)
	}
}

func TestConvertAllMetadata(t *testing.T) {
	inputs := []NamedTable{
		amazonInput("amazon_jan.csv", []string{"A1", "Goa", "100", "18"}),
		amazonInput("amazon_feb.csv", []string{"A2", "Goa", "100", "18"}),
	}

	result, err := ConvertAll(inputs, "Goa")
	if err != nil {
		t.Fatalf("ConvertAll failed: %v", err)
	}
	if result.Meta.SourceFiles != "amazon_jan.csv, amazon_feb.csv" {
		t.Errorf("SourceFiles = %q", result.Meta.SourceFiles)
	}
	if result.Meta.SellerState != "Goa" {
		t.Errorf("SellerState = %q", result.Meta.SellerState)
	}
	if result.Meta.GeneratedOn == "" {
		t.Error("GeneratedOn must be set")
	}
}

func TestConvertAllUsingForcesConverter(t *testing.T) {
	// Filename says amazon, but the forced TCS converter must be applied:
	// the row carries TCS voucher-number vocabulary only.
	table := models.NewTable("amazon_named.csv",
		[]string{"voucher no", "state", "taxable value", "tax"},
		[][]string{{"T1", "Goa", "100", "18"}})

	conv, err := converters.Get("tcs")
	if err != nil {
		t.Fatalf("Get(tcs): %v", err)
	}
	result, err := ConvertAllUsing(conv, []NamedTable{{Table: table, Filename: "amazon_named.csv"}}, "Goa")
	if err != nil {
		t.Fatalf("ConvertAllUsing failed: %v", err)
	}
	if result.Rows[0].VoucherNo != "T1" {
		t.Errorf("VoucherNo = %q, want T1", result.Rows[0].VoucherNo)
	}
}
