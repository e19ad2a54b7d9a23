package converters

import (
	"errors"
	"fmt"

	"github.com/username/tallybridge/src/models"
	"github.com/username/tallybridge/src/tally"
	"github.com/username/tallybridge/src/utils"
)

// Converter maps one marketplace's raw column vocabulary onto canonical
// voucher rows. All converters share this signature so the dispatcher can
// treat them polymorphically.
type Converter interface {
	// Source is the marketplace label attached to the converted table.
	Source() string
	Convert(table *models.Table, sellerState string) ([]tally.VoucherRow, error)
}

var errNilTable = errors.New("no input table")

// FieldChains holds the ordered column-name synonym lists for every semantic
// field a converter extracts. The chains are the only marketplace-specific
// knowledge in the system; each is an explicit finite table, never inferred.
type FieldChains struct {
	VoucherNo   []string
	VoucherDate []string
	BuyerState  []string
	BuyerName   []string
	GSTNumber   []string
	ItemName    []string
	HSN         []string
	Quantity    []string
	Rate        []string
	Amount      []string
	TaxAmount   []string
}

// chainConverter runs the extraction algorithm shared by every marketplace:
// resolve each semantic field through its synonym chain, coerce numerics,
// derive missing amount/tax, split GST, build the canonical row.
type chainConverter struct {
	source        string
	voucherPrefix string
	defaultBuyer  string
	chains        FieldChains
}

func (c *chainConverter) Source() string { return c.source }

func (c *chainConverter) Convert(table *models.Table, sellerState string) ([]tally.VoucherRow, error) {
	if table == nil {
		return nil, errNilTable
	}
	if table.ColumnCount == 0 {
		return nil, fmt.Errorf("%s: input has no columns", c.source)
	}

	rows := make([]tally.VoucherRow, 0, len(table.Rows))
	for idx, r := range table.Rows {
		voucherNo := r.First(c.chains.VoucherNo...)
		if voucherNo == "" {
			voucherNo = fmt.Sprintf("%s-%d", c.voucherPrefix, idx+1)
		}
		voucherDate := utils.ParseDate(r.First(c.chains.VoucherDate...))

		buyerState := r.First(c.chains.BuyerState...)
		buyerName := r.First(c.chains.BuyerName...)
		if buyerName == "" {
			buyerName = c.defaultBuyer
		}

		gstNumber := r.First(c.chains.GSTNumber...)
		gstType := tally.GSTTypeUnregistered
		if gstNumber != "" {
			gstType = tally.GSTTypeRegistered
		}

		itemName := r.First(c.chains.ItemName...)
		if itemName == "" {
			itemName = "Item"
		}
		hsn := r.First(c.chains.HSN...)

		qty := utils.CoerceFloat(r.First(c.chains.Quantity...), 1)
		rate := utils.CoerceFloat(r.First(c.chains.Rate...), 0)

		amountStr := r.First(c.chains.Amount...)
		amount := utils.CoerceFloat(amountStr, 0)
		if amountStr == "" {
			amount = rate * qty
		}

		taxStr := r.First(c.chains.TaxAmount...)
		taxAmt := utils.CoerceFloat(taxStr, 0)
		if taxStr == "" {
			taxAmt = utils.RoundFloat(amount*tally.DefaultGSTRate, 2)
		}

		cgst, sgst, igst := tally.SplitTax(taxAmt, sellerState, buyerState)

		rows = append(rows, tally.BuildRow(
			voucherNo, voucherDate, buyerName, buyerState, gstType, gstNumber,
			itemName, hsn, qty, rate, amount, taxAmt, cgst, sgst, igst))
	}
	return rows, nil
}
