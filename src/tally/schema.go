package tally

import (
	"strconv"

	"github.com/username/tallybridge/src/utils"
)

// Ledger names are fixed by the downstream Tally import template and must not
// vary per marketplace.
const (
	GroupSundryDebtors = "Sundry Debtors"
	SalesLedgerName    = "Sales through Ecommerce"
	CGSTLedgerName     = "Output CGST"
	SGSTLedgerName     = "Output SGST"
	IGSTLedgerName     = "Output IGST"

	GSTTypeRegistered   = "Registered"
	GSTTypeUnregistered = "Unregistered"
)

// Columns is the canonical voucher schema, in the exact order the bookkeeping
// import expects. Every converter populates every column.
var Columns = []string{
	"Voucher No",
	"Voucher Date",
	"Customer Name",
	"Group",
	"Address",
	"State",
	"GST Type",
	"GST Number",
	"Sales Ledger Name",
	"Item Name",
	"Batch No.",
	"Expiry",
	"HSN Code",
	"Quantity",
	"Rate",
	"Amount",
	"Taxes",
	"CGST Ledger Name",
	"CGST Amount",
	"SGST Ledger Name",
	"SGST Amount",
	"IGST Ledger Name",
	"IGST Amount",
	"Total Amount",
	"Other Charges Ledger",
	"Other Charges Amount",
}

// VoucherRow is one canonical sales voucher line.
type VoucherRow struct {
	VoucherNo    string  `json:"voucher_no"`
	VoucherDate  string  `json:"voucher_date"` // YYYY-MM-DD, "" when unparseable
	CustomerName string  `json:"customer_name"`
	Group        string  `json:"group"`
	Address      string  `json:"address"`
	State        string  `json:"state"`
	GSTType      string  `json:"gst_type"`
	GSTNumber    string  `json:"gst_number"`
	SalesLedger  string  `json:"sales_ledger_name"`
	ItemName     string  `json:"item_name"`
	BatchNo      string  `json:"batch_no"`
	Expiry       string  `json:"expiry"`
	HSNCode      string  `json:"hsn_code"`
	Quantity     float64 `json:"quantity"`
	Rate         float64 `json:"rate"`
	Amount       float64 `json:"amount"`
	Taxes        float64 `json:"taxes"`
	CGSTLedger   string  `json:"cgst_ledger_name"`
	CGSTAmount   float64 `json:"cgst_amount"`
	SGSTLedger   string  `json:"sgst_ledger_name"`
	SGSTAmount   float64 `json:"sgst_amount"`
	IGSTLedger   string  `json:"igst_ledger_name"`
	IGSTAmount   float64 `json:"igst_amount"`
	TotalAmount  float64 `json:"total_amount"`
	OtherLedger  string  `json:"other_charges_ledger"`
	OtherAmount  string  `json:"other_charges_amount"`
}

// BuildRow assembles one voucher line from extracted field values. It fills
// the fixed ledger names and derives Total Amount; it performs no validation
// beyond that, by contract with the converters.
func BuildRow(voucherNo, voucherDate, customer, state, gstType, gstNumber, itemName, hsn string,
	qty, rate, amount, taxAmt, cgst, sgst, igst float64) VoucherRow {
	return VoucherRow{
		VoucherNo:    voucherNo,
		VoucherDate:  voucherDate,
		CustomerName: customer,
		Group:        GroupSundryDebtors,
		Address:      state,
		State:        state,
		GSTType:      gstType,
		GSTNumber:    gstNumber,
		SalesLedger:  SalesLedgerName,
		ItemName:     itemName,
		HSNCode:      hsn,
		Quantity:     qty,
		Rate:         rate,
		Amount:       amount,
		Taxes:        taxAmt,
		CGSTLedger:   CGSTLedgerName,
		CGSTAmount:   cgst,
		SGSTLedger:   SGSTLedgerName,
		SGSTAmount:   sgst,
		IGSTLedger:   IGSTLedgerName,
		IGSTAmount:   igst,
		TotalAmount:  utils.RoundFloat(amount+taxAmt, 2),
	}
}

// Record returns the row's cell values in canonical column order.
func (v VoucherRow) Record() []string {
	return []string{
		v.VoucherNo,
		v.VoucherDate,
		v.CustomerName,
		v.Group,
		v.Address,
		v.State,
		v.GSTType,
		v.GSTNumber,
		v.SalesLedger,
		v.ItemName,
		v.BatchNo,
		v.Expiry,
		v.HSNCode,
		formatNumber(v.Quantity),
		formatNumber(v.Rate),
		formatNumber(v.Amount),
		formatNumber(v.Taxes),
		v.CGSTLedger,
		formatNumber(v.CGSTAmount),
		v.SGSTLedger,
		formatNumber(v.SGSTAmount),
		v.IGSTLedger,
		formatNumber(v.IGSTAmount),
		formatNumber(v.TotalAmount),
		v.OtherLedger,
		v.OtherAmount,
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
