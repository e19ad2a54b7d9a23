package converters

// TCS-style reports are recon/deduction exports that already carry voucher
// numbers and a separate tax column.
var tcsChains = FieldChains{
	VoucherNo:   []string{"voucher no", "invoice no", "txn id"},
	VoucherDate: []string{"date", "voucher date"},
	BuyerState:  []string{"state", "buyer state"},
	BuyerName:   []string{"customer name", "party name"},
	GSTNumber:   []string{"gstin", "buyer gstin"},
	ItemName:    []string{"item", "product"},
	HSN:         []string{"hsn"},
	Quantity:    []string{"quantity"},
	Rate:        []string{"rate", "unit price"},
	Amount:      []string{"taxable value", "amount"},
	TaxAmount:   []string{"tax", "gst amount"},
}

// NewTCSConverter converts TCS (tax collected at source) recon reports.
func NewTCSConverter() Converter {
	return &chainConverter{
		source:        "TCS",
		voucherPrefix: "TCS",
		defaultBuyer:  "Sale through TCS",
		chains:        tcsChains,
	}
}
