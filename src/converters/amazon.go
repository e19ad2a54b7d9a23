package converters

// Amazon B2B and B2C invoice reports use dash-separated headers
// (invoice-id, ship-state); B2C settlement variants fall back to the
// space-separated forms.
var amazonChains = FieldChains{
	VoucherNo:   []string{"invoice-id", "order-id"},
	VoucherDate: []string{"invoice-date", "order-date"},
	BuyerState:  []string{"ship-state", "shipping state"},
	BuyerName:   []string{"buyer-name"},
	GSTNumber:   []string{"buyer-gstin", "gstin"},
	ItemName:    []string{"product-name", "item name"},
	HSN:         []string{"hsn"},
	Quantity:    []string{"quantity"},
	Rate:        []string{"price", "unit-price"},
	Amount:      []string{"taxable-value", "amount"},
	TaxAmount:   []string{"tax-amount", "gst-amount"},
}

// NewAmazonConverter converts Amazon B2B/B2C invoice reports.
func NewAmazonConverter() Converter {
	return &chainConverter{
		source:        "Amazon",
		voucherPrefix: "AMZ",
		defaultBuyer:  "Sale through Amazon",
		chains:        amazonChains,
	}
}
