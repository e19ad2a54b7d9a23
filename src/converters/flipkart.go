package converters

var flipkartChains = FieldChains{
	VoucherNo:   []string{"invoice number", "invoice-no"},
	VoucherDate: []string{"invoice date", "order date"},
	BuyerState:  []string{"shipping state", "ship-to-state"},
	BuyerName:   []string{"customer name", "buyer name"},
	GSTNumber:   []string{"buyer gstin", "gstin"},
	ItemName:    []string{"item name", "product name", "sku"},
	HSN:         []string{"hsn", "hsn code"},
	Quantity:    []string{"quantity"},
	Rate:        []string{"unit price", "price"},
	Amount:      []string{"taxable value", "amount"},
	TaxAmount:   []string{"tax amount", "gst amount"},
}

// NewFlipkartConverter converts Flipkart sales reports.
func NewFlipkartConverter() Converter {
	return &chainConverter{
		source:        "Flipkart",
		voucherPrefix: "FK",
		defaultBuyer:  "Sale through Flipkart",
		chains:        flipkartChains,
	}
}
