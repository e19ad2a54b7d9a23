package converters

// genericChains cast a wider net than any single marketplace; the generic
// converter is the converter of last resort for unrecognized sources.
var genericChains = FieldChains{
	VoucherNo:   []string{"invoice id", "order id", "id"},
	VoucherDate: []string{"invoice date", "order date", "date"},
	BuyerState:  []string{"shipping state", "state", "ship state"},
	BuyerName:   []string{"buyer name", "customer name"},
	GSTNumber:   []string{"buyer gstin", "gstin", "gst number", "gst no"},
	ItemName:    []string{"product name", "item name", "product title", "product"},
	HSN:         []string{"hsn", "hsn code"},
	Quantity:    []string{"quantity", "qty"},
	Rate:        []string{"unit price", "price", "rate"},
	Amount:      []string{"taxable value", "amount", "item value"},
	TaxAmount:   []string{"tax amount", "gst amount", "tax"},
}

// NewGenericConverter converts reports from unknown marketplaces using
// broad, marketplace-agnostic synonym chains.
func NewGenericConverter() Converter {
	return &chainConverter{
		source:        "Generic",
		voucherPrefix: "GEN",
		defaultBuyer:  "Sale through Generic",
		chains:        genericChains,
	}
}
