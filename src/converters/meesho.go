package converters

// Meesho forward reports key line items by sub order number and call the
// buyer's state "customer state" (older exports: "end customer state").
var meeshoChains = FieldChains{
	VoucherNo:   []string{"sub order no", "order no", "invoice no"},
	VoucherDate: []string{"order date", "invoice date"},
	BuyerState:  []string{"customer state", "end customer state", "state"},
	BuyerName:   []string{"customer name", "end customer name"},
	GSTNumber:   []string{"gstin", "customer gstin"},
	ItemName:    []string{"product name", "sku", "product sku"},
	HSN:         []string{"hsn code", "hsn"},
	Quantity:    []string{"quantity", "qty"},
	Rate:        []string{"supplier listed price", "price"},
	Amount:      []string{"taxable value", "supplier discounted price", "total invoice value"},
	TaxAmount:   []string{"tax amount", "gst amount"},
}

// NewMeeshoConverter converts Meesho supplier sales reports.
func NewMeeshoConverter() Converter {
	return &chainConverter{
		source:        "Meesho",
		voucherPrefix: "MSH",
		defaultBuyer:  "Sale through Meesho",
		chains:        meeshoChains,
	}
}
