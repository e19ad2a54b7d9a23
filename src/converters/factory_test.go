package converters

import "testing"

func TestForFilename(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"Amazon_B2B_Jan.csv", "Amazon"},
		{"FLIPKART-sales.xlsx", "Flipkart"},
		{"meesho_forward_report.csv", "Meesho"},
		{"tcs_recon_2024.xls", "TCS"},
		{"random_marketplace.csv", "Generic"},
		{"sales.csv", "Generic"},
		// amazon outranks flipkart in the priority order
		{"amazon_vs_flipkart.csv", "Amazon"},
	}

	for _, tc := range cases {
		t.Run(tc.filename, func(t *testing.T) {
			if got := ForFilename(tc.filename).Source(); got != tc.want {
				t.Errorf("ForFilename(%q) = %s, want %s", tc.filename, got, tc.want)
			}
		})
	}
}

func TestGet(t *testing.T) {
	for _, source := range Sources() {
		if _, err := Get(source); err != nil {
			t.Errorf("Get(%q) failed: %v", source, err)
		}
	}
	if _, err := Get("ebay"); err == nil {
		t.Error("Get must fail for unknown sources")
	}
}
