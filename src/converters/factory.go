package converters

import (
	"fmt"
	"strings"
)

// registry lists known marketplaces in selection priority order; the first
// token found in the filename wins.
var registry = []struct {
	token string
	build func() Converter
}{
	{"amazon", NewAmazonConverter},
	{"flipkart", NewFlipkartConverter},
	{"meesho", NewMeeshoConverter},
	{"tcs", NewTCSConverter},
}

// ForFilename selects a converter by case-insensitive substring match against
// the input filename. Unrecognized names fall back to the generic converter.
func ForFilename(filename string) Converter {
	lower := strings.ToLower(filename)
	for _, entry := range registry {
		if strings.Contains(lower, entry.token) {
			return entry.build()
		}
	}
	return NewGenericConverter()
}

// Get returns the converter for an explicit source name, as used by the CLI.
func Get(source string) (Converter, error) {
	switch strings.ToLower(source) {
	case "amazon":
		return NewAmazonConverter(), nil
	case "flipkart":
		return NewFlipkartConverter(), nil
	case "meesho":
		return NewMeeshoConverter(), nil
	case "tcs":
		return NewTCSConverter(), nil
	case "generic":
		return NewGenericConverter(), nil
	default:
		return nil, fmt.Errorf("no converter available for source: %s", source)
	}
}

// Sources lists the explicit source names Get accepts.
func Sources() []string {
	return []string{"amazon", "flipkart", "meesho", "tcs", "generic"}
}
