package tally

import (
	"strings"

	"github.com/username/tallybridge/src/utils"
)

// DefaultGSTRate is applied when a source report carries no tax column.
// Per-HSN rate tables are deliberately not modeled.
const DefaultGSTRate = 0.18

// SplitTax decides the GST breakup for one voucher line.
//
// When seller and buyer state match (case-insensitive, trimmed, both
// non-empty) the sale is intra-state: CGST and SGST each take half the tax.
// Any other case, including a missing state on either side, is treated as
// inter-state and the full tax goes to IGST.
func SplitTax(taxAmount float64, sellerState, buyerState string) (cgst, sgst, igst float64) {
	seller := strings.ToLower(strings.TrimSpace(sellerState))
	buyer := strings.ToLower(strings.TrimSpace(buyerState))

	if seller != "" && buyer != "" && seller == buyer {
		half := utils.RoundFloat(taxAmount/2, 2)
		return half, half, 0
	}
	return 0, 0, utils.RoundFloat(taxAmount, 2)
}
