package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tallyconvert",
	Short: "Convert marketplace sales reports into Tally voucher workbooks",
	Long: `tallyconvert converts heterogeneous e-commerce sales reports (Amazon,
Flipkart, Meesho, TCS, or unknown sources) into a single Tally-compatible
voucher workbook, applying the CGST/SGST vs IGST split against the seller's
state.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(versionCmd)
}
