package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/tallybridge/src/converters"
	"github.com/username/tallybridge/src/logger"
	"github.com/username/tallybridge/src/tally"
)

const metaTimestampFormat = "2006-01-02 15:04:05 UTC"

// ConvertAll runs the whole batch through the per-marketplace converters.
//
// Converter selection is by filename hint; inputs a converter cannot process
// (error or zero rows) are skipped with a diagnostic while the batch
// continues. The batch itself fails only on a missing seller state or when no
// input yields any row. Output preserves input order, and each converter's
// row order within its block.
func ConvertAll(inputs []NamedTable, sellerState string) (*ConversionResult, error) {
	return convertBatch(converters.ForFilename, inputs, sellerState)
}

// ConvertAllUsing forces one converter for every input, bypassing filename
// selection. Used by the CLI when the caller names the source explicitly.
func ConvertAllUsing(conv converters.Converter, inputs []NamedTable, sellerState string) (*ConversionResult, error) {
	return convertBatch(func(string) converters.Converter { return conv }, inputs, sellerState)
}

func convertBatch(pick func(filename string) converters.Converter, inputs []NamedTable, sellerState string) (*ConversionResult, error) {
	if strings.TrimSpace(sellerState) == "" {
		return nil, ErrMissingSellerState
	}

	var (
		allRows []tally.VoucherRow
		sources []string
		skipped []SkippedInput
	)

	for _, input := range inputs {
		conv := pick(input.Filename)

		rows, err := conv.Convert(input.Table, sellerState)
		if err != nil {
			warn("Skipping input: converter failed", "filename", input.Filename, "source", conv.Source(), "error", err)
			skipped = append(skipped, SkippedInput{
				Filename: input.Filename,
				Reason:   fmt.Sprintf("%s converter failed: %v", conv.Source(), err),
			})
			continue
		}
		if len(rows) == 0 {
			warn("Skipping input: converter returned no rows", "filename", input.Filename, "source", conv.Source())
			skipped = append(skipped, SkippedInput{
				Filename: input.Filename,
				Reason:   fmt.Sprintf("%s converter returned no rows", conv.Source()),
			})
			continue
		}

		allRows = append(allRows, rows...)
		sources = append(sources, input.Filename)
	}

	if len(allRows) == 0 {
		return nil, ErrNoRowsConverted
	}

	return &ConversionResult{
		Rows:    allRows,
		Sources: sources,
		Skipped: skipped,
		Meta: ConversionMeta{
			GeneratedOn: time.Now().UTC().Format(metaTimestampFormat),
			SourceFiles: strings.Join(sources, ", "),
			SellerState: sellerState,
		},
	}, nil
}

func warn(msg string, args ...any) {
	if logger.L != nil {
		logger.L.Warn(msg, args...)
	}
}
