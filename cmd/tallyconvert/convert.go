package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/username/tallybridge/src/converters"
	"github.com/username/tallybridge/src/readers"
	"github.com/username/tallybridge/src/services"
	"github.com/username/tallybridge/src/writers"
)

var (
	sellerState string
	sourceName  string
	profilePath string
	outputPath  string
)

// Profile is an optional YAML seller profile so repeat runs don't need flags.
type Profile struct {
	SellerState string `yaml:"seller_state"`
	OutputDir   string `yaml:"output_dir"`
}

var convertCmd = &cobra.Command{
	Use:   "convert <file>...",
	Short: "Convert one or more report files into a Tally voucher workbook",
	Long: `Convert reads the given CSV/XLSX report files, selects a converter per file
by filename hint (amazon, flipkart, meesho, tcs; anything else falls back to
the generic converter), and writes a single workbook with Sales, Sales Return
and _metadata sheets.

Use --source to force one converter for every file instead of filename hints.`,
	Example: `  tallyconvert convert Amazon_B2B.csv --state "Uttar Pradesh"
  tallyconvert convert report.xlsx --state Maharashtra --source tcs
  tallyconvert convert *.csv --profile seller.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args)
	},
}

func init() {
	convertCmd.Flags().StringVar(&sellerState, "state", "", "seller state used for the GST split (required unless set in the profile)")
	convertCmd.Flags().StringVar(&sourceName, "source", "", fmt.Sprintf("force a converter for all files (%s)", strings.Join(converters.Sources(), ", ")))
	convertCmd.Flags().StringVar(&profilePath, "profile", "", "path to a YAML seller profile (seller_state, output_dir)")
	convertCmd.Flags().StringVarP(&outputPath, "out", "o", "", "output .xlsx path (default tally_vouchers_<timestamp>.xlsx)")
}

func runConvert(files []string) error {
	state := sellerState
	outputDir := "."
	if profilePath != "" {
		profile, err := loadProfile(profilePath)
		if err != nil {
			return err
		}
		if state == "" {
			state = profile.SellerState
		}
		if profile.OutputDir != "" {
			outputDir = profile.OutputDir
		}
	}

	var inputs []services.NamedTable
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("cannot open %s: %w", path, err)
		}
		table, err := readers.ReadTable(f, filepath.Base(path))
		f.Close()
		if err != nil {
			return err
		}
		inputs = append(inputs, services.NamedTable{Table: table, Filename: filepath.Base(path)})
	}

	var (
		result *services.ConversionResult
		err    error
	)
	if sourceName != "" {
		conv, convErr := converters.Get(sourceName)
		if convErr != nil {
			return convErr
		}
		result, err = services.ConvertAllUsing(conv, inputs, state)
	} else {
		result, err = services.ConvertAll(inputs, state)
	}
	if err != nil {
		return err
	}

	for _, skip := range result.Skipped {
		fmt.Fprintf(os.Stderr, "skipped %s: %s\n", skip.Filename, skip.Reason)
	}

	workbook, err := writers.BuildWorkbook(result.Rows, writers.Metadata{
		GeneratedOn: result.Meta.GeneratedOn,
		SourceFiles: result.Meta.SourceFiles,
		SellerState: result.Meta.SellerState,
	})
	if err != nil {
		return err
	}

	out := outputPath
	if out == "" {
		out = filepath.Join(outputDir, fmt.Sprintf("tally_vouchers_%s.xlsx", time.Now().Format("20060102_150405")))
	}
	if err := workbook.SaveAs(out); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	fmt.Printf("Converted %d row(s) from %d file(s) -> %s\n", len(result.Rows), len(result.Sources), out)
	return nil
}

func loadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read profile %s: %w", path, err)
	}
	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return &profile, nil
}
