package services

import (
	"errors"
	"io"

	"github.com/username/tallybridge/src/models"
	"github.com/username/tallybridge/src/tally"
)

var (
	// ErrMissingSellerState aborts a batch before any conversion: the seller
	// state is required for GST-split correctness.
	ErrMissingSellerState = errors.New("seller state is required to split GST (CGST/SGST vs IGST)")
	// ErrNoRowsConverted aborts a batch when no input yielded any voucher row.
	ErrNoRowsConverted = errors.New("no valid data parsed from uploaded files")
	// ErrWorkbookNotFound means the download link expired or never existed.
	ErrWorkbookNotFound = errors.New("workbook not found or expired")
)

// NamedTable pairs an input table with the filename used for converter
// selection.
type NamedTable struct {
	Table    *models.Table
	Filename string
}

// SkippedInput records one input that was dropped while the batch continued.
type SkippedInput struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// ConversionMeta describes one conversion run, written to the workbook's
// metadata sheet.
type ConversionMeta struct {
	GeneratedOn string `json:"generated_on"`
	SourceFiles string `json:"source_files"`
	SellerState string `json:"seller_state"`
}

// ConversionResult is the combined output of one batch: all voucher rows in
// input order, the contributing sources, and any per-input diagnostics.
type ConversionResult struct {
	Rows    []tally.VoucherRow `json:"rows"`
	Sources []string           `json:"sources"`
	Skipped []SkippedInput     `json:"skipped"`
	Meta    ConversionMeta     `json:"meta"`
}

// UploadedFile is one file from a conversion request.
type UploadedFile struct {
	Name   string
	Reader io.Reader
}

// BatchSummary is the response body for a successful conversion request.
type BatchSummary struct {
	BatchID       string         `json:"batch_id"`
	FileName      string         `json:"file_name"`
	RowCount      int            `json:"row_count"`
	Sources       []string       `json:"sources"`
	Skipped       []SkippedInput `json:"skipped,omitempty"`
	DownloadToken string         `json:"download_token"`
}

// UploadService is the core conversion pipeline behind the HTTP handlers.
type UploadService interface {
	ProcessUpload(files []UploadedFile, sellerState string) (*BatchSummary, error)
	// GetWorkbook returns the cached workbook bytes and download filename.
	GetWorkbook(batchID string) ([]byte, string, error)
}
