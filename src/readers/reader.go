package readers

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/username/tallybridge/src/models"
)

// ReadTable decodes one uploaded report into an in-memory table, picking the
// decoder by file extension. The first row is always treated as the header.
func ReadTable(r io.Reader, filename string) (*models.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return readCSV(r, filename)
	case ".xls", ".xlsx":
		return readXLSX(r, filename)
	default:
		return nil, fmt.Errorf("unsupported file extension for %s", filename)
	}
}

func readCSV(r io.Reader, filename string) (*models.Table, error) {
	reader := csv.NewReader(r)
	// Marketplace exports are frequently ragged; tolerate varying field counts.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header of %s: %w", filename, err)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV records of %s: %w", filename, err)
	}

	return models.NewTable(filename, header, records), nil
}

func readXLSX(r io.Reader, filename string) (*models.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", filename, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", filename)
	}

	// Marketplace exports put the report on the first sheet.
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q of %s: %w", sheets[0], filename, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("workbook %s is empty", filename)
	}

	return models.NewTable(filename, rows[0], rows[1:]), nil
}
