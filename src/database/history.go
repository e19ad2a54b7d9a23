package database

import "database/sql"

// ConversionBatch is one line of conversion history. Only batch metadata is
// stored; voucher rows live and die with the request.
type ConversionBatch struct {
	ID          string `json:"id"`
	CreatedAt   string `json:"created_at"`
	SellerState string `json:"seller_state"`
	SourceFiles string `json:"source_files"`
	RowCount    int    `json:"row_count"`
	Skipped     int    `json:"skipped_count"`
}

func InsertConversionBatch(db *sql.DB, batch ConversionBatch) error {
	_, err := db.Exec(
		`INSERT INTO conversion_batches (id, created_at, seller_state, source_files, row_count, skipped_count) VALUES (?, ?, ?, ?, ?, ?)`,
		batch.ID, batch.CreatedAt, batch.SellerState, batch.SourceFiles, batch.RowCount, batch.Skipped,
	)
	return err
}

func ListConversionBatches(db *sql.DB, limit int) ([]ConversionBatch, error) {
	rows, err := db.Query(
		`SELECT id, created_at, seller_state, source_files, row_count, skipped_count
		 FROM conversion_batches ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []ConversionBatch
	for rows.Next() {
		var b ConversionBatch
		if err := rows.Scan(&b.ID, &b.CreatedAt, &b.SellerState, &b.SourceFiles, &b.RowCount, &b.Skipped); err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}
