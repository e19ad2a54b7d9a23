package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/username/tallybridge/src/database"
	"github.com/username/tallybridge/src/logger"
	"github.com/username/tallybridge/src/readers"
	"github.com/username/tallybridge/src/security"
	"github.com/username/tallybridge/src/writers"
)

// storedWorkbook is what the download handler retrieves later.
type storedWorkbook struct {
	Bytes    []byte
	FileName string
}

type uploadServiceImpl struct {
	workbookCache *cache.Cache
	tokenService  *security.TokenService
}

func NewUploadService(workbookCache *cache.Cache, tokenService *security.TokenService) UploadService {
	return &uploadServiceImpl{
		workbookCache: workbookCache,
		tokenService:  tokenService,
	}
}

func (s *uploadServiceImpl) ProcessUpload(files []UploadedFile, sellerState string) (*BatchSummary, error) {
	overallStartTime := time.Now()
	logger.L.Info("ProcessUpload START", "fileCount", len(files), "sellerState", sellerState)

	var (
		inputs      []NamedTable
		readSkipped []SkippedInput
	)
	for _, file := range files {
		table, err := readers.ReadTable(file.Reader, file.Name)
		if err != nil {
			logger.L.Warn("Skipping input: failed to read", "filename", file.Name, "error", err)
			readSkipped = append(readSkipped, SkippedInput{
				Filename: file.Name,
				Reason:   fmt.Sprintf("failed to read: %v", err),
			})
			continue
		}
		inputs = append(inputs, NamedTable{Table: table, Filename: file.Name})
	}

	result, err := ConvertAll(inputs, sellerState)
	if err != nil {
		return nil, err
	}
	result.Skipped = append(readSkipped, result.Skipped...)

	workbook, err := writers.BuildWorkbook(result.Rows, writers.Metadata{
		GeneratedOn: result.Meta.GeneratedOn,
		SourceFiles: result.Meta.SourceFiles,
		SellerState: result.Meta.SellerState,
	})
	if err != nil {
		return nil, fmt.Errorf("error building output workbook: %w", err)
	}
	workbookBytes, err := writers.WorkbookBytes(workbook)
	if err != nil {
		return nil, fmt.Errorf("error serializing output workbook: %w", err)
	}

	batchID := uuid.NewString()
	fileName := fmt.Sprintf("tally_vouchers_%s.xlsx", time.Now().Format("20060102_150405"))
	s.workbookCache.Set(batchID, storedWorkbook{Bytes: workbookBytes, FileName: fileName}, cache.DefaultExpiration)

	// History is metadata only; voucher rows are never persisted.
	if database.DB != nil {
		if err := database.InsertConversionBatch(database.DB, database.ConversionBatch{
			ID:          batchID,
			CreatedAt:   result.Meta.GeneratedOn,
			SellerState: result.Meta.SellerState,
			SourceFiles: result.Meta.SourceFiles,
			RowCount:    len(result.Rows),
			Skipped:     len(result.Skipped),
		}); err != nil {
			logger.L.Error("Failed to record conversion batch", "batchID", batchID, "error", err)
		}
	}

	token, err := s.tokenService.GenerateDownloadToken(batchID)
	if err != nil {
		return nil, fmt.Errorf("error signing download token: %w", err)
	}

	logger.L.Info("ProcessUpload END",
		"batchID", batchID,
		"rows", len(result.Rows),
		"skipped", len(result.Skipped),
		"duration", time.Since(overallStartTime))

	return &BatchSummary{
		BatchID:       batchID,
		FileName:      fileName,
		RowCount:      len(result.Rows),
		Sources:       result.Sources,
		Skipped:       result.Skipped,
		DownloadToken: token,
	}, nil
}

func (s *uploadServiceImpl) GetWorkbook(batchID string) ([]byte, string, error) {
	entry, found := s.workbookCache.Get(batchID)
	if !found {
		return nil, "", ErrWorkbookNotFound
	}
	stored, ok := entry.(storedWorkbook)
	if !ok {
		return nil, "", ErrWorkbookNotFound
	}
	return stored.Bytes, stored.FileName, nil
}
