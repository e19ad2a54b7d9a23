package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/username/tallybridge/src/config"
	"github.com/username/tallybridge/src/logger"
	"github.com/username/tallybridge/src/security"
	"github.com/username/tallybridge/src/security/validation"
	"github.com/username/tallybridge/src/services"
	"github.com/username/tallybridge/src/utils"
)

type ConvertHandler struct {
	uploadService services.UploadService
	tokenService  *security.TokenService
}

func NewConvertHandler(service services.UploadService, tokens *security.TokenService) *ConvertHandler {
	return &ConvertHandler{
		uploadService: service,
		tokenService:  tokens,
	}
}

// HandleConvert accepts a multipart batch of marketplace reports plus the
// seller_state form field, and responds with a batch summary carrying a
// signed download token for the generated workbook.
func (h *ConvertHandler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(config.Cfg.MaxUploadSizeBytes); err != nil {
		logger.L.Warn("Failed to parse multipart form or request too large", "error", err, "limit", config.Cfg.MaxUploadSizeBytes)
		utils.SendJSONError(w, fmt.Sprintf("Failed to parse form or request too large (max %d MB)", config.Cfg.MaxUploadSizeBytes/(1024*1024)), http.StatusBadRequest)
		return
	}

	sellerState := strings.TrimSpace(r.FormValue("seller_state"))
	if sellerState == "" {
		sellerState = config.Cfg.SellerState
	}
	if sellerState == "" {
		utils.SendJSONError(w, "Seller state is required to correctly split GST (CGST/SGST vs IGST).", http.StatusBadRequest)
		return
	}

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		utils.SendJSONError(w, "No files uploaded. Please attach CSV/XLSX files under the 'files' field.", http.StatusBadRequest)
		return
	}

	var uploads []services.UploadedFile
	for _, fileHeader := range fileHeaders {
		if fileHeader.Filename == "" {
			continue
		}
		if err := validation.ValidateUploadExtension(fileHeader.Filename); err != nil {
			logger.L.Warn("Rejecting file by extension", "filename", fileHeader.Filename, "error", err)
			utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := validation.ValidateClientContentType(fileHeader.Header.Get("Content-Type")); err != nil {
			utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			logger.L.Warn("Failed to open uploaded file", "filename", fileHeader.Filename, "error", err)
			utils.SendJSONError(w, fmt.Sprintf("Failed to read uploaded file %s", fileHeader.Filename), http.StatusBadRequest)
			return
		}
		defer file.Close()

		if _, err := validation.ValidateFileContentByMagicBytes(file); err != nil {
			logger.L.Warn("Server-side file content validation failed", "filename", fileHeader.Filename, "error", err)
			utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		uploads = append(uploads, services.UploadedFile{Name: fileHeader.Filename, Reader: file})
	}

	summary, err := h.uploadService.ProcessUpload(uploads, sellerState)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingSellerState):
			utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, services.ErrNoRowsConverted):
			utils.SendJSONError(w, "No valid data parsed from uploaded files. Check file formats or column names.", http.StatusUnprocessableEntity)
		default:
			logger.L.Error("Internal error processing conversion batch", "error", err)
			utils.SendJSONError(w, "An internal error occurred during conversion. Please try again later.", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		logger.L.Error("Error encoding JSON response for conversion summary", "batchID", summary.BatchID, "error", err)
	}
}

// HandleDownload streams a previously generated workbook. The token query
// parameter must be a valid download token from a conversion response.
func (h *ConvertHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	tokenString := r.URL.Query().Get("token")
	if tokenString == "" {
		utils.SendJSONError(w, "Missing download token", http.StatusBadRequest)
		return
	}

	batchID, err := h.tokenService.ValidateDownloadToken(tokenString)
	if err != nil {
		logger.L.Warn("Download token validation failed", "error", err)
		utils.SendJSONError(w, "Invalid or expired download token", http.StatusUnauthorized)
		return
	}

	workbookBytes, fileName, err := h.uploadService.GetWorkbook(batchID)
	if err != nil {
		if errors.Is(err, services.ErrWorkbookNotFound) {
			utils.SendJSONError(w, "Workbook expired or not found. Convert again.", http.StatusNotFound)
			return
		}
		logger.L.Error("Failed to fetch workbook", "batchID", batchID, "error", err)
		utils.SendJSONError(w, "Failed to fetch workbook", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	if _, err := w.Write(workbookBytes); err != nil {
		logger.L.Error("Error streaming workbook", "batchID", batchID, "error", err)
	}
}
