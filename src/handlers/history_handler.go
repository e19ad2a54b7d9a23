package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/username/tallybridge/src/database"
	"github.com/username/tallybridge/src/logger"
	"github.com/username/tallybridge/src/utils"
)

const historyLimit = 50

type HistoryHandler struct{}

func NewHistoryHandler() *HistoryHandler { return &HistoryHandler{} }

// HandleGetHistory lists recent conversion batches, newest first.
func (h *HistoryHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	batches, err := database.ListConversionBatches(database.DB, historyLimit)
	if err != nil {
		logger.L.Error("Failed to list conversion batches", "error", err)
		utils.SendJSONError(w, "Failed to load conversion history", http.StatusInternalServerError)
		return
	}
	if batches == nil {
		batches = []database.ConversionBatch{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(batches); err != nil {
		logger.L.Error("Error encoding JSON response for history", "error", err)
	}
}
