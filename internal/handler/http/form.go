package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/able-wong/firekit/internal/logger"
	"github.com/able-wong/firekit/internal/utils"
	"github.com/able-wong/firekit/models"
)

// submitForm accepts the demo contact form. Submissions are validated,
// logged, and acknowledged with a receipt; nothing is persisted.
func (h *Handler) submitForm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var submission models.FormSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := submission.Validate(); err != nil {
		log.Err(err).Msg("form submission rejected")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	receipt := models.FormReceipt{
		ReceiptID:  utils.NewUUIDGenerator().Generate(),
		ReceivedAt: time.Now().UTC().Format(time.RFC3339),
	}

	log.Info().
		Fields(logger.Normalize(map[string]any{
			"receiptId": receipt.ReceiptID,
			"name":      submission.Name,
			"email":     submission.Email,
		})).
		Msg("form submission received")

	utils.WriteJSON(w, receipt, http.StatusCreated)
}
