package api

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/skundu42/doom-backend/internal/logger"
	"github.com/skundu42/doom-backend/internal/port"
)

// WebhookSignatureHeader carries the shared secret configured with the
// stream provider.
const WebhookSignatureHeader = "Webhook-Signature"

type StreamWebhookRequest struct {
	UID             string   `json:"uid"`
	ReadyToStream   *bool    `json:"readyToStream,omitempty"`
	DurationSeconds *float64 `json:"duration,omitempty"`
	Status          *string  `json:"status,omitempty"`
}

type webhookAck struct {
	OK bool `json:"ok"`
}

// StreamWebhookHandler is the provider-push reconciliation entry point. A
// policy violation is handled, not surfaced: the provider always gets a 200
// so it stops retrying. Only infrastructure failures return 5xx (the
// provider's retry is the recovery path there).
func StreamWebhookHandler(svc port.WebhookApplier, secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if secret != "" {
			given := r.Header.Get(WebhookSignatureHeader)
			if subtle.ConstantTimeCompare([]byte(given), []byte(secret)) != 1 {
				WriteError(w, http.StatusUnauthorized, "invalid webhook signature", nil)
				return
			}
		}

		var req StreamWebhookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}
		if req.UID == "" {
			WriteError(w, http.StatusBadRequest, "uid is required", nil)
			return
		}

		err := svc.ApplyWebhook(r.Context(), port.WebhookInput{
			UID:             req.UID,
			ReadyToStream:   req.ReadyToStream,
			DurationSeconds: req.DurationSeconds,
			State:           req.Status,
		})
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not apply webhook", err)
			return
		}

		RespondJSON(w, http.StatusOK, webhookAck{OK: true})
		logger.Infof(r.Context(), "✅  Applied stream webhook for video %q", req.UID)
	}
}
