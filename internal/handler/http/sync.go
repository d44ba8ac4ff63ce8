package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/scale-sync/internal/app"
	"github.com/MKhiriev/scale-sync/internal/logger"
	"github.com/MKhiriev/scale-sync/internal/service"
	"github.com/MKhiriev/scale-sync/internal/utils"
	"github.com/MKhiriev/scale-sync/models"
)

// statusResponse is the body of GET /api/status.
type statusResponse struct {
	Status     string             `json:"status"`
	LastResult *models.SyncResult `json:"last_result,omitempty"`
}

// triggerSync runs one on-demand sync and answers with its result. The run
// is detached from the request so a disconnecting client does not abort it.
func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	result := h.services.SyncJob.Trigger(context.WithoutCancel(r.Context()))
	if !result.Success {
		log.Warn().Str("func", "*Handler.triggerSync").Str("message", result.Message).Msg("on-demand sync failed")
	}

	utils.WriteJSON(w, result, statusFromResult(result))
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	result, ok := h.services.SyncService.LastResult()
	if !ok {
		utils.WriteJSON(w, statusResponse{Status: app.MsgNeverSynced}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, statusResponse{Status: statusText(result), LastResult: &result}, http.StatusOK)
}

// statusText renders a result the way a status line would show it.
func statusText(result models.SyncResult) string {
	if result.Success {
		text := app.MsgLastSyncSucceeded
		if result.Message != "" {
			text += app.MsgWithWarningsSuffix
		}
		return text
	}
	return app.MsgLastSyncFailedPrefix + result.Message
}

func statusFromResult(result models.SyncResult) int {
	switch {
	case result.Success:
		return http.StatusOK
	case result.Message == service.ErrSyncInProgress.Error():
		return http.StatusConflict
	case result.Message == service.ErrMissingCredentials.Error():
		return http.StatusPreconditionFailed
	case result.Message == service.ErrHealthStoreUnavailable.Error():
		return http.StatusServiceUnavailable
	case strings.Contains(result.Message, "timeout"):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}
