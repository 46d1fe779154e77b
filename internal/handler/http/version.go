package http

import (
	"net/http"

	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/utils"
)

type versionResponse struct {
	Version         string `json:"version"`
	SettingsVersion int    `json:"settings_version"`
	Status          string `json:"status,omitempty"`
	ServeTime       string `json:"serve_time,omitempty"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetAppInfo(r.Context())

	resp := versionResponse{
		Version:         info.Version,
		SettingsVersion: info.SettingsVersion,
		Status:          info.Status,
	}
	if info.Status != "" {
		resp.ServeTime = info.ServeTime.String()
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing response")
	}
}
