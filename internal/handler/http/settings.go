package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/settings"
	"github.com/MKhiriev/go-prefs-keeper/internal/utils"
)

// settingPayload is the wire form of a setting. Value is the same text the
// prefs set command accepts for Kind.
type settingPayload struct {
	Key   string        `json:"key,omitempty"`
	Kind  settings.Kind `json:"kind"`
	Value string        `json:"value"`
}

func (h *Handler) getSetting(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	key := chi.URLParam(r, "key")

	kind := settings.KindString
	if k := r.URL.Query().Get("kind"); k != "" {
		parsed, err := settings.ParseKind(k)
		if err != nil {
			log.Err(err).Str("func", "*Handler.getSetting").Msg("invalid kind was passed")
			http.Error(w, "invalid kind was passed", http.StatusBadRequest)
			return
		}
		kind = parsed
	}

	value, err := h.services.SettingsService.Get(r.Context(), key, kind)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSetting").Str("key", key).Msg("error getting setting")
		http.Error(w, "error getting setting", statusFromError(err))
		return
	}

	resp := settingPayload{Key: key, Kind: value.Kind, Value: value.Format()}
	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getSetting").Msg("error writing response")
	}
}

func (h *Handler) putSetting(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	key := chi.URLParam(r, "key")

	var payload settingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Str("func", "*Handler.putSetting").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	kind, err := settings.ParseKind(string(payload.Kind))
	if err != nil {
		http.Error(w, "invalid kind was passed", http.StatusBadRequest)
		return
	}
	value, err := settings.ParseValue(kind, payload.Value)
	if err != nil {
		log.Err(err).Str("func", "*Handler.putSetting").Str("key", key).Msg("invalid value was passed")
		http.Error(w, "invalid value was passed", http.StatusBadRequest)
		return
	}

	if err = h.services.SettingsService.Set(r.Context(), key, value); err != nil {
		log.Err(err).Str("func", "*Handler.putSetting").Str("key", key).Msg("error storing setting")
		http.Error(w, "error storing setting", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteSetting(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	key := chi.URLParam(r, "key")

	if err := h.services.SettingsService.Delete(r.Context(), key); err != nil {
		log.Err(err).Str("func", "*Handler.deleteSetting").Str("key", key).Msg("error deleting setting")
		http.Error(w, "error deleting setting", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
