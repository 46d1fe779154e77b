// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-prefs-keeper/internal/domains"
	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/utils"
)

// getDomainList serves the decrypted domain list as newline separated
// text, the format the checker downloads as a remote list.
func (h *Handler) getDomainList(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	list, err := h.services.DomainService.List(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getDomainList").Msg("error getting domain list")
		http.Error(w, "error getting domain list", statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if err = domains.WriteText(w, list); err != nil {
		log.Err(err).Str("func", "*Handler.getDomainList").Msg("error writing domain list")
	}
}

// checkPage reports whether the host of the url query parameter is accepted.
func (h *Handler) checkPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	result, err := h.services.DomainService.Check(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.checkPage").Msg("error checking page url")
		http.Error(w, "error checking page url", statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.checkPage").Msg("error writing response")
	}
}
