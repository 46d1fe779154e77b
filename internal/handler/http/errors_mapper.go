package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-prefs-keeper/internal/crypto"
	"github.com/MKhiriev/go-prefs-keeper/internal/domains"
	"github.com/MKhiriev/go-prefs-keeper/internal/service"
	"github.com/MKhiriev/go-prefs-keeper/internal/settings"
	"github.com/MKhiriev/go-prefs-keeper/internal/store"
)

// errorStatuses is checked in order; the first sentinel found in the error
// chain decides the status.
var errorStatuses = []struct {
	target error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{settings.ErrUnsupportedType, http.StatusBadRequest},
	{settings.ErrInvalidValue, http.StatusBadRequest},

	{service.ErrSettingNotFound, http.StatusNotFound},
	{service.ErrNoDomainList, http.StatusNotFound},

	{store.ErrNotMigrated, http.StatusServiceUnavailable},
	{domains.ErrRemoteList, http.StatusBadGateway},

	{store.ErrCorruptedValue, http.StatusInternalServerError},
	{crypto.ErrDecode, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
