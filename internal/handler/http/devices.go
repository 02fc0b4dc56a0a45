// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/notekeeper/models"
)

func (h *Handler) registerDevice(w http.ResponseWriter, r *http.Request) {
	var request models.RegisterDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, r, "*Handler.registerDevice", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	device := models.Device{Alias: request.Alias, PublicKey: request.PublicKey}
	if err := h.services.DeviceService.RegisterDevice(r.Context(), device); err != nil {
		writeError(w, r, "*Handler.registerDevice", err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) getDeviceAliases(w http.ResponseWriter, r *http.Request) {
	aliases, err := h.services.DeviceService.GetDeviceAliases(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getDeviceAliases", err)
		return
	}

	writeJSON(w, r, http.StatusOK, aliases)
}

func (h *Handler) getDevices(w http.ResponseWriter, r *http.Request) {
	devices, err := h.services.DeviceService.GetDevices(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getDevices", err)
		return
	}

	writeJSON(w, r, http.StatusOK, devices)
}

func (h *Handler) deleteDevice(w http.ResponseWriter, r *http.Request) {
	alias, err := pathParam(r, "alias")
	if err != nil {
		writeError(w, r, "*Handler.deleteDevice", fmt.Errorf("%w: %w", ErrInvalidAliasParam, err))
		return
	}

	if err = h.services.DeviceService.DeleteDevice(r.Context(), models.DeviceAlias(alias)); err != nil {
		writeError(w, r, "*Handler.deleteDevice", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathParam returns the decoded value of the URL parameter key. chi matches
// on RawPath when the request has one, leaving escapes such as %2F in place.
func pathParam(r *http.Request, key string) (string, error) {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value, nil
	}
	return url.PathUnescape(value)
}
