// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/notekeeper/internal/config"
	"github.com/MKhiriev/notekeeper/internal/logger"
	"github.com/MKhiriev/notekeeper/internal/service"
	"github.com/MKhiriev/notekeeper/internal/store"
	"github.com/MKhiriev/notekeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAPI wires the real services around an in-memory store.
func newAPI(t *testing.T, mode string) (*Handler, func(models.Principal) string) {
	t.Helper()

	cfg := config.StructuredConfig{App: config.App{
		Version:          "test",
		RegistrationMode: mode,
		TokenSignKey:     "secret",
		TokenIssuer:      "notekeeper",
		TokenDuration:    time.Hour,
	}}

	services, err := service.NewServices(store.NewStorage(logger.Nop()), cfg, logger.Nop())
	require.NoError(t, err)

	tokenFor := func(p models.Principal) string {
		token, err := services.AuthService.CreateToken(context.Background(), p)
		require.NoError(t, err)
		return token.SignedString
	}

	return NewHandler(services, config.Server{RequestTimeout: time.Second}, logger.Nop()), tokenFor
}

func decodeNotes(t *testing.T, body []byte) []models.EncryptedNote {
	t.Helper()
	var notes []models.EncryptedNote
	require.NoError(t, json.Unmarshal(body, &notes))
	return notes
}

func TestAPI_RegisterThenListAliases(t *testing.T) {
	h, tokenFor := newAPI(t, config.RegistrationModeStrict)
	p := tokenFor("principal-p")

	rr := doRequest(t, h, http.MethodGet, "/api/devices", nil, p)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = doRequest(t, h, http.MethodPost, "/api/devices", models.RegisterDeviceRequest{Alias: "laptop", PublicKey: "K1"}, p)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doRequest(t, h, http.MethodGet, "/api/devices", nil, p)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `["laptop"]`, rr.Body.String())
}

func TestAPI_NoteLifecycle(t *testing.T) {
	h, tokenFor := newAPI(t, config.RegistrationModeStrict)
	p := tokenFor("principal-p")

	require.Equal(t, http.StatusCreated,
		doRequest(t, h, http.MethodPost, "/api/devices", models.RegisterDeviceRequest{Alias: "laptop", PublicKey: "K1"}, p).Code)

	for _, data := range []string{"cipherA", "cipherB"} {
		rr := doRequest(t, h, http.MethodPost, "/api/notes", models.AddNoteRequest{Data: data}, p)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	rr := doRequest(t, h, http.MethodGet, "/api/notes", nil, p)
	require.Equal(t, http.StatusOK, rr.Code)
	notes := decodeNotes(t, rr.Body.Bytes())
	require.Len(t, notes, 2)
	assert.Equal(t, "cipherA", notes[0].Data)
	assert.Equal(t, "cipherB", notes[1].Data)
	assert.NotEqual(t, notes[0].ID, notes[1].ID)

	updated := models.EncryptedNote{ID: notes[0].ID, Data: "y"}
	require.Equal(t, http.StatusNoContent, doRequest(t, h, http.MethodPut, "/api/notes", updated, p).Code)

	missing := models.EncryptedNote{ID: models.NewNoteID(999), Data: "z"}
	assert.Equal(t, http.StatusNotFound, doRequest(t, h, http.MethodPut, "/api/notes", missing, p).Code)

	assert.Equal(t, http.StatusNoContent, doRequest(t, h, http.MethodDelete, "/api/notes/999", nil, p).Code)
	assert.Equal(t, http.StatusNoContent, doRequest(t, h, http.MethodDelete, "/api/notes/"+notes[1].ID.String(), nil, p).Code)

	rr = doRequest(t, h, http.MethodGet, "/api/notes", nil, p)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []models.EncryptedNote{updated}, decodeNotes(t, rr.Body.Bytes()))
}

func TestAPI_AnonymousCaller(t *testing.T) {
	h, _ := newAPI(t, config.RegistrationModeOpen)

	assert.Equal(t, http.StatusUnauthorized,
		doRequest(t, h, http.MethodPost, "/api/notes", models.AddNoteRequest{Data: "x"}, "").Code)
	assert.Equal(t, http.StatusUnauthorized,
		doRequest(t, h, http.MethodPost, "/api/devices", models.RegisterDeviceRequest{Alias: "laptop", PublicKey: "K1"}, "").Code)
}

func TestAPI_TenantIsolation(t *testing.T) {
	h, tokenFor := newAPI(t, config.RegistrationModeOpen)
	a, b := tokenFor("principal-a"), tokenFor("principal-b")

	require.Equal(t, http.StatusCreated,
		doRequest(t, h, http.MethodPost, "/api/notes", models.AddNoteRequest{Data: "secret"}, a).Code)

	rr := doRequest(t, h, http.MethodGet, "/api/notes", nil, b)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decodeNotes(t, rr.Body.Bytes()))

	assert.Equal(t, http.StatusNoContent, doRequest(t, h, http.MethodDelete, "/api/notes/1", nil, b).Code)

	rr = doRequest(t, h, http.MethodGet, "/api/notes", nil, a)
	assert.Len(t, decodeNotes(t, rr.Body.Bytes()), 1)
}
