// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/notekeeper/internal/config"
	"github.com/MKhiriev/notekeeper/internal/logger"
	"github.com/MKhiriev/notekeeper/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter]
// for the server at cfg.HTTPAddress. An address without a scheme is taken
// as plain http.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	logger.Debug().Str("base_url", baseURL).Msg("http server adapter created")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidURL
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// authedRequest returns a request carrying the bearer token, if one is set.
// Without a token the server treats the caller as anonymous.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpServerAdapter) RegisterDevice(ctx context.Context, device models.Device) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RegisterDeviceRequest{Alias: device.Alias, PublicKey: device.PublicKey}).
		Post("/api/devices")
	if err != nil {
		return fmt.Errorf("register device request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetDeviceAliases(ctx context.Context) ([]models.DeviceAlias, error) {
	var aliases []models.DeviceAlias

	resp, err := h.authedRequest(ctx).
		SetResult(&aliases).
		Get("/api/devices")
	if err != nil {
		return nil, fmt.Errorf("get device aliases request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return aliases, nil
}

func (h *httpServerAdapter) GetDevices(ctx context.Context) ([]models.Device, error) {
	var devices []models.Device

	resp, err := h.authedRequest(ctx).
		SetResult(&devices).
		Get("/api/devices/keys")
	if err != nil {
		return nil, fmt.Errorf("get devices request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return devices, nil
}

func (h *httpServerAdapter) DeleteDevice(ctx context.Context, alias models.DeviceAlias) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("alias", string(alias)).
		Delete("/api/devices/{alias}")
	if err != nil {
		return fmt.Errorf("delete device request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetNotes(ctx context.Context) ([]models.EncryptedNote, error) {
	var notes []models.EncryptedNote

	resp, err := h.authedRequest(ctx).
		SetResult(&notes).
		Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("get notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

func (h *httpServerAdapter) AddNote(ctx context.Context, data string) (models.EncryptedNote, error) {
	var note models.EncryptedNote

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AddNoteRequest{Data: data}).
		SetResult(&note).
		Post("/api/notes")
	if err != nil {
		return models.EncryptedNote{}, fmt.Errorf("add note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedNote{}, err
	}

	return note, nil
}

// UpdateNote returns [ErrNotFound] (wrapped) when the caller has no note with
// note.ID.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, note models.EncryptedNote) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(note).
		Put("/api/notes")
	if err != nil {
		return fmt.Errorf("update note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, id models.NoteID) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id.String()).
		Delete("/api/notes/{id}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
