// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/notekeeper/internal/logger"
	"github.com/MKhiriev/notekeeper/internal/service"
	"github.com/MKhiriev/notekeeper/models"
)

// Handler is the root gRPC transport handler. It implements [NotesServer] by
// delegating to the service layer.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

// NewHandler constructs a [Handler].
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register adds notekeeper.Notes to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&NotesServiceDesc, h)
}

// ServerOptions returns the interceptor chain the handler relies on.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withTraceID, h.withLogging, h.identify),
	}
}

func (h *Handler) RegisterDevice(ctx context.Context, in *models.RegisterDeviceRequest) (*Empty, error) {
	device := models.Device{Alias: in.Alias, PublicKey: in.PublicKey}
	if err := h.services.DeviceService.RegisterDevice(ctx, device); err != nil {
		return nil, statusFromError(ctx, "*Handler.RegisterDevice", err)
	}

	return &Empty{}, nil
}

func (h *Handler) GetDeviceAliases(ctx context.Context, _ *Empty) (*GetDeviceAliasesResponse, error) {
	aliases, err := h.services.DeviceService.GetDeviceAliases(ctx)
	if err != nil {
		return nil, statusFromError(ctx, "*Handler.GetDeviceAliases", err)
	}

	return &GetDeviceAliasesResponse{Aliases: aliases}, nil
}

func (h *Handler) GetDevices(ctx context.Context, _ *Empty) (*GetDevicesResponse, error) {
	devices, err := h.services.DeviceService.GetDevices(ctx)
	if err != nil {
		return nil, statusFromError(ctx, "*Handler.GetDevices", err)
	}

	return &GetDevicesResponse{Devices: devices}, nil
}

func (h *Handler) DeleteDevice(ctx context.Context, in *DeleteDeviceRequest) (*Empty, error) {
	if err := h.services.DeviceService.DeleteDevice(ctx, in.Alias); err != nil {
		return nil, statusFromError(ctx, "*Handler.DeleteDevice", err)
	}

	return &Empty{}, nil
}

func (h *Handler) GetNotes(ctx context.Context, _ *Empty) (*GetNotesResponse, error) {
	notes, err := h.services.NoteService.GetNotes(ctx)
	if err != nil {
		return nil, statusFromError(ctx, "*Handler.GetNotes", err)
	}

	return &GetNotesResponse{Notes: notes}, nil
}

func (h *Handler) AddNote(ctx context.Context, in *models.AddNoteRequest) (*models.EncryptedNote, error) {
	note, err := h.services.NoteService.AddNote(ctx, in.Data)
	if err != nil {
		return nil, statusFromError(ctx, "*Handler.AddNote", err)
	}

	return &note, nil
}

func (h *Handler) UpdateNote(ctx context.Context, in *models.EncryptedNote) (*Empty, error) {
	if err := h.services.NoteService.UpdateNote(ctx, *in); err != nil {
		return nil, statusFromError(ctx, "*Handler.UpdateNote", err)
	}

	return &Empty{}, nil
}

func (h *Handler) DeleteNote(ctx context.Context, in *DeleteNoteRequest) (*Empty, error) {
	if err := h.services.NoteService.DeleteNote(ctx, in.ID); err != nil {
		return nil, statusFromError(ctx, "*Handler.DeleteNote", err)
	}

	return &Empty{}, nil
}

func (h *Handler) GetVersion(ctx context.Context, _ *Empty) (*GetVersionResponse, error) {
	return &GetVersionResponse{Version: h.services.AppInfoService.GetAppVersion(ctx)}, nil
}
