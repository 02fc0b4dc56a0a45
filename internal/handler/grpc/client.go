// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/notekeeper/models"
)

// NotesClient is the client side of notekeeper.Notes.
type NotesClient struct {
	cc grpc.ClientConnInterface
}

func NewNotesClient(cc grpc.ClientConnInterface) *NotesClient {
	return &NotesClient{cc: cc}
}

// WithToken returns ctx carrying token as the caller's bearer credentials.
func WithToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, authorizationMetadataKey, "Bearer "+token)
}

func (c *NotesClient) invoke(ctx context.Context, method string, in, out any, opts ...grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, fullMethod(method), in, out, opts...)
}

func (c *NotesClient) RegisterDevice(ctx context.Context, in *models.RegisterDeviceRequest, opts ...grpc.CallOption) error {
	return c.invoke(ctx, "RegisterDevice", in, new(Empty), opts...)
}

func (c *NotesClient) GetDeviceAliases(ctx context.Context, opts ...grpc.CallOption) ([]models.DeviceAlias, error) {
	out := new(GetDeviceAliasesResponse)
	if err := c.invoke(ctx, "GetDeviceAliases", &Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out.Aliases, nil
}

func (c *NotesClient) GetDevices(ctx context.Context, opts ...grpc.CallOption) ([]models.Device, error) {
	out := new(GetDevicesResponse)
	if err := c.invoke(ctx, "GetDevices", &Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out.Devices, nil
}

func (c *NotesClient) DeleteDevice(ctx context.Context, alias models.DeviceAlias, opts ...grpc.CallOption) error {
	return c.invoke(ctx, "DeleteDevice", &DeleteDeviceRequest{Alias: alias}, new(Empty), opts...)
}

func (c *NotesClient) GetNotes(ctx context.Context, opts ...grpc.CallOption) ([]models.EncryptedNote, error) {
	out := new(GetNotesResponse)
	if err := c.invoke(ctx, "GetNotes", &Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out.Notes, nil
}

func (c *NotesClient) AddNote(ctx context.Context, data string, opts ...grpc.CallOption) (models.EncryptedNote, error) {
	out := new(models.EncryptedNote)
	if err := c.invoke(ctx, "AddNote", &models.AddNoteRequest{Data: data}, out, opts...); err != nil {
		return models.EncryptedNote{}, err
	}
	return *out, nil
}

func (c *NotesClient) UpdateNote(ctx context.Context, note models.EncryptedNote, opts ...grpc.CallOption) error {
	return c.invoke(ctx, "UpdateNote", &note, new(Empty), opts...)
}

func (c *NotesClient) DeleteNote(ctx context.Context, id models.NoteID, opts ...grpc.CallOption) error {
	return c.invoke(ctx, "DeleteNote", &DeleteNoteRequest{ID: id}, new(Empty), opts...)
}

func (c *NotesClient) GetVersion(ctx context.Context, opts ...grpc.CallOption) (string, error) {
	out := new(GetVersionResponse)
	if err := c.invoke(ctx, "GetVersion", &Empty{}, out, opts...); err != nil {
		return "", err
	}
	return out.Version, nil
}
