// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/notekeeper/models"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "notekeeper.Notes"

// NotesServer is the server side of notekeeper.Notes.
type NotesServer interface {
	RegisterDevice(context.Context, *models.RegisterDeviceRequest) (*Empty, error)
	GetDeviceAliases(context.Context, *Empty) (*GetDeviceAliasesResponse, error)
	GetDevices(context.Context, *Empty) (*GetDevicesResponse, error)
	DeleteDevice(context.Context, *DeleteDeviceRequest) (*Empty, error)

	GetNotes(context.Context, *Empty) (*GetNotesResponse, error)
	AddNote(context.Context, *models.AddNoteRequest) (*models.EncryptedNote, error)
	UpdateNote(context.Context, *models.EncryptedNote) (*Empty, error)
	DeleteNote(context.Context, *DeleteNoteRequest) (*Empty, error)

	GetVersion(context.Context, *Empty) (*GetVersionResponse, error)
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unaryMethod builds the MethodDesc of one unary call.
func unaryMethod[Req, Resp any](method string, call func(NotesServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(NotesServer), ctx, in)
			}

			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(method),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(NotesServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// NotesServiceDesc describes notekeeper.Notes for grpc.Server.RegisterService.
var NotesServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*NotesServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("RegisterDevice", NotesServer.RegisterDevice),
		unaryMethod("GetDeviceAliases", NotesServer.GetDeviceAliases),
		unaryMethod("GetDevices", NotesServer.GetDevices),
		unaryMethod("DeleteDevice", NotesServer.DeleteDevice),
		unaryMethod("GetNotes", NotesServer.GetNotes),
		unaryMethod("AddNote", NotesServer.AddNote),
		unaryMethod("UpdateNote", NotesServer.UpdateNote),
		unaryMethod("DeleteNote", NotesServer.DeleteNote),
		unaryMethod("GetVersion", NotesServer.GetVersion),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "notekeeper/notes",
}
