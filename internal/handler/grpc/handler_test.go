// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/notekeeper/internal/config"
	"github.com/MKhiriev/notekeeper/internal/logger"
	"github.com/MKhiriev/notekeeper/internal/service"
	"github.com/MKhiriev/notekeeper/internal/store"
	"github.com/MKhiriev/notekeeper/models"
)

type testServer struct {
	client   *NotesClient
	services *service.Services
}

func (s testServer) as(t *testing.T, principal models.Principal) context.Context {
	t.Helper()

	token, err := s.services.AuthService.CreateToken(context.Background(), principal)
	require.NoError(t, err)

	return WithToken(context.Background(), token.SignedString)
}

// newTestServer serves the real services over an in-memory listener.
func newTestServer(t *testing.T, mode string) testServer {
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

	h := NewHandler(services, logger.Nop())
	srv := grpc.NewServer(h.ServerOptions()...)
	h.Register(srv)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return testServer{client: NewNotesClient(conn), services: services}
}

func TestGRPC_GetVersion(t *testing.T) {
	s := newTestServer(t, config.RegistrationModeStrict)

	version, err := s.client.GetVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test", version)
}

func TestGRPC_AnonymousCallerIsRejected(t *testing.T) {
	s := newTestServer(t, config.RegistrationModeStrict)

	err := s.client.RegisterDevice(context.Background(), &models.RegisterDeviceRequest{Alias: "laptop", PublicKey: "K1"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = s.client.GetNotes(context.Background())
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestGRPC_InvalidToken(t *testing.T) {
	s := newTestServer(t, config.RegistrationModeStrict)

	_, err := s.client.GetNotes(WithToken(context.Background(), "garbage"))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	ctx := metadata.AppendToOutgoingContext(context.Background(), authorizationMetadataKey, "Basic abc")
	_, err = s.client.GetNotes(ctx)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestGRPC_UnregisteredCallerIsForbidden(t *testing.T) {
	s := newTestServer(t, config.RegistrationModeStrict)
	ctx := s.as(t, "principal-p")

	_, err := s.client.GetDeviceAliases(ctx)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = s.client.AddNote(ctx, "cipher")
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestGRPC_DeviceLifecycle(t *testing.T) {
	s := newTestServer(t, config.RegistrationModeStrict)
	ctx := s.as(t, "principal-p")

	require.NoError(t, s.client.RegisterDevice(ctx, &models.RegisterDeviceRequest{Alias: "laptop", PublicKey: "K1"}))
	require.NoError(t, s.client.RegisterDevice(ctx, &models.RegisterDeviceRequest{Alias: "phone", PublicKey: "K2"}))

	aliases, err := s.client.GetDeviceAliases(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.DeviceAlias{"laptop", "phone"}, aliases)

	devices, err := s.client.GetDevices(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Device{{Alias: "laptop", PublicKey: "K1"}, {Alias: "phone", PublicKey: "K2"}}, devices)

	require.NoError(t, s.client.DeleteDevice(ctx, "laptop"))

	aliases, err = s.client.GetDeviceAliases(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.DeviceAlias{"phone"}, aliases)
}

func TestGRPC_NoteLifecycle(t *testing.T) {
	s := newTestServer(t, config.RegistrationModeStrict)
	ctx := s.as(t, "principal-p")

	require.NoError(t, s.client.RegisterDevice(ctx, &models.RegisterDeviceRequest{Alias: "laptop", PublicKey: "K1"}))

	first, err := s.client.AddNote(ctx, "cipherA")
	require.NoError(t, err)
	second, err := s.client.AddNote(ctx, "cipherB")
	require.NoError(t, err)
	assert.True(t, first.ID.Less(second.ID))

	require.NoError(t, s.client.UpdateNote(ctx, models.EncryptedNote{ID: first.ID, Data: "cipherA2"}))
	require.NoError(t, s.client.DeleteNote(ctx, second.ID))

	notes, err := s.client.GetNotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.EncryptedNote{{ID: first.ID, Data: "cipherA2"}}, notes)

	err = s.client.UpdateNote(ctx, models.EncryptedNote{ID: second.ID, Data: "gone"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGRPC_TenantsAreIsolated(t *testing.T) {
	s := newTestServer(t, config.RegistrationModeOpen)
	alice := s.as(t, "alice")
	bob := s.as(t, "bob")

	_, err := s.client.AddNote(alice, "secret")
	require.NoError(t, err)

	notes, err := s.client.GetNotes(bob)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestGRPC_TraceIDIsEchoed(t *testing.T) {
	s := newTestServer(t, config.RegistrationModeStrict)

	ctx := metadata.AppendToOutgoingContext(context.Background(), traceIDMetadataKey, "trace-1")
	var header metadata.MD
	_, err := s.client.GetVersion(ctx, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, []string{"trace-1"}, header.Get(traceIDMetadataKey))
}

func TestCodeFromError(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{service.ErrAnonymousPrincipal, codes.Unauthenticated},
		{service.ErrPrincipalNotRegistered, codes.PermissionDenied},
		{store.ErrNoteNotFound, codes.NotFound},
		{store.ErrNoteIDsExhausted, codes.Internal},
		{models.ErrInvalidNoteID, codes.InvalidArgument},
		{assert.AnError, codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, codeFromError(tt.err))
		})
	}
}

func TestStatusFromError_HidesInternalErrors(t *testing.T) {
	err := statusFromError(context.Background(), "test", assert.AnError)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "internal error", st.Message())
}
