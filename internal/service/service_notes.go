// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/notekeeper/internal/logger"
	"github.com/MKhiriev/notekeeper/internal/store"
	"github.com/MKhiriev/notekeeper/models"
)

// noteService runs every note operation behind the identity gate. All note
// operations require a registered caller.
type noteService struct {
	gate  IdentityGate
	notes store.NoteStorage

	logger *logger.Logger
}

func NewNoteService(gate IdentityGate, notes store.NoteStorage, logger *logger.Logger) NoteService {
	return &noteService{
		gate:   gate,
		notes:  notes,
		logger: logger,
	}
}

func (s *noteService) GetNotes(ctx context.Context) ([]models.EncryptedNote, error) {
	owner, err := s.gate.Authorize(ctx, true)
	if err != nil {
		return nil, err
	}

	return s.notes.GetNotes(ctx, owner), nil
}

func (s *noteService) AddNote(ctx context.Context, data string) (models.EncryptedNote, error) {
	owner, err := s.gate.Authorize(ctx, true)
	if err != nil {
		return models.EncryptedNote{}, err
	}

	note, err := s.notes.AddNote(ctx, owner, data)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.AddNote").Msg("note was not added")
		return models.EncryptedNote{}, fmt.Errorf("note was not added: %w", err)
	}

	return note, nil
}

// UpdateNote fails with store.ErrNoteNotFound when the caller owns no note
// with note.ID.
func (s *noteService) UpdateNote(ctx context.Context, note models.EncryptedNote) error {
	owner, err := s.gate.Authorize(ctx, true)
	if err != nil {
		return err
	}

	if err = s.notes.UpdateNote(ctx, owner, note); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*noteService.UpdateNote").
			Stringer("note_id", note.ID).
			Msg("note was not updated")
		return fmt.Errorf("note was not updated: %w", err)
	}

	return nil
}

// DeleteNote succeeds when no note has id.
func (s *noteService) DeleteNote(ctx context.Context, id models.NoteID) error {
	owner, err := s.gate.Authorize(ctx, true)
	if err != nil {
		return err
	}

	s.notes.DeleteNote(ctx, owner, id)

	return nil
}
