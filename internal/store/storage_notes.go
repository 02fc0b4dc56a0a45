// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/notekeeper/internal/logger"
	"github.com/MKhiriev/notekeeper/models"
)

// GetNotes implements [NoteStorage].
func (s *Storage) GetNotes(ctx context.Context, owner models.Principal) []models.EncryptedNote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := s.lookup(owner)
	if t == nil {
		return []models.EncryptedNote{}
	}

	notes := make([]models.EncryptedNote, len(t.notes))
	copy(notes, t.notes)

	return notes
}

// AddNote implements [NoteStorage].
func (s *Storage) AddNote(ctx context.Context, owner models.Principal, data string) (models.EncryptedNote, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.lookupOrCreate(owner)
	if err != nil {
		log.Err(err).Str("func", "*Storage.AddNote").Msg("note rejected")
		return models.EncryptedNote{}, err
	}

	// the counter stays strictly above every issued id, so 2^128-1 itself
	// is never handed out
	if t.nextNoteID.IsMax() {
		log.Error().Str("owner", owner.String()).Str("func", "*Storage.AddNote").Msg("note ids exhausted")
		return models.EncryptedNote{}, ErrNoteIDsExhausted
	}

	note := models.EncryptedNote{ID: t.nextNoteID, Data: data}
	t.nextNoteID = t.nextNoteID.Next()
	t.notes = append(t.notes, note)

	log.Debug().
		Str("owner", owner.String()).
		Stringer("note_id", note.ID).
		Msg("note added")

	return note, nil
}

// UpdateNote implements [NoteStorage].
func (s *Storage) UpdateNote(ctx context.Context, owner models.Principal, note models.EncryptedNote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.lookup(owner)
	if t == nil {
		return ErrNoteNotFound
	}

	for i := range t.notes {
		if t.notes[i].ID == note.ID {
			t.notes[i].Data = note.Data
			return nil
		}
	}

	return ErrNoteNotFound
}

// DeleteNote implements [NoteStorage].
func (s *Storage) DeleteNote(ctx context.Context, owner models.Principal, id models.NoteID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.lookup(owner)
	if t == nil {
		return
	}

	for i := range t.notes {
		if t.notes[i].ID == id {
			t.notes = append(t.notes[:i], t.notes[i+1:]...)
			return
		}
	}
}
