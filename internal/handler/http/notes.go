// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/notekeeper/models"
)

func (h *Handler) getNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.services.NoteService.GetNotes(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getNotes", err)
		return
	}

	writeJSON(w, r, http.StatusOK, notes)
}

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	var request models.AddNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, r, "*Handler.addNote", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	note, err := h.services.NoteService.AddNote(r.Context(), request.Data)
	if err != nil {
		writeError(w, r, "*Handler.addNote", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, note)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	var note models.EncryptedNote
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		writeError(w, r, "*Handler.updateNote", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if err := h.services.NoteService.UpdateNote(r.Context(), note); err != nil {
		writeError(w, r, "*Handler.updateNote", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseNoteID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.deleteNote", fmt.Errorf("%w: %w", ErrInvalidNoteIDParam, err))
		return
	}

	if err = h.services.NoteService.DeleteNote(r.Context(), id); err != nil {
		writeError(w, r, "*Handler.deleteNote", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
