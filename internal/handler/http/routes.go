// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)

	// tenant routes; the principal is resolved from the optional bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.identify)

		r.Route("/api/devices", func(r chi.Router) {
			r.Post("/", h.registerDevice)
			r.Get("/", h.getDeviceAliases)
			r.Get("/keys", h.getDevices)
			r.Delete("/{alias}", h.deleteDevice)
		})

		r.Route("/api/notes", func(r chi.Router) {
			r.Get("/", h.getNotes)
			r.Post("/", h.addNote)
			r.Put("/", h.updateNote)
			r.Delete("/{id}", h.deleteNote)
		})
	})

	router.MethodNotAllowed(methodNotAllowed(router))

	return router
}
