package wire

import (
	"court-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCourt(r chi.Router, courtHandler *adaptor.CourtHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/courts - List courts (optionally active only)
	r.Get("/api/courts", courtHandler.ListCourts)

	// GET /api/courts/{id} - Court details
	r.Get("/api/courts/{id}", courtHandler.GetCourt)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/courts", func(r chi.Router) {
		// POST /api/admin/courts - Create court
		r.Post("/", courtHandler.CreateCourt)

		// PUT /api/admin/courts/{id} - Edit court, rates, active flag
		r.Put("/{id}", courtHandler.UpdateCourt)
	})
}
