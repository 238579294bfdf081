package wire

import (
	"court-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReservation(r chi.Router, reservationHandler *adaptor.ReservationHandler) {
	// ==================== STAFF ROUTES ====================
	// POST /api/reservations - Create booking without discount capability
	r.Post("/api/reservations", reservationHandler.CreateReservation)

	// GET /api/reservations - List bookings by date/court
	r.Get("/api/reservations", reservationHandler.ListReservations)

	// GET /api/reservations/{id} - Booking details with slots and payment
	r.Get("/api/reservations/{id}", reservationHandler.GetReservation)

	// GET /api/availability - Check a slot range without booking it
	r.Get("/api/availability", reservationHandler.CheckAvailability)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/reservations", func(r chi.Router) {
		// POST /api/admin/reservations - Create booking, discount-capable
		r.Post("/", reservationHandler.CreateAdminReservation)

		// PUT /api/admin/reservations/{id} - Reschedule/update booking
		r.Put("/{id}", reservationHandler.UpdateReservation)

		// PUT /api/admin/reservations/{id}/cancel - Cancel, keep history
		r.Put("/{id}/cancel", reservationHandler.CancelReservation)

		// DELETE /api/admin/reservations/{id} - Hard delete all records
		r.Delete("/{id}", reservationHandler.DeleteReservation)
	})
}
