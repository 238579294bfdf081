package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"court-booking/internal/dto/request"
	"court-booking/internal/usecase"
	"court-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// CreateReservation handles POST /api/reservations (staff path).
// Staff-created bookings never carry a discount; the client-supplied
// discount fields are dropped before the service prices the booking.
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	req.DiscountKind = "NONE"
	req.DiscountValue = 0

	reservation, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "success", reservation)
}

// CreateAdminReservation handles POST /api/admin/reservations.
// The admin path is discount-capable; amounts are still recomputed
// server-side.
func (h *ReservationHandler) CreateAdminReservation(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reservation, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "success", reservation)
}

// UpdateReservation handles PUT /api/admin/reservations/{id}
func (h *ReservationHandler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	var req request.UpdateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reservation, err := h.service.Update(r.Context(), reservationID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update reservation")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// CancelReservation handles PUT /api/admin/reservations/{id}/cancel
func (h *ReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	if err := h.service.Cancel(r.Context(), reservationID); err != nil {
		h.handleServiceError(w, err, "cancel reservation")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// DeleteReservation handles DELETE /api/admin/reservations/{id}
func (h *ReservationHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), reservationID); err != nil {
		h.handleServiceError(w, err, "delete reservation")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetReservation handles GET /api/reservations/{id}
func (h *ReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	reservation, err := h.service.GetByID(r.Context(), reservationID)
	if err != nil {
		h.handleServiceError(w, err, "get reservation")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// ListReservations handles GET /api/reservations?date=&court_id=
func (h *ReservationHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	reservations, err := h.service.List(r.Context(), query.Get("date"), query.Get("court_id"))
	if err != nil {
		h.handleServiceError(w, err, "list reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

// CheckAvailability handles GET /api/availability?court_id=&date=&start=&end=
func (h *ReservationHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.AvailabilityRequest{
		CourtID:   query.Get("court_id"),
		Date:      query.Get("date"),
		StartTime: query.Get("start"),
		EndTime:   query.Get("end"),
	}

	availability, err := h.service.CheckAvailability(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "check availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}

// handleServiceError maps the service error taxonomy onto HTTP statuses
func (h *ReservationHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var conflict *usecase.SlotConflictError

	switch {
	case errors.As(err, &conflict):
		h.log.Warn(operation+" failed - slot conflict",
			zap.Strings("slots", conflict.Slots),
			zap.Bool("race", conflict.Race),
		)
		utils.ResponseConflict(w, err.Error(), map[string]any{"conflicting_slots": conflict.Slots})

	case errors.Is(err, usecase.ErrReservationNotFound), errors.Is(err, usecase.ErrCourtNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidRange),
		errors.Is(err, usecase.ErrOverpayment),
		errors.Is(err, usecase.ErrCourtInactive),
		errors.Is(err, usecase.ErrInvalidInput):
		h.log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
