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

type CourtHandler struct {
	service usecase.CourtService
	log     *zap.Logger
}

func NewCourtHandler(service usecase.CourtService, log *zap.Logger) *CourtHandler {
	return &CourtHandler{
		service: service,
		log:     log.With(zap.String("handler", "court")),
	}
}

// CreateCourt handles POST /api/admin/courts
func (h *CourtHandler) CreateCourt(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCourtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	court, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create court")
		return
	}

	utils.ResponseCreated(w, "success", court)
}

// GetCourt handles GET /api/courts/{id}
func (h *CourtHandler) GetCourt(w http.ResponseWriter, r *http.Request) {
	courtID := chi.URLParam(r, "id")
	if courtID == "" {
		utils.ResponseBadRequest(w, "Court ID is required", nil)
		return
	}

	court, err := h.service.GetByID(r.Context(), courtID)
	if err != nil {
		h.handleServiceError(w, err, "get court")
		return
	}

	utils.ResponseSuccess(w, "success", court)
}

// ListCourts handles GET /api/courts?active=true
func (h *CourtHandler) ListCourts(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	courts, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		h.handleServiceError(w, err, "list courts")
		return
	}

	utils.ResponseSuccess(w, "success", courts)
}

// UpdateCourt handles PUT /api/admin/courts/{id}
func (h *CourtHandler) UpdateCourt(w http.ResponseWriter, r *http.Request) {
	courtID := chi.URLParam(r, "id")
	if courtID == "" {
		utils.ResponseBadRequest(w, "Court ID is required", nil)
		return
	}

	var req request.UpdateCourtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	court, err := h.service.Update(r.Context(), courtID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update court")
		return
	}

	utils.ResponseSuccess(w, "success", court)
}

func (h *CourtHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrCourtNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidInput):
		h.log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
