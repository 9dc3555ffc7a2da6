package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"roomly/internal/bookings/service"
	httputil "roomly/pkg/http"
	"roomly/pkg/logger"
	"roomly/pkg/model"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking model.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := h.service.Create(r.Context(), &booking); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, booking); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

func (h *BookingHandler) ListRoomBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	rows, err := h.service.ListRoomBookings(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListRoomBookings", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, rows); err != nil {
		h.log.Error("failed to write success response", "handler", "ListRoomBookings", "error", err)
	}
}

func (h *BookingHandler) ListCustomerBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	rows, err := h.service.ListCustomerBookings(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListCustomerBookings", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, rows); err != nil {
		h.log.Error("failed to write success response", "handler", "ListCustomerBookings", "error", err)
	}
}

func (h *BookingHandler) CustomerHistory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	customerName := ps.ByName("name")

	rows, err := h.service.GetCustomerHistory(r.Context(), customerName)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CustomerHistory", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, rows); err != nil {
		h.log.Error("failed to write success response", "handler", "CustomerHistory", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.Create)
	router.GET("/api/v1/bookings/rooms", h.ListRoomBookings)
	router.GET("/api/v1/bookings/customers", h.ListCustomerBookings)
	router.GET("/api/v1/bookings/customers/:name", h.CustomerHistory)
}
