package list_rooms

import (
	"net/http"

	"github.com/itdept/ClassroomBookingService/internal/api/handlers"
)

type Handler struct {
	service RoomsService
	logger  Logger
}

func NewHandler(service RoomsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /rooms - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms - %d rooms", len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
