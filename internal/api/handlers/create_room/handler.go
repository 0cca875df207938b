package create_room

import (
	"errors"
	"net/http"

	"github.com/itdept/ClassroomBookingService/internal/api/handlers"
	"github.com/itdept/ClassroomBookingService/internal/service/rooms"
)

const (
	msgUnauthorized = "invalid access code, request denied"
	msgDuplicate    = "room with this name already exists"
	msgBadBody      = "invalid request body"
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

// Handle POST /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Bad request body: %v", err)
		handlers.RespondBadRequest(w, msgBadBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrUnauthorized):
			h.logger.Warn("POST /rooms - Unauthorized for room=%s", req.Name)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, rooms.ErrDuplicateRoom):
			h.logger.Warn("POST /rooms - Duplicate room name=%s", req.Name)
			handlers.RespondError(w, http.StatusConflict, msgDuplicate)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("POST /rooms - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /rooms - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms - Created room id=%d name=%s", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
