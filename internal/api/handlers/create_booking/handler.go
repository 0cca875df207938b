package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/itdept/ClassroomBookingService/internal/api/handlers"
	createBooking "github.com/itdept/ClassroomBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidAccessCode  = "invalid access code, booking denied"
	msgInvalidRange       = "invalid time range, expected HH:MM with start before end"
	msgRoomNotFound       = "room not found"
	msgInvalidInput       = "invalid booking data"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var conflictErr *createBooking.ConflictError

		switch {
		case errors.Is(err, createBooking.ErrUnauthorized):
			h.logger.Warn("POST /bookings - Invalid access code: teacher=%s", req.Teacher)
			handlers.RespondUnauthorized(w, msgInvalidAccessCode)

		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /bookings - Conflict: room=%s day=%s held by %s",
				req.Room, req.Day, conflictErr.TeacherName)
			handlers.RespondError(w, http.StatusConflict,
				fmt.Sprintf("room already booked by %s", conflictErr.TeacherName))

		case errors.Is(err, createBooking.ErrInvalidRange):
			h.logger.Warn("POST /bookings - Invalid range: %s-%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room=%s", req.Room)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: teacher=%s room=%s error=%v",
				req.Teacher, req.Room, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d teacher=%s room=%s",
		result.ID, req.Teacher, req.Room)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
