package reschedule_booking

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/itdept/ClassroomBookingService/internal/api/handlers"
	rescheduleBooking "github.com/itdept/ClassroomBookingService/internal/usecase/reschedule_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidAccessCode  = "invalid access code, cannot edit booking"
	msgInvalidRange       = "invalid time range, expected HH:MM with start before end"
	msgBookingNotFound    = "booking not found"
	msgInvalidInput       = "invalid reschedule data"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%d - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		var conflictErr *rescheduleBooking.ConflictError

		switch {
		case errors.Is(err, rescheduleBooking.ErrUnauthorized):
			h.logger.Warn("PATCH /bookings/%d - Invalid access code", bookingID)
			handlers.RespondUnauthorized(w, msgInvalidAccessCode)

		case errors.As(err, &conflictErr):
			h.logger.Warn("PATCH /bookings/%d - Conflict: held by %s", bookingID, conflictErr.TeacherName)
			handlers.RespondError(w, http.StatusConflict,
				fmt.Sprintf("room already booked by %s", conflictErr.TeacherName))

		case errors.Is(err, rescheduleBooking.ErrInvalidRange):
			h.logger.Warn("PATCH /bookings/%d - Invalid range: %s-%s", bookingID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/%d - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/%d - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/%d - Failed to reschedule: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d - Booking rescheduled to %s %s-%s",
		bookingID, result.Day, result.StartTime, result.EndTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
