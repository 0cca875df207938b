package cancel_bookings

import (
	"errors"
	"net/http"

	"github.com/itdept/ClassroomBookingService/internal/api/handlers"
	cancelBookings "github.com/itdept/ClassroomBookingService/internal/usecase/cancel_bookings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidAccessCode  = "invalid access code"
	msgInvalidInput       = "invalid cancellation data"
)

type Handler struct {
	useCase CancelBookingsUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelBookingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, cancelBookings.ErrUnauthorized):
			h.logger.Warn("POST /bookings/cancel - Invalid access code: teacher=%s", req.Teacher)
			handlers.RespondUnauthorized(w, msgInvalidAccessCode)

		case errors.Is(err, cancelBookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/cancel - Failed: teacher=%s error=%v", req.Teacher, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/cancel - Cancelled %d bookings for teacher=%s",
		len(result.CancelledIDs), req.Teacher)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
