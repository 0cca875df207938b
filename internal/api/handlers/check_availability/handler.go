package check_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/itdept/ClassroomBookingService/internal/api/handlers"
	checkAvailability "github.com/itdept/ClassroomBookingService/internal/usecase/check_availability"
)

const (
	msgInvalidRange = "invalid time range, expected HH:MM with start before end"
	msgInvalidInput = "invalid availability query"
)

type Handler struct {
	useCase    CheckAvailabilityUseCase
	expirePast ExpirePastUseCase
	logger     Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, expirePast ExpirePastUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:    useCase,
		expirePast: expirePast,
		logger:     logger,
	}
}

// Handle GET /api/v1/availability?day=Monday&start=09:00&end=10:00
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Истекшие бронирования сегодняшнего дня не должны занимать слоты
	if _, err := h.expirePast.Execute(r.Context(), time.Now()); err != nil {
		h.logger.Error("GET /availability - Expiration sweep failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	query := r.URL.Query()
	req := &checkAvailability.Request{
		Day:       query.Get("day"),
		StartTime: query.Get("start"),
		EndTime:   query.Get("end"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidRange):
			h.logger.Warn("GET /availability - Invalid range: %s-%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /availability - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - %d rooms available on %s %s-%s",
		len(result.Rooms), req.Day, req.StartTime, req.EndTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
