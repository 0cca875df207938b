package get_teacher_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/itdept/ClassroomBookingService/internal/api/handlers"
	bookingsService "github.com/itdept/ClassroomBookingService/internal/service/bookings"
	"github.com/itdept/ClassroomBookingService/internal/service/bookings/models"
)

const msgInvalidTeacher = "teacher name is required"

// BookingJSON HTTP модель бронирования в списке преподавателя
type BookingJSON struct {
	ID        int64  `json:"id"`
	RoomID    int64  `json:"roomId"`
	Teacher   string `json:"teacher"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	CreatedAt string `json:"createdAt"`
}

// BookingListJSON HTTP response model
type BookingListJSON struct {
	Bookings []*BookingJSON `json:"bookings"`
}

type Handler struct {
	service    BookingsService
	expirePast ExpirePastUseCase
	logger     Logger
}

func NewHandler(service BookingsService, expirePast ExpirePastUseCase, logger Logger) *Handler {
	return &Handler{
		service:    service,
		expirePast: expirePast,
		logger:     logger,
	}
}

// Handle GET /api/v1/teachers/{teacherName}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	teacherName := mux.Vars(r)["teacherName"]

	if _, err := h.expirePast.Execute(r.Context(), time.Now()); err != nil {
		h.logger.Error("GET /teachers/{name}/bookings - Expiration sweep failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.GetByTeacher(r.Context(), teacherName)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /teachers/{name}/bookings - Invalid teacher name")
			handlers.RespondBadRequest(w, msgInvalidTeacher)

		default:
			h.logger.Error("GET /teachers/%s/bookings - Failed: %v", teacherName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /teachers/%s/bookings - Returned %d bookings", teacherName, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.BookingListResponse) *BookingListJSON {
	bookings := make([]*BookingJSON, 0, len(resp.Bookings))
	for _, b := range resp.Bookings {
		bookings = append(bookings, &BookingJSON{
			ID:        b.ID,
			RoomID:    b.RoomID,
			Teacher:   b.TeacherName,
			Day:       b.Day,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			CreatedAt: b.CreatedAt.Format(time.RFC3339),
		})
	}
	return &BookingListJSON{Bookings: bookings}
}
