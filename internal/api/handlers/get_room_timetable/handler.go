package get_room_timetable

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/itdept/ClassroomBookingService/internal/api/handlers"
	bookingsService "github.com/itdept/ClassroomBookingService/internal/service/bookings"
	"github.com/itdept/ClassroomBookingService/internal/service/bookings/models"
)

const msgRoomNotFound = "room not found"

// EntryJSON одна запись расписания
type EntryJSON struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Teacher   string `json:"teacher"`
}

// TimetableJSON HTTP response model: расписание по дням недели
type TimetableJSON struct {
	Room     string                  `json:"room"`
	Type     string                  `json:"type"`
	Schedule map[string][]*EntryJSON `json:"schedule"`
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

// Handle GET /api/v1/rooms/{roomName}/timetable
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomName := mux.Vars(r)["roomName"]

	if _, err := h.expirePast.Execute(r.Context(), time.Now()); err != nil {
		h.logger.Error("GET /rooms/{name}/timetable - Expiration sweep failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.GetRoomTimetable(r.Context(), roomName)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/%s/timetable - Room not found", roomName)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/%s/timetable - Failed: %v", roomName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/%s/timetable - Returned timetable", roomName)
	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.RoomTimetableResponse) *TimetableJSON {
	schedule := make(map[string][]*EntryJSON, len(resp.Schedule))
	for day, entries := range resp.Schedule {
		out := make([]*EntryJSON, 0, len(entries))
		for _, e := range entries {
			out = append(out, &EntryJSON{
				StartTime: e.StartTime,
				EndTime:   e.EndTime,
				Teacher:   e.TeacherName,
			})
		}
		schedule[day] = out
	}
	return &TimetableJSON{
		Room:     resp.RoomName,
		Type:     resp.RoomType,
		Schedule: schedule,
	}
}
