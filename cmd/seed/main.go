package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/itdept/ClassroomBookingService/internal/config"
	"github.com/itdept/ClassroomBookingService/internal/domain"
	"github.com/itdept/ClassroomBookingService/internal/integrations/schedulerapi"
	"github.com/itdept/ClassroomBookingService/pkg/logger"
)

// Сидер наполняет сервис учебным расписанием корпуса 11 через публичный
// HTTP API: аудитории всех этажей, лекционные пары и лабораторные блоки
// для дивизионов IT и CS. Повторный запуск безопасен: существующие
// аудитории и занятые слоты пропускаются.

type slot struct {
	start string
	end   string
}

// Часы колледжа 08:00-18:00, часовые слоты, перерыв 12:00-14:00
var lectureSlots = []slot{
	{"08:00", "09:00"},
	{"09:00", "10:00"},
	{"10:00", "11:00"},
	{"11:00", "12:00"},
	{"14:00", "15:00"},
	{"15:00", "16:00"},
	{"16:00", "17:00"},
	{"17:00", "18:00"},
}

// Двухчасовые окна для лабораторных, в порядке предпочтения
var labPairs = []slot{
	{"14:00", "16:00"},
	{"08:00", "10:00"},
	{"16:00", "18:00"},
	{"10:00", "12:00"},
}

var faculties = []string{
	"Prof. Sharma", "Dr. Mehta", "Prof. Nair", "Dr. Kapoor", "Prof. Singh",
	"Dr. Verma", "Prof. Iyer", "Dr. Rao", "Prof. Kulkarni", "Dr. Gupta",
	"Prof. Patel", "Dr. Jain", "Prof. Bose", "Dr. Menon",
}

func main() {
	var (
		addr       = flag.String("addr", "http://localhost:8080", "base URL of the booking service")
		configPath = flag.String("config", "config.toml", "path to service config (access token source)")
		randSeed   = flag.Int64("seed", time.Now().UnixNano(), "random seed for slot selection")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New("", cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	client := schedulerapi.NewClient(*addr, 30*time.Second, log)
	rng := rand.New(rand.NewSource(*randSeed))
	ctx := context.Background()

	s := &seeder{
		client:     client,
		rng:        rng,
		accessCode: cfg.Auth.AccessToken,
		log:        log,
	}

	if err := s.run(ctx); err != nil {
		log.Fatal("Seeding failed: %v", err)
	}

	log.Info("Seeding complete: %d rooms, %d bookings created, %d slots skipped",
		s.roomsCreated, s.bookingsCreated, s.conflictsSkipped)
}

type seeder struct {
	client     *schedulerapi.Client
	rng        *rand.Rand
	accessCode string
	log        *logger.Logger

	lectureRooms []string
	labRooms     []string
	lectureIdx   int
	labIdx       int
	facultyIdx   int

	roomsCreated     int
	bookingsCreated  int
	conflictsSkipped int
}

func (s *seeder) run(ctx context.Context) error {
	if err := s.createRooms(ctx); err != nil {
		return err
	}

	itDays := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	csDays := []string{"Monday", "Tuesday", "Wednesday", "Thursday"}

	// Дивизионы IT-A..IT-F учатся Пн-Пт
	for i := 0; i < 6; i++ {
		div := fmt.Sprintf("IT-%c", 'A'+i)
		if err := s.assignDivision(ctx, div, itDays); err != nil {
			return err
		}
	}

	// Дивизионы CS-A..CS-L учатся Пн-Чт
	for i := 0; i < 12; i++ {
		div := fmt.Sprintf("CS-%c", 'A'+i)
		if err := s.assignDivision(ctx, div, csDays); err != nil {
			return err
		}
	}

	return nil
}

// createRooms создает аудитории корпуса 11: лаборатории первого этажа
// 1016A/1016B, на этажах 11-14 лекционные xx01-xx20 и лаборатории xx21-xx26
func (s *seeder) createRooms(ctx context.Context) error {
	type roomSpec struct {
		name     string
		roomType domain.RoomType
	}

	var rooms []roomSpec
	rooms = append(rooms,
		roomSpec{"1016A", domain.RoomTypeLab},
		roomSpec{"1016B", domain.RoomTypeLab},
	)
	for _, floor := range []string{"11", "12", "13", "14"} {
		for i := 1; i <= 20; i++ {
			rooms = append(rooms, roomSpec{fmt.Sprintf("%s%02d", floor, i), domain.RoomTypeLecture})
		}
		for i := 21; i <= 26; i++ {
			rooms = append(rooms, roomSpec{fmt.Sprintf("%s%d", floor, i), domain.RoomTypeLab})
		}
	}

	for _, spec := range rooms {
		_, err := s.client.CreateRoom(ctx, &schedulerapi.CreateRoomRequest{
			Name:       spec.name,
			Type:       string(spec.roomType),
			AccessCode: s.accessCode,
		})
		switch {
		case err == nil:
			s.roomsCreated++
		case errors.Is(err, schedulerapi.ErrDuplicateRoom):
			// Повторный запуск: аудитория уже есть
		default:
			return fmt.Errorf("create room %s: %w", spec.name, err)
		}

		if spec.roomType == domain.RoomTypeLab {
			s.labRooms = append(s.labRooms, spec.name)
		} else {
			s.lectureRooms = append(s.lectureRooms, spec.name)
		}
	}

	s.log.Info("Rooms ready: %d lecture, %d lab (%d newly created)",
		len(s.lectureRooms), len(s.labRooms), s.roomsCreated)
	return nil
}

// assignDivision назначает дивизиону на каждый учебный день 4-6 лекционных
// часов (минимум два утром) и один двухчасовой лабораторный блок
func (s *seeder) assignDivision(ctx context.Context, division string, days []string) error {
	for _, day := range days {
		numLectures := 4 + s.rng.Intn(3)

		chosen := make(map[int]bool)
		morning := s.rng.Perm(4)
		for _, idx := range morning[:2] {
			chosen[idx] = true
		}
		rest := s.rng.Perm(len(lectureSlots))
		for _, idx := range rest {
			if len(chosen) >= numLectures {
				break
			}
			chosen[idx] = true
		}

		indices := make([]int, 0, len(chosen))
		for idx := range chosen {
			indices = append(indices, idx)
		}
		sort.Ints(indices)

		for _, idx := range indices {
			if err := s.bookLecture(ctx, division, day, lectureSlots[idx]); err != nil {
				return err
			}
		}

		if err := s.bookLab(ctx, division, day); err != nil {
			return err
		}
	}
	return nil
}

// bookLecture перебирает лекционные аудитории по кругу, пока не найдет
// свободную на данный слот; если все заняты, слот пропускается
func (s *seeder) bookLecture(ctx context.Context, division, day string, sl slot) error {
	teacher := fmt.Sprintf("%s - %s", division, s.nextFaculty())

	for attempts := 0; attempts < len(s.lectureRooms); attempts++ {
		room := s.lectureRooms[s.lectureIdx%len(s.lectureRooms)]
		s.lectureIdx++

		err := s.book(ctx, teacher, room, day, sl)
		if err == nil {
			s.bookingsCreated++
			return nil
		}
		if errors.Is(err, schedulerapi.ErrConflict) {
			continue
		}
		return fmt.Errorf("book lecture %s %s %s-%s: %w", room, day, sl.start, sl.end, err)
	}

	s.conflictsSkipped++
	return nil
}

// bookLab пробует двухчасовые окна в порядке предпочтения, для каждого
// перебирая лаборатории по кругу
func (s *seeder) bookLab(ctx context.Context, division, day string) error {
	teacher := fmt.Sprintf("%s - %s", division, s.nextFaculty())

	for _, pair := range labPairs {
		for attempts := 0; attempts < len(s.labRooms); attempts++ {
			room := s.labRooms[s.labIdx%len(s.labRooms)]
			s.labIdx++

			err := s.book(ctx, teacher, room, day, pair)
			if err == nil {
				s.bookingsCreated++
				return nil
			}
			if errors.Is(err, schedulerapi.ErrConflict) {
				continue
			}
			return fmt.Errorf("book lab %s %s %s-%s: %w", room, day, pair.start, pair.end, err)
		}
	}

	s.conflictsSkipped++
	return nil
}

func (s *seeder) book(ctx context.Context, teacher, room, day string, sl slot) error {
	_, err := s.client.CreateBooking(ctx, &schedulerapi.CreateBookingRequest{
		Teacher:    teacher,
		Room:       room,
		Day:        day,
		StartTime:  sl.start,
		EndTime:    sl.end,
		AccessCode: s.accessCode,
	})
	return err
}

func (s *seeder) nextFaculty() string {
	name := faculties[s.facultyIdx%len(faculties)]
	s.facultyIdx++
	return name
}
