package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingsHandler "github.com/itdept/ClassroomBookingService/internal/api/handlers/cancel_bookings"
	checkAvailabilityHandler "github.com/itdept/ClassroomBookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/itdept/ClassroomBookingService/internal/api/handlers/create_booking"
	createRoomHandler "github.com/itdept/ClassroomBookingService/internal/api/handlers/create_room"
	getRoomTimetableHandler "github.com/itdept/ClassroomBookingService/internal/api/handlers/get_room_timetable"
	getTeacherBookingsHandler "github.com/itdept/ClassroomBookingService/internal/api/handlers/get_teacher_bookings"
	listRoomsHandler "github.com/itdept/ClassroomBookingService/internal/api/handlers/list_rooms"
	rescheduleBookingHandler "github.com/itdept/ClassroomBookingService/internal/api/handlers/reschedule_booking"
	"github.com/itdept/ClassroomBookingService/internal/api/middleware"
	"github.com/itdept/ClassroomBookingService/internal/config"
	"github.com/itdept/ClassroomBookingService/internal/infra/events"
	bookingRepo "github.com/itdept/ClassroomBookingService/internal/infra/storage/booking"
	roomRepo "github.com/itdept/ClassroomBookingService/internal/infra/storage/room"
	bookingsService "github.com/itdept/ClassroomBookingService/internal/service/bookings"
	conflictsService "github.com/itdept/ClassroomBookingService/internal/service/conflicts"
	roomsService "github.com/itdept/ClassroomBookingService/internal/service/rooms"
	cancelBookingsUC "github.com/itdept/ClassroomBookingService/internal/usecase/cancel_bookings"
	checkAvailabilityUC "github.com/itdept/ClassroomBookingService/internal/usecase/check_availability"
	createBookingUC "github.com/itdept/ClassroomBookingService/internal/usecase/create_booking"
	expirePastUC "github.com/itdept/ClassroomBookingService/internal/usecase/expire_past"
	rescheduleBookingUC "github.com/itdept/ClassroomBookingService/internal/usecase/reschedule_booking"
	"github.com/itdept/ClassroomBookingService/pkg/dbmetrics"
	"github.com/itdept/ClassroomBookingService/pkg/logger"
	"github.com/itdept/ClassroomBookingService/pkg/metrics"
	"github.com/itdept/ClassroomBookingService/pkg/simpletxmanager"
	"github.com/itdept/ClassroomBookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting ClassroomBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем публикацию событий (если включена)
	var publisher *events.Publisher
	if cfg.RabbitMQ.Enabled {
		publisher, err = events.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		log.Info("Event publishing enabled (exchange=%s)", cfg.RabbitMQ.Exchange)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		roomRepository    *roomRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	conflictFinder := conflictsService.NewService(bookingRepository, log)
	roomsSvc := roomsService.NewService(roomRepository, cfg.Auth.AccessToken, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, roomRepository, log)

	// Публикация событий опциональна: use cases получают nil,
	// когда RabbitMQ выключен
	var (
		createPub     createBookingUC.EventPublisher
		cancelPub     cancelBookingsUC.EventPublisher
		reschedulePub rescheduleBookingUC.EventPublisher
	)
	if publisher != nil {
		createPub = publisher
		cancelPub = publisher
		reschedulePub = publisher
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		conflictFinder,
		txMgr,
		createPub,
		cfg.Auth.AccessToken,
		log,
	)
	cancelBookingsUseCase := cancelBookingsUC.NewUseCase(
		bookingRepository,
		txMgr,
		cancelPub,
		cfg.Auth.AccessToken,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		conflictFinder,
		txMgr,
		reschedulePub,
		cfg.Auth.AccessToken,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(bookingRepository, roomRepository, log)
	expirePastUseCase := expirePastUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBookings := cancelBookingsHandler.NewHandler(cancelBookingsUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, expirePastUseCase, log)
	getTeacherBookings := getTeacherBookingsHandler.NewHandler(bookingsSvc, expirePastUseCase, log)
	getRoomTimetable := getRoomTimetableHandler.NewHandler(bookingsSvc, expirePastUseCase, log)
	listRooms := listRoomsHandler.NewHandler(roomsSvc, log)
	createRoom := createRoomHandler.NewHandler(roomsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	// Создание бронирования (код доступа в теле запроса)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Отмена набора бронирований преподавателя
	api.HandleFunc("/bookings/cancel", cancelBookings.Handle).Methods(http.MethodPost)

	// Перенос бронирования на другой день/время
	api.HandleFunc("/bookings/{bookingId}", rescheduleBooking.Handle).Methods(http.MethodPatch)

	// --- Доступность и расписание ---
	// Свободные аудитории на день и интервал
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Бронирования преподавателя
	api.HandleFunc("/teachers/{teacherName}/bookings", getTeacherBookings.Handle).Methods(http.MethodGet)

	// --- Аудитории ---
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{roomName}/timetable", getRoomTimetable.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
