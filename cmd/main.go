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

	checkRoomAvailabilityHandler "github.com/viamente/booking-service/internal/api/handlers/check_room_availability"
	createAppointmentHandler "github.com/viamente/booking-service/internal/api/handlers/create_appointment"
	createRoomBookingHandler "github.com/viamente/booking-service/internal/api/handlers/create_room_booking"
	deleteAppointmentHandler "github.com/viamente/booking-service/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/viamente/booking-service/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/viamente/booking-service/internal/api/handlers/get_available_slots"
	getRoomBookingsHandler "github.com/viamente/booking-service/internal/api/handlers/get_room_bookings"
	quickBookHandler "github.com/viamente/booking-service/internal/api/handlers/quick_book"
	updateAppointmentStatusHandler "github.com/viamente/booking-service/internal/api/handlers/update_appointment_status"
	"github.com/viamente/booking-service/internal/api/middleware"
	"github.com/viamente/booking-service/internal/config"
	"github.com/viamente/booking-service/internal/domain"
	appointmentRepo "github.com/viamente/booking-service/internal/infra/storage/appointment"
	catalogRepo "github.com/viamente/booking-service/internal/infra/storage/catalog"
	"github.com/viamente/booking-service/internal/infra/storage/memory"
	roomBookingRepo "github.com/viamente/booking-service/internal/infra/storage/roombooking"
	"github.com/viamente/booking-service/internal/integrations/notifier"
	appointmentsService "github.com/viamente/booking-service/internal/service/appointments"
	roomBookingsService "github.com/viamente/booking-service/internal/service/roombookings"
	checkRoomAvailabilityUC "github.com/viamente/booking-service/internal/usecase/check_room_availability"
	createAppointmentUC "github.com/viamente/booking-service/internal/usecase/create_appointment"
	createRoomBookingUC "github.com/viamente/booking-service/internal/usecase/create_room_booking"
	deleteAppointmentUC "github.com/viamente/booking-service/internal/usecase/delete_appointment"
	getAvailableSlotsUC "github.com/viamente/booking-service/internal/usecase/get_available_slots"
	quickBookUC "github.com/viamente/booking-service/internal/usecase/quick_book"
	"github.com/viamente/booking-service/pkg/dbmetrics"
	"github.com/viamente/booking-service/pkg/logger"
	"github.com/viamente/booking-service/pkg/metrics"
	"github.com/viamente/booking-service/pkg/simpletxmanager"
	"github.com/viamente/booking-service/pkg/txmanager"
	"github.com/viamente/booking-service/pkg/types"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Transaction manager interface shared by all write paths
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		appointmentStore createAppointmentUC.AppointmentRepository
		quickBookStore   quickBookUC.AppointmentRepository
		deleteApptStore  deleteAppointmentUC.AppointmentRepository
		serviceApptStore appointmentsService.AppointmentRepository
		slotsApptStore   getAvailableSlotsUC.AppointmentRepository
		listApptStore    roomBookingsService.AppointmentRepository

		roomBookingStore   createAppointmentUC.RoomBookingRepository
		quickBookRoomStore quickBookUC.RoomBookingRepository
		directBookingStore createRoomBookingUC.RoomBookingRepository
		deleteRoomStore    deleteAppointmentUC.RoomBookingRepository
		availabilityStore  checkRoomAvailabilityUC.RoomBookingRepository
		serviceRoomStore   roomBookingsService.RoomBookingRepository
		slotsRoomStore     getAvailableSlotsUC.RoomBookingRepository

		catalogStore          createAppointmentUC.CatalogRepository
		quickBookCatalogStore quickBookUC.CatalogRepository
		bookingCatalogStore   createRoomBookingUC.CatalogRepository
		availCatalogStore     checkRoomAvailabilityUC.CatalogRepository
		serviceCatalogStore   roomBookingsService.CatalogRepository
		slotsCatalogStore     getAvailableSlotsUC.CatalogRepository

		txMgr TxManager
	)

	switch cfg.Database.Driver {
	case "memory":
		// Dev/test strategy: everything lives in one mutex-guarded
		// store, seeded with a minimal catalog
		store := memory.NewStore()
		seedMemoryCatalog(store)
		log.Info("Using in-memory store (driver=memory)")

		appointmentStore = store
		quickBookStore = store
		deleteApptStore = store
		serviceApptStore = store
		slotsApptStore = store
		listApptStore = store

		roomBookings := store.RoomBookings()
		roomBookingStore = roomBookings
		quickBookRoomStore = roomBookings
		directBookingStore = roomBookings
		deleteRoomStore = roomBookings
		availabilityStore = roomBookings
		serviceRoomStore = roomBookings
		slotsRoomStore = roomBookings

		catalogStore = store
		quickBookCatalogStore = store
		bookingCatalogStore = store
		availCatalogStore = store
		serviceCatalogStore = store
		slotsCatalogStore = store

		txMgr = memory.NewTxManager()

	default:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		var (
			appts   *appointmentRepo.Repository
			rooms   *roomBookingRepo.Repository
			catalog *catalogRepo.Repository
		)

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			log.Info("Database metrics collection started")

			appts = appointmentRepo.NewRepository(wrappedDB)
			rooms = roomBookingRepo.NewRepository(wrappedDB)
			catalog = catalogRepo.NewRepository(wrappedDB)
			txMgr = txmanager.NewTransactionManager(wrappedDB)
		} else {
			appts = appointmentRepo.NewRepository(db)
			rooms = roomBookingRepo.NewRepository(db)
			catalog = catalogRepo.NewRepository(db)
			txMgr = simpletxmanager.NewTransactionManager(db)
		}

		appointmentStore = appts
		quickBookStore = appts
		deleteApptStore = appts
		serviceApptStore = appts
		slotsApptStore = appts
		listApptStore = appts

		roomBookingStore = rooms
		quickBookRoomStore = rooms
		directBookingStore = rooms
		deleteRoomStore = rooms
		availabilityStore = rooms
		serviceRoomStore = rooms
		slotsRoomStore = rooms

		catalogStore = catalog
		quickBookCatalogStore = catalog
		bookingCatalogStore = catalog
		availCatalogStore = catalog
		serviceCatalogStore = catalog
		slotsCatalogStore = catalog
	}

	// WhatsApp confirmation gateway, disabled in dev
	notifierClient := notifier.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		cfg.Notifier.Enabled,
		log,
	)
	log.Info("Notifier client initialized (enabled=%t, url=%s)", cfg.Notifier.Enabled, cfg.Notifier.URL)

	practiceHours := domain.WorkingHours{
		Opening:             types.TimeString(cfg.Practice.OpeningTime),
		Closing:             types.TimeString(cfg.Practice.ClosingTime),
		SlotDurationMinutes: cfg.Practice.SlotDurationMinutes,
	}.Normalize()
	log.Info("Practice hours: %s-%s, slot=%dmin",
		practiceHours.Opening, practiceHours.Closing, practiceHours.SlotDurationMinutes)

	// Services
	appointmentSvc := appointmentsService.NewService(serviceApptStore, log)
	roomBookingSvc := roomBookingsService.NewService(serviceRoomStore, listApptStore, serviceCatalogStore, log)

	// Use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentStore,
		roomBookingStore,
		catalogStore,
		txMgr,
		notifierClient,
		log,
	)
	quickBookUseCase := quickBookUC.NewUseCase(
		quickBookStore,
		quickBookRoomStore,
		quickBookCatalogStore,
		txMgr,
		notifierClient,
		log,
	)
	createRoomBookingUseCase := createRoomBookingUC.NewUseCase(
		directBookingStore,
		bookingCatalogStore,
		txMgr,
		log,
	)
	deleteAppointmentUseCase := deleteAppointmentUC.NewUseCase(
		deleteApptStore,
		deleteRoomStore,
		txMgr,
		log,
	)
	checkRoomAvailabilityUseCase := checkRoomAvailabilityUC.NewUseCase(
		availabilityStore,
		availCatalogStore,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		slotsApptStore,
		slotsRoomStore,
		slotsCatalogStore,
		practiceHours,
		log,
	)

	// Handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	quickBook := quickBookHandler.NewHandler(quickBookUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(deleteAppointmentUseCase, log)
	createRoomBooking := createRoomBookingHandler.NewHandler(createRoomBookingUseCase, log)
	getRoomBookings := getRoomBookingsHandler.NewHandler(roomBookingSvc, log)
	checkRoomAvailability := checkRoomAvailabilityHandler.NewHandler(checkRoomAvailabilityUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (patient-facing, no authentication)
	// ============================================================

	// Room availability probe for a single time window
	api.HandleFunc("/rooms/availability/{roomId}",
		checkRoomAvailability.Handle).Methods(http.MethodGet)

	// Patient self-scheduling from a shared link
	api.HandleFunc("/appointments/quick-book",
		quickBook.Handle).Methods(http.MethodPost)

	// Free slots per calendar
	api.HandleFunc("/rooms/{roomId}/available-slots",
		getAvailableSlots.HandleRoom).Methods(http.MethodGet)
	api.HandleFunc("/psychologists/{psychologistId}/available-slots",
		getAvailableSlots.HandlePsychologist).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (require X-Staff-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Appointments ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Room bookings ---
	protected.HandleFunc("/room-bookings", createRoomBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/{roomId}/bookings", getRoomBookings.Handle).Methods(http.MethodGet)

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
			log.Fatal("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	close(stopMetricsCh)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}

// seedMemoryCatalog loads a minimal room and psychologist catalog so
// the memory strategy is usable out of the box.
func seedMemoryCatalog(store *memory.Store) {
	store.AddRoom(domain.Room{ID: 1, Name: "Sala 1", Capacity: 2, IsAccessible: true})
	store.AddRoom(domain.Room{ID: 2, Name: "Sala 2", Capacity: 3, HasWhiteboard: true})
	store.AddRoom(domain.Room{ID: 3, Name: "Sala 3", Capacity: 6, HasVideoCall: true})

	store.AddPsychologist(domain.Psychologist{ID: 1, FullName: "Dra. Ana Souza", Specialization: "TCC"})
	store.AddPsychologist(domain.Psychologist{ID: 2, FullName: "Dr. Carlos Lima", Specialization: "Psicanálise"})
}
