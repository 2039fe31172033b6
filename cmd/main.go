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

	assignSpecialtyHandler "github.com/m04kA/SMC-StylistService/internal/api/handlers/assign_specialty"
	createSpecialtyHandler "github.com/m04kA/SMC-StylistService/internal/api/handlers/create_specialty"
	createTimeSlotHandler "github.com/m04kA/SMC-StylistService/internal/api/handlers/create_time_slot"
	deleteSpecialtyHandler "github.com/m04kA/SMC-StylistService/internal/api/handlers/delete_specialty"
	deleteTimeSlotHandler "github.com/m04kA/SMC-StylistService/internal/api/handlers/delete_time_slot"
	getStylistSlotsHandler "github.com/m04kA/SMC-StylistService/internal/api/handlers/get_stylist_slots"
	getStylistSpecialtiesHandler "github.com/m04kA/SMC-StylistService/internal/api/handlers/get_stylist_specialties"
	listSpecialtiesHandler "github.com/m04kA/SMC-StylistService/internal/api/handlers/list_specialties"
	recountSpecialtiesHandler "github.com/m04kA/SMC-StylistService/internal/api/handlers/recount_specialties"
	syncStylistSpecialtiesHandler "github.com/m04kA/SMC-StylistService/internal/api/handlers/sync_stylist_specialties"
	toggleTimeSlotHandler "github.com/m04kA/SMC-StylistService/internal/api/handlers/toggle_time_slot"
	unassignSpecialtyHandler "github.com/m04kA/SMC-StylistService/internal/api/handlers/unassign_specialty"
	updateSpecialtyHandler "github.com/m04kA/SMC-StylistService/internal/api/handlers/update_specialty"
	updateTimeSlotHandler "github.com/m04kA/SMC-StylistService/internal/api/handlers/update_time_slot"
	"github.com/m04kA/SMC-StylistService/internal/api/middleware"
	"github.com/m04kA/SMC-StylistService/internal/config"
	assignmentRepo "github.com/m04kA/SMC-StylistService/internal/infra/storage/assignment"
	specialtyRepo "github.com/m04kA/SMC-StylistService/internal/infra/storage/specialty"
	timeslotRepo "github.com/m04kA/SMC-StylistService/internal/infra/storage/timeslot"
	staffServiceClient "github.com/m04kA/SMC-StylistService/internal/integrations/staffservice"
	assignmentsService "github.com/m04kA/SMC-StylistService/internal/service/assignments"
	scheduleService "github.com/m04kA/SMC-StylistService/internal/service/schedule"
	specialtiesService "github.com/m04kA/SMC-StylistService/internal/service/specialties"
	createTimeSlotUC "github.com/m04kA/SMC-StylistService/internal/usecase/create_time_slot"
	recountSpecialtiesUC "github.com/m04kA/SMC-StylistService/internal/usecase/recount_specialties"
	syncSpecialtiesUC "github.com/m04kA/SMC-StylistService/internal/usecase/sync_specialties"
	updateTimeSlotUC "github.com/m04kA/SMC-StylistService/internal/usecase/update_time_slot"
	"github.com/m04kA/SMC-StylistService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StylistService/pkg/logger"
	"github.com/m04kA/SMC-StylistService/pkg/metrics"
	"github.com/m04kA/SMC-StylistService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-StylistService/pkg/txmanager"
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

	log.Info("Starting SMC-StylistService...")
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

	// Инициализируем клиента StaffService
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (StaffService=%s timeout=%ds)",
		cfg.StaffService.URL, cfg.StaffService.Timeout)

	// Интерфейс transaction manager, общий для usecases и сервисов
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		specialtyRepository  *specialtyRepo.Repository
		assignmentRepository *assignmentRepo.Repository
		timeslotRepository   *timeslotRepo.Repository
		txMgr                TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		specialtyRepository = specialtyRepo.NewRepository(wrappedDB)
		assignmentRepository = assignmentRepo.NewRepository(wrappedDB)
		timeslotRepository = timeslotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		specialtyRepository = specialtyRepo.NewRepository(db)
		assignmentRepository = assignmentRepo.NewRepository(db)
		timeslotRepository = timeslotRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	specialtySvc := specialtiesService.NewService(specialtyRepository, log)
	assignmentSvc := assignmentsService.NewService(
		assignmentRepository,
		specialtyRepository,
		staffClient,
		txMgr,
		log,
	)
	scheduleSvc := scheduleService.NewService(timeslotRepository, log)

	// Инициализируем use cases
	syncSpecialtiesUseCase := syncSpecialtiesUC.NewUseCase(
		assignmentRepository,
		specialtyRepository,
		staffClient,
		txMgr,
		log,
	)
	recountSpecialtiesUseCase := recountSpecialtiesUC.NewUseCase(
		assignmentRepository,
		specialtyRepository,
		txMgr,
		log,
	)
	createTimeSlotUseCase := createTimeSlotUC.NewUseCase(
		timeslotRepository,
		staffClient,
		txMgr,
		log,
	)
	updateTimeSlotUseCase := updateTimeSlotUC.NewUseCase(
		timeslotRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	listSpecialties := listSpecialtiesHandler.NewHandler(specialtySvc, log)
	createSpecialty := createSpecialtyHandler.NewHandler(specialtySvc, log)
	updateSpecialty := updateSpecialtyHandler.NewHandler(specialtySvc, log)
	deleteSpecialty := deleteSpecialtyHandler.NewHandler(specialtySvc, log)
	recountSpecialties := recountSpecialtiesHandler.NewHandler(recountSpecialtiesUseCase, log)
	getStylistSpecialties := getStylistSpecialtiesHandler.NewHandler(assignmentSvc, log)
	syncStylistSpecialties := syncStylistSpecialtiesHandler.NewHandler(syncSpecialtiesUseCase, log)
	assignSpecialty := assignSpecialtyHandler.NewHandler(assignmentSvc, log)
	unassignSpecialty := unassignSpecialtyHandler.NewHandler(assignmentSvc, log)
	getStylistSlots := getStylistSlotsHandler.NewHandler(scheduleSvc, log)
	createTimeSlot := createTimeSlotHandler.NewHandler(createTimeSlotUseCase, log)
	updateTimeSlot := updateTimeSlotHandler.NewHandler(updateTimeSlotUseCase, log)
	deleteTimeSlot := deleteTimeSlotHandler.NewHandler(scheduleSvc, log)
	toggleTimeSlot := toggleTimeSlotHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог специализаций
	api.HandleFunc("/specialties", listSpecialties.Handle).Methods(http.MethodGet)

	// Специализации мастера с флагом isAssigned
	api.HandleFunc("/stylists/{stylistId}/specialties", getStylistSpecialties.Handle).Methods(http.MethodGet)

	// Расписание мастера
	api.HandleFunc("/stylists/{stylistId}/slots", getStylistSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Каталог специализаций ---
	protected.HandleFunc("/specialties", createSpecialty.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/specialties/recount", recountSpecialties.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/specialties/{specialtyId}", updateSpecialty.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/specialties/{specialtyId}", deleteSpecialty.Handle).Methods(http.MethodDelete)

	// --- Назначения специализаций ---
	// Синхронизация желаемого набора целиком
	protected.HandleFunc("/stylists/{stylistId}/specialties", syncStylistSpecialties.Handle).Methods(http.MethodPut)
	// Одиночное закрепление/снятие
	protected.HandleFunc("/stylists/{stylistId}/specialties/{specialtyId}", assignSpecialty.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/stylists/{stylistId}/specialties/{specialtyId}", unassignSpecialty.Handle).Methods(http.MethodDelete)

	// --- Расписание ---
	protected.HandleFunc("/stylists/{stylistId}/slots", createTimeSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots/{slotId}", updateTimeSlot.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/slots/{slotId}", deleteTimeSlot.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/slots/{slotId}/active", toggleTimeSlot.Handle).Methods(http.MethodPatch)

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
