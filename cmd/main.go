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
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers/cancel_booking"
	cancelSlotsHandler "github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers/cancel_slots"
	confirmSlotsHandler "github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers/confirm_slots"
	createBookingHandler "github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers/create_booking"
	createRoomHandler "github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers/create_room"
	deleteRoomHandler "github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers/delete_room"
	exportBookingsHandler "github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers/export_bookings"
	generateSlotsHandler "github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers/generate_slots"
	getAvailableSlotsHandler "github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers/get_available_slots"
	getBookingFormHandler "github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers/get_booking_form"
	getSubscriptionHandler "github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers/get_subscription"
	listAnnouncementsHandler "github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers/list_announcements"
	listBookingsHandler "github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers/list_bookings"
	listDateTypesHandler "github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers/list_date_types"
	listRoomsHandler "github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers/list_rooms"
	listVoicesHandler "github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers/list_voices"
	subscribeHandler "github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers/subscribe_waiting_list"
	unsubscribeHandler "github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers/unsubscribe_waiting_list"
	updateAnnouncementHandler "github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers/update_announcement"
	updateDeadlineHandler "github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers/update_deadline"
	"github.com/m04kA/SMC-RehearsalBooking/internal/api/middleware"
	"github.com/m04kA/SMC-RehearsalBooking/internal/config"
	"github.com/m04kA/SMC-RehearsalBooking/internal/i18n"
	announcementRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/announcement"
	bookingRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/booking"
	dateTypeRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/datetype"
	"github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/migrations"
	roomRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/room"
	slotRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/slot"
	waitingListRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/waitinglist"
	"github.com/m04kA/SMC-RehearsalBooking/internal/integrations/mailer"
	announcementsService "github.com/m04kA/SMC-RehearsalBooking/internal/service/announcements"
	bookingsService "github.com/m04kA/SMC-RehearsalBooking/internal/service/bookings"
	dateTypesService "github.com/m04kA/SMC-RehearsalBooking/internal/service/datetypes"
	roomsService "github.com/m04kA/SMC-RehearsalBooking/internal/service/rooms"
	waitingListService "github.com/m04kA/SMC-RehearsalBooking/internal/service/waitinglist"
	cancelBookingUC "github.com/m04kA/SMC-RehearsalBooking/internal/usecase/cancel_booking"
	cancelSlotsUC "github.com/m04kA/SMC-RehearsalBooking/internal/usecase/cancel_slots"
	confirmSlotsUC "github.com/m04kA/SMC-RehearsalBooking/internal/usecase/confirm_slots"
	createBookingUC "github.com/m04kA/SMC-RehearsalBooking/internal/usecase/create_booking"
	generateSlotsUC "github.com/m04kA/SMC-RehearsalBooking/internal/usecase/generate_slots"
	getAvailableSlotsUC "github.com/m04kA/SMC-RehearsalBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-RehearsalBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-RehearsalBooking/pkg/logger"
	"github.com/m04kA/SMC-RehearsalBooking/pkg/metrics"
	"github.com/m04kA/SMC-RehearsalBooking/pkg/txmanager"
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

	log.Info("Starting SMC-RehearsalBooking...")
	log.Info("Configuration loaded from config.toml (timezone=%s, enabled_date_types=%v)",
		cfg.Booking.Timezone, cfg.Booking.EnabledDateTypes)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(db, log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Обёртка БД: с метриками или без, транзакции работают одинаково
	var (
		executor dbmetrics.DBExecutor
		txMgr    *txmanager.TransactionManager
	)
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		plainDB := dbmetrics.Plain(db)
		executor = plainDB
		txMgr = txmanager.NewTransactionManager(plainDB)
	}

	// Инициализируем репозитории
	slotRepository := slotRepo.NewRepository(executor)
	roomRepository := roomRepo.NewRepository(executor)
	dateTypeRepository := dateTypeRepo.NewRepository(executor)
	bookingRepository := bookingRepo.NewRepository(executor)
	waitingListRepository := waitingListRepo.NewRepository(executor)
	announcementRepository := announcementRepo.NewRepository(executor)

	// Каталог переводов
	catalog, err := i18n.New()
	if err != nil {
		log.Fatal("Failed to load message catalogs: %v", err)
	}

	// Почта
	var transport mailer.Transport
	switch cfg.Mail.Transport {
	case "smtp":
		transport = mailer.NewSMTPTransport(mailer.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			TLS:      cfg.SMTP.TLS,
		})
		log.Info("Mail transport: smtp (addr=%s)", cfg.SMTP.Addr())
	case "amqp":
		transport = mailer.NewAMQPTransport(cfg.AMQP.URL, cfg.AMQP.Queue)
		log.Info("Mail transport: amqp (queue=%s)", cfg.AMQP.Queue)
	default:
		transport = mailer.NewLogTransport(log)
		log.Warn("Mail transport: log, mails are only written to the log")
	}
	mailClient, err := mailer.NewClient(cfg.Mail.FromAddress, time.Duration(cfg.Mail.Timeout)*time.Second, catalog, transport, log)
	if err != nil {
		log.Fatal("Failed to initialize mailer: %v", err)
	}

	// Redis для rate limit (если включен)
	var scripter redis.Scripter
	if cfg.RateLimit.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is not reachable, rate limit fails open: addr=%s, error=%v", cfg.Redis.Addr, err)
		}
		cancelPing()
		scripter = rdb
		log.Info("Rate limit enabled (capacity=%d, refill=%d/%ds)",
			cfg.RateLimit.Capacity, cfg.RateLimit.RefillTokens, cfg.RateLimit.RefillInterval)
	}

	location := cfg.Booking.Location()

	// Инициализируем сервисы
	waitingListSvc := waitingListService.NewService(
		waitingListRepository,
		dateTypeRepository,
		cfg.Booking,
		mailClient,
		metricsCollector,
		cfg.Booking.WebAddress,
		log,
	)
	dateTypesSvc := dateTypesService.NewService(dateTypeRepository, cfg.Booking.EnabledDateTypes, log)
	roomsSvc := roomsService.NewService(roomRepository, log)
	announcementsSvc := announcementsService.NewService(announcementRepository, dateTypeRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, dateTypeRepository, catalog, location, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		slotRepository,
		dateTypeRepository,
		waitingListRepository,
		cfg.Booking,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		getAvailableSlotsUseCase,
		bookingRepository,
		dateTypeRepository,
		waitingListRepository,
		txMgr,
		mailClient,
		metricsCollector,
		location,
		cfg.Booking.WebAddress,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(bookingRepository, waitingListSvc, metricsCollector, log)
	generateSlotsUseCase := generateSlotsUC.NewUseCase(roomRepository, dateTypeRepository, log)
	confirmSlotsUseCase := confirmSlotsUC.NewUseCase(slotRepository, roomRepository, dateTypeRepository, txMgr, log)
	cancelSlotsUseCase := cancelSlotsUC.NewUseCase(
		slotRepository,
		bookingRepository,
		txMgr,
		mailClient,
		waitingListSvc,
		metricsCollector,
		location,
		log,
	)

	// Инициализируем handlers
	listDateTypes := listDateTypesHandler.NewHandler(dateTypesSvc, announcementsSvc, catalog, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, announcementsSvc, catalog, log)
	listVoices := listVoicesHandler.NewHandler(dateTypesSvc, catalog, log)
	getBookingForm := getBookingFormHandler.NewHandler(getAvailableSlotsUseCase, dateTypesSvc, announcementsSvc, catalog, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, catalog, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, catalog, log)
	subscribe := subscribeHandler.NewHandler(waitingListSvc, catalog, log)
	getSubscription := getSubscriptionHandler.NewHandler(waitingListSvc, catalog, log)
	unsubscribe := unsubscribeHandler.NewHandler(waitingListSvc, catalog, log)

	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, catalog, log)
	confirmSlots := confirmSlotsHandler.NewHandler(confirmSlotsUseCase, catalog, log)
	cancelSlots := cancelSlotsHandler.NewHandler(cancelSlotsUseCase, catalog, log)
	listRooms := listRoomsHandler.NewHandler(roomsSvc, catalog, log)
	createRoom := createRoomHandler.NewHandler(roomsSvc, catalog, log)
	deleteRoom := deleteRoomHandler.NewHandler(roomsSvc, catalog, log)
	updateDeadline := updateDeadlineHandler.NewHandler(dateTypesSvc, catalog, log)
	listAnnouncements := listAnnouncementsHandler.NewHandler(announcementsSvc, catalog, log)
	updateAnnouncement := updateAnnouncementHandler.NewHandler(announcementsSvc, catalog, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, catalog, log)
	exportBookings := exportBookingsHandler.NewHandler(bookingsSvc, catalog, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Language)

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/date-types", listDateTypes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/dates/{dateType}", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/dates/{dateType}/voices", listVoices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/new/{dateId:[0-9]+}", getBookingForm.Handle).Methods(http.MethodGet)
	api.HandleFunc("/waiting-list/unsubscribe/{token}", getSubscription.Handle).Methods(http.MethodGet)

	// POST запросы публичной части ограничены по частоте
	limiter := middleware.NewRateLimiter(cfg.RateLimit, scripter, catalog, log)
	public := api.PathPrefix("").Subrouter()
	public.Use(limiter.Middleware)

	public.HandleFunc("/bookings/new/{dateId:[0-9]+}", createBooking.Handle).Methods(http.MethodPost)
	public.HandleFunc("/bookings/delete/{token}", cancelBooking.Handle).Methods(http.MethodPost)
	public.HandleFunc("/waiting-list/subscribe/{dateType}", subscribe.Handle).Methods(http.MethodPost)
	public.HandleFunc("/waiting-list/unsubscribe/{token}", unsubscribe.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (Bearer JWT с role=admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.JWTSecret, cfg.Auth.Issuer, catalog, log))

	// --- Слоты ---
	admin.HandleFunc("/dates/generate", generateSlots.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/dates/confirm", confirmSlots.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/dates/cancel", cancelSlots.Handle).Methods(http.MethodPost)

	// --- Комнаты ---
	admin.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/rooms/{roomId:[0-9]+}", deleteRoom.Handle).Methods(http.MethodDelete)

	// --- Типы дат ---
	admin.HandleFunc("/date-types/{dateType}/deadline", updateDeadline.Handle).Methods(http.MethodPut)

	// --- Объявления ---
	admin.HandleFunc("/announcements", listAnnouncements.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/announcements/{position}/{lang}", updateAnnouncement.Handle).Methods(http.MethodPut)

	// --- Отчеты ---
	admin.HandleFunc("/bookings/{dateType}", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{dateType}/export", exportBookings.Handle).Methods(http.MethodGet)

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
	close(stopMetricsCh)

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
