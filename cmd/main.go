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

	confirmPaymentHandler "github.com/m04kA/Arena-BookingService/internal/api/handlers/confirm_payment"
	createBookingHandler "github.com/m04kA/Arena-BookingService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/Arena-BookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/Arena-BookingService/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/m04kA/Arena-BookingService/internal/api/handlers/get_user_bookings"
	listClubsHandler "github.com/m04kA/Arena-BookingService/internal/api/handlers/list_clubs"
	"github.com/m04kA/Arena-BookingService/internal/api/middleware"
	"github.com/m04kA/Arena-BookingService/internal/config"
	bookingRepo "github.com/m04kA/Arena-BookingService/internal/infra/storage/booking"
	clubRepo "github.com/m04kA/Arena-BookingService/internal/infra/storage/club"
	gatewayClient "github.com/m04kA/Arena-BookingService/internal/integrations/paymentgateway"
	smsClient "github.com/m04kA/Arena-BookingService/internal/integrations/smsprovider"
	bookingsService "github.com/m04kA/Arena-BookingService/internal/service/bookings"
	"github.com/m04kA/Arena-BookingService/internal/service/notifications"
	paymentsService "github.com/m04kA/Arena-BookingService/internal/service/payments"
	createBookingUC "github.com/m04kA/Arena-BookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/Arena-BookingService/internal/usecase/get_availability"
	"github.com/m04kA/Arena-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Arena-BookingService/pkg/logger"
	"github.com/m04kA/Arena-BookingService/pkg/metrics"
	"github.com/m04kA/Arena-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/Arena-BookingService/pkg/txmanager"
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

	log.Info("Starting Arena-BookingService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		clubRepository    *clubRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		clubRepository = clubRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		clubRepository = clubRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем диспетчер уведомлений
	// При выключенном SMS провайдере диспетчер работает в режиме "только лог"
	var sms notifications.SMSClient
	if cfg.SMS.Enabled {
		sms = smsClient.NewClient(
			cfg.SMS.BaseURL,
			cfg.SMS.APIKey,
			cfg.SMS.SenderID,
			time.Duration(cfg.SMS.Timeout)*time.Second,
			log,
		)
		log.Info("SMS provider enabled (url=%s, timeout=%ds)", cfg.SMS.BaseURL, cfg.SMS.Timeout)
	} else {
		log.Info("SMS provider disabled, notifications will be logged only")
	}
	notifier := notifications.NewDispatcher(sms, clubRepository, time.Duration(cfg.SMS.Timeout)*time.Second, log)

	// Инициализируем координатор платежей
	// Выключенный шлюз переводит сервис в режим прямого подтверждения
	var paymentCoordinator *paymentsService.Service
	if cfg.Payments.Enabled {
		gateway := gatewayClient.NewClient(
			cfg.Payments.BaseURL,
			cfg.Payments.KeyID,
			cfg.Payments.KeySecret,
			time.Duration(cfg.Payments.Timeout)*time.Second,
			log,
		)
		paymentCoordinator = paymentsService.NewGatewayService(
			bookingRepository,
			gateway,
			cfg.Payments.Currency,
			notifier,
			log,
		)
		log.Info("Payment gateway enabled (url=%s, currency=%s, timeout=%ds)",
			cfg.Payments.BaseURL, cfg.Payments.Currency, cfg.Payments.Timeout)
	} else {
		paymentCoordinator = paymentsService.NewDirectService(bookingRepository, notifier, log)
		log.Info("Payment gateway disabled, bookings are confirmed directly")
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		clubRepository,
		paymentCoordinator,
		txMgr,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		clubRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	confirmPayment := confirmPaymentHandler.NewHandler(paymentCoordinator, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listClubs := listClubsHandler.NewHandler(clubRepository, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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

	// Каталог одобренных клубов
	api.HandleFunc("/clubs", listClubs.Handle).Methods(http.MethodGet)

	// Доступные слоты клуба на дату
	api.HandleFunc("/clubs/{clubId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Callback платёжного шлюза
	api.HandleFunc("/bookings/{bookingId}/confirm", confirmPayment.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

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
