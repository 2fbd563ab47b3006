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

	cancelSessionHandler "github.com/avdm/GameClub-BookingService/internal/api/handlers/cancel_session"
	completeSessionHandler "github.com/avdm/GameClub-BookingService/internal/api/handlers/complete_session"
	createBookingHandler "github.com/avdm/GameClub-BookingService/internal/api/handlers/create_booking"
	deleteClubSettingsHandler "github.com/avdm/GameClub-BookingService/internal/api/handlers/delete_club_settings"
	getAllClubSettingsHandler "github.com/avdm/GameClub-BookingService/internal/api/handlers/get_all_club_settings"
	getAvailableSlotsHandler "github.com/avdm/GameClub-BookingService/internal/api/handlers/get_available_slots"
	getClubSessionsHandler "github.com/avdm/GameClub-BookingService/internal/api/handlers/get_club_sessions"
	getClubSettingsHandler "github.com/avdm/GameClub-BookingService/internal/api/handlers/get_club_settings"
	getPlatformsHandler "github.com/avdm/GameClub-BookingService/internal/api/handlers/get_platforms"
	getSessionHandler "github.com/avdm/GameClub-BookingService/internal/api/handlers/get_session"
	getUserSessionsHandler "github.com/avdm/GameClub-BookingService/internal/api/handlers/get_user_sessions"
	quotePriceHandler "github.com/avdm/GameClub-BookingService/internal/api/handlers/quote_price"
	updateClubSettingsHandler "github.com/avdm/GameClub-BookingService/internal/api/handlers/update_club_settings"
	"github.com/avdm/GameClub-BookingService/internal/api/middleware"
	"github.com/avdm/GameClub-BookingService/internal/catalog"
	"github.com/avdm/GameClub-BookingService/internal/config"
	sessionRepo "github.com/avdm/GameClub-BookingService/internal/infra/storage/session"
	settingsRepo "github.com/avdm/GameClub-BookingService/internal/infra/storage/settings"
	authServiceClient "github.com/avdm/GameClub-BookingService/internal/integrations/authservice"
	"github.com/avdm/GameClub-BookingService/internal/pricing"
	sessionsService "github.com/avdm/GameClub-BookingService/internal/service/sessions"
	settingsService "github.com/avdm/GameClub-BookingService/internal/service/settings"
	createBookingUC "github.com/avdm/GameClub-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/avdm/GameClub-BookingService/internal/usecase/get_available_slots"
	"github.com/avdm/GameClub-BookingService/pkg/dbmetrics"
	"github.com/avdm/GameClub-BookingService/pkg/logger"
	"github.com/avdm/GameClub-BookingService/pkg/metrics"
	"github.com/avdm/GameClub-BookingService/pkg/simpletxmanager"
	"github.com/avdm/GameClub-BookingService/pkg/txmanager"
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

	log.Info("Starting GameClub-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Таймзона клуба: все даты и время сессий интерпретируются в ней
	location, err := time.LoadLocation(cfg.Club.Timezone)
	if err != nil {
		log.Fatal("Failed to load club timezone %q: %v", cfg.Club.Timezone, err)
	}
	log.Info("Club timezone: %s", cfg.Club.Timezone)

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

	// Инициализируем клиента сервиса аутентификации
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	log.Info("AuthService client initialized (url=%s, timeout=%ds)",
		cfg.AuthService.URL, cfg.AuthService.Timeout)

	// Каталог платформ и дополнений живет в памяти процесса
	platformCatalog := catalog.NewDefault()
	priceCalculator := pricing.NewCalculator(platformCatalog)
	log.Info("Platform catalog initialized: %d platforms, %d addons",
		len(platformCatalog.Platforms()), len(platformCatalog.Addons()))

	// Инициализируем репозитории (с метриками или без)
	var (
		sessionRepository  *sessionRepo.Repository
		settingsRepository *settingsRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		sessionRepository = sessionRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		sessionRepository = sessionRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	sessionSvc := sessionsService.NewService(
		sessionRepository,
		authClient,
		location,
		log,
	)
	settingsSvc := settingsService.NewService(
		settingsRepository,
		platformCatalog,
		authClient,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		sessionRepository,
		settingsRepository,
		platformCatalog,
		priceCalculator,
		txMgr,
		location,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		sessionRepository,
		settingsRepository,
		platformCatalog,
		location,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	cancelSession := cancelSessionHandler.NewHandler(sessionSvc, log)
	completeSession := completeSessionHandler.NewHandler(sessionSvc, log)
	getUserSessions := getUserSessionsHandler.NewHandler(sessionSvc, log)
	getClubSessions := getClubSessionsHandler.NewHandler(sessionSvc, log)
	getPlatforms := getPlatformsHandler.NewHandler(platformCatalog, log)
	quotePrice := quotePriceHandler.NewHandler(priceCalculator, log)
	getClubSettings := getClubSettingsHandler.NewHandler(settingsSvc, log)
	getAllClubSettings := getAllClubSettingsHandler.NewHandler(settingsSvc, log)
	updateClubSettings := updateClubSettingsHandler.NewHandler(settingsSvc, log)
	deleteClubSettings := deleteClubSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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

	// Каталог платформ и дополнений
	api.HandleFunc("/platforms", getPlatforms.Handle).Methods(http.MethodGet)

	// Доступные слоты платформы на дату
	api.HandleFunc("/platforms/{platformId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Расчет стоимости без создания сессии
	api.HandleFunc("/price-quote", quotePrice.Handle).Methods(http.MethodPost)

	// Действующие настройки бронирования клуба
	api.HandleFunc("/club/settings", getClubSettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Игровые сессии ---
	// Создание сессии
	protected.HandleFunc("/sessions", createBooking.Handle).Methods(http.MethodPost)

	// Получение сессии по ID
	protected.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)

	// Отмена сессии
	protected.HandleFunc("/sessions/{sessionId}/cancel", cancelSession.Handle).Methods(http.MethodPatch)

	// Завершение сессии (для сотрудников)
	protected.HandleFunc("/sessions/{sessionId}/complete", completeSession.Handle).Methods(http.MethodPatch)

	// История сессий пользователя
	protected.HandleFunc("/users/{userId}/sessions", getUserSessions.Handle).Methods(http.MethodGet)

	// --- Управление клубом (для сотрудников) ---
	// Список сессий клуба
	protected.HandleFunc("/club/sessions", getClubSessions.Handle).Methods(http.MethodGet)

	// Все строки настроек (платформенные и общеклубная)
	protected.HandleFunc("/club/settings/all", getAllClubSettings.Handle).Methods(http.MethodGet)

	// Обновление настроек бронирования
	protected.HandleFunc("/club/settings", updateClubSettings.Handle).Methods(http.MethodPut)

	// Удаление строки настроек (возврат платформы на общеклубные значения)
	protected.HandleFunc("/club/settings/{settingsId}", deleteClubSettings.Handle).Methods(http.MethodDelete)

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
