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

	cancelSessionHandler "github.com/m04kA/FitStudio-SessionService/internal/api/handlers/cancel_session"
	confirmSessionHandler "github.com/m04kA/FitStudio-SessionService/internal/api/handlers/confirm_session"
	getDayBoardHandler "github.com/m04kA/FitStudio-SessionService/internal/api/handlers/get_day_board"
	getMemberQuotaHandler "github.com/m04kA/FitStudio-SessionService/internal/api/handlers/get_member_quota"
	getMemberSessionsHandler "github.com/m04kA/FitStudio-SessionService/internal/api/handlers/get_member_sessions"
	getSessionHandler "github.com/m04kA/FitStudio-SessionService/internal/api/handlers/get_session"
	getSlotSessionsHandler "github.com/m04kA/FitStudio-SessionService/internal/api/handlers/get_slot_sessions"
	requestSessionHandler "github.com/m04kA/FitStudio-SessionService/internal/api/handlers/request_session"
	reserveSessionHandler "github.com/m04kA/FitStudio-SessionService/internal/api/handlers/reserve_session"
	"github.com/m04kA/FitStudio-SessionService/internal/api/middleware"
	"github.com/m04kA/FitStudio-SessionService/internal/config"
	packagesRepo "github.com/m04kA/FitStudio-SessionService/internal/infra/storage/packages"
	sessionRepo "github.com/m04kA/FitStudio-SessionService/internal/infra/storage/session"
	memberServiceClient "github.com/m04kA/FitStudio-SessionService/internal/integrations/memberservice"
	quotaService "github.com/m04kA/FitStudio-SessionService/internal/service/quota"
	sessionsService "github.com/m04kA/FitStudio-SessionService/internal/service/sessions"
	getDayBoardUC "github.com/m04kA/FitStudio-SessionService/internal/usecase/get_day_board"
	requestSessionUC "github.com/m04kA/FitStudio-SessionService/internal/usecase/request_session"
	reserveSessionUC "github.com/m04kA/FitStudio-SessionService/internal/usecase/reserve_session"
	"github.com/m04kA/FitStudio-SessionService/pkg/dbmetrics"
	"github.com/m04kA/FitStudio-SessionService/pkg/logger"
	"github.com/m04kA/FitStudio-SessionService/pkg/metrics"
	"github.com/m04kA/FitStudio-SessionService/pkg/simpletxmanager"
	"github.com/m04kA/FitStudio-SessionService/pkg/txmanager"
	"github.com/m04kA/FitStudio-SessionService/pkg/types"
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

	log.Info("Starting FitStudio-SessionService...")
	log.Info("Configuration loaded from config.toml")

	// Сетка слотов рабочего дня
	openTime, err := types.NewTimeStringFromString(cfg.Schedule.DayOpenTime)
	if err != nil {
		log.Fatal("Invalid schedule.day_open_time: %v", err)
	}
	closeTime, err := types.NewTimeStringFromString(cfg.Schedule.DayCloseTime)
	if err != nil {
		log.Fatal("Invalid schedule.day_close_time: %v", err)
	}
	schedule := getDayBoardUC.Schedule{
		OpenTime:            openTime,
		CloseTime:           closeTime,
		SlotDurationMinutes: cfg.Schedule.SlotDurationMinutes,
	}

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

	// Инициализируем интеграционного клиента справочника клиентов
	memberClient := memberServiceClient.NewClient(
		cfg.MemberService.URL,
		time.Duration(cfg.MemberService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (MemberService=%s timeout=%ds)",
		cfg.MemberService.URL, cfg.MemberService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		sessionRepository *sessionRepo.Repository
		packageRepository *packagesRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		sessionRepository = sessionRepo.NewRepository(wrappedDB)
		packageRepository = packagesRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		sessionRepository = sessionRepo.NewRepository(db)
		packageRepository = packagesRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	resolver := quotaService.NewResolver(packageRepository, log)
	ledger := quotaService.NewLedger(resolver, sessionRepository, log)
	policy := sessionsService.NewConflictPolicy(cfg.Reservation.ExclusiveSlots)
	sessionSvc := sessionsService.NewService(sessionRepository, policy, log)

	log.Info("Reservation policies: exclusive_slots=%v, enforce_quota_cap=%v",
		cfg.Reservation.ExclusiveSlots, cfg.Reservation.EnforceQuotaCap)

	// Инициализируем use cases
	requestSessionUseCase := requestSessionUC.NewUseCase(
		sessionRepository,
		ledger,
		txMgr,
		cfg.Reservation.EnforceQuotaCap,
		log,
	)

	reserveSessionUseCase := reserveSessionUC.NewUseCase(
		sessionRepository,
		ledger,
		policy,
		txMgr,
		cfg.Reservation.EnforceQuotaCap,
		log,
	)

	getDayBoardUseCase := getDayBoardUC.NewUseCase(
		sessionRepository,
		ledger,
		memberClient,
		schedule,
		log,
	)

	// Инициализируем handlers
	requestSession := requestSessionHandler.NewHandler(requestSessionUseCase, log)
	reserveSession := reserveSessionHandler.NewHandler(reserveSessionUseCase, log)
	confirmSession := confirmSessionHandler.NewHandler(sessionSvc, log)
	cancelSession := cancelSessionHandler.NewHandler(sessionSvc, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	getDayBoard := getDayBoardHandler.NewHandler(getDayBoardUseCase, log)
	getSlotSessions := getSlotSessionsHandler.NewHandler(sessionSvc, log)
	getMemberSessions := getMemberSessionsHandler.NewHandler(sessionSvc, log)
	getMemberQuota := getMemberQuotaHandler.NewHandler(ledger, log)

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

	// Доска расписания тренера на день
	api.HandleFunc("/trainers/{trainerId}/board",
		getDayBoard.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Сессии ---
	// Создание заявки на сессию (клиент)
	protected.HandleFunc("/sessions", requestSession.Handle).Methods(http.MethodPost)

	// Прямое бронирование сессии (тренер)
	protected.HandleFunc("/sessions/reserve", reserveSession.Handle).Methods(http.MethodPost)

	// Получение сессии по ID
	protected.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)

	// Подтверждение заявки
	protected.HandleFunc("/sessions/{sessionId}/confirm", confirmSession.Handle).Methods(http.MethodPatch)

	// Отмена сессии
	protected.HandleFunc("/sessions/{sessionId}/cancel", cancelSession.Handle).Methods(http.MethodPatch)

	// --- Слоты тренера ---
	// Все сессии одного слота (разбор конкурирующих заявок)
	protected.HandleFunc("/trainers/{trainerId}/slots/{time}/sessions", getSlotSessions.Handle).Methods(http.MethodGet)

	// --- Клиенты ---
	// История сессий клиента
	protected.HandleFunc("/members/{memberId}/sessions", getMemberSessions.Handle).Methods(http.MethodGet)

	// Срез квоты клиента по типу сессий
	protected.HandleFunc("/members/{memberId}/quota", getMemberQuota.Handle).Methods(http.MethodGet)

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
