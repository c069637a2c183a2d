package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/rescue_status_engine/internal/config"
	"github.com/shenikar/rescue_status_engine/internal/dispatcher"
	v1 "github.com/shenikar/rescue_status_engine/internal/handler/http/v1"
	"github.com/shenikar/rescue_status_engine/internal/inference"
	"github.com/shenikar/rescue_status_engine/internal/notifier"
	"github.com/shenikar/rescue_status_engine/internal/priority"
	"github.com/shenikar/rescue_status_engine/internal/repository"
	"github.com/shenikar/rescue_status_engine/internal/service"
	"github.com/shenikar/rescue_status_engine/pkg/logger"
	"github.com/shenikar/rescue_status_engine/pkg/postgres"
	redisclient "github.com/shenikar/rescue_status_engine/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/rescue_status_engine/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Rescue Status Engine API
// @version 1.0
// @description Status inference engine for emergency response tracking.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// loadKeywordTables возвращает таблицы ключевых слов: внешний JSON-файл,
// если он задан, иначе встроенные дефолты
func loadKeywordTables(cfg *config.Config, log *logrus.Logger) (priority.KeywordTables, priority.KeywordTables, error) {
	if cfg.KeywordTablesPath == "" {
		return priority.DefaultPriorityTables(), priority.DefaultMedicalTables(), nil
	}
	priorityTables, medicalTables, err := priority.LoadTables(cfg.KeywordTablesPath)
	if err != nil {
		return nil, nil, err
	}
	log.WithField("path", cfg.KeywordTablesPath).Info("Loaded external keyword tables")
	return priorityTables, medicalTables, nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Издатель событий смены статуса и воркер доставки на dashboard-вебхук
	publisher := notifier.NewRedisPublisher(redisClient)
	deliveryWorker := notifier.NewDeliveryWorker(redisClient, log, cfg)
	deliveryWorker.Start(ctx)

	// Инициализация репозиториев
	personRepo := repository.NewPersonRepository(dbpool)
	assignmentRepo := repository.NewAssignmentRepository(dbpool)
	referenceRepo := repository.NewReferenceRepository(dbpool, redisClient)
	store := repository.NewInferenceStore(personRepo, assignmentRepo, referenceRepo)

	// Таблицы ключевых слов и движок инференса
	priorityTables, medicalTables, err := loadKeywordTables(cfg, log)
	if err != nil {
		log.Fatalf("Failed to load keyword tables: %v", err)
	}
	scorer := priority.NewScorer(medicalTables, cfg.Inference.DangerZoneFalloffMeters)
	engine := inference.NewEngine(store, publisher, priorityTables, cfg.Inference, log)

	// Диспетчер инференса: сериализация по человеку + периодический полный проход
	disp := dispatcher.NewDispatcher(engine, store, cfg.Inference, log)
	disp.Start()
	defer disp.Stop()

	// Инициализация сервисов
	personService := service.NewPersonService(personRepo, store, scorer, disp, log)
	assignmentService := service.NewAssignmentService(assignmentRepo, personRepo, disp, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(personService, assignmentService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
