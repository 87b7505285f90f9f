package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"solospark/internal/cache"
	"solospark/internal/config"
	"solospark/internal/logging"
	"solospark/internal/repository"
	"solospark/internal/service"
	"solospark/internal/transport/rest"
	"solospark/internal/transport/ws"
)

func main() {
	logger, err := logging.Init()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("mongodb connect failed", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		logger.Fatal("mongodb ping failed", zap.Error(err))
	}
	logger.Info("connected to mongodb", zap.String("database", cfg.MongoDatabase))

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Fatal("redis ping failed", zap.Error(err))
	}
	logger.Info("connected to redis", zap.String("addr", cfg.RedisAddr))

	// WebSocket hub
	wsHub := ws.NewHub(logger)

	// Repositories
	userRepo := repository.NewUserRepo(db)
	traitRepo := repository.NewTraitRepo(db)
	moodRepo := repository.NewMoodRepo(db)
	pointsRepo := repository.NewPointsRepo(db)
	questRepo := repository.NewQuestRepo(db)
	responseRepo := repository.NewResponseRepo(db)
	metricsRepo := repository.NewMetricsRepo(db)
	taskRepo := repository.NewTaskRepo(db)
	rewardRepo := repository.NewRewardRepo(db)

	// Caches
	questCache := cache.NewQuestCache(rdb)
	insightCache := cache.NewInsightCache(rdb)
	leaderboard := cache.NewLeaderboardCache(rdb)

	// Services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	analyticsSvc := service.NewAnalyticsService(
		userRepo, traitRepo, moodRepo, responseRepo, questRepo, metricsRepo,
		leaderboard, logger,
	)
	userSvc := service.NewUserService(
		userRepo, traitRepo, moodRepo, pointsRepo, responseRepo, metricsRepo,
		taskRepo, leaderboard, logger,
	)
	questSvc := service.NewQuestService(
		questRepo, responseRepo, userRepo, metricsRepo, questCache,
		analyticsSvc, logger,
	)
	taskSvc := service.NewTaskService(taskRepo, metricsRepo, logger)
	rewardSvc := service.NewRewardService(rewardRepo, logger)
	insightSvc := service.NewInsightService(
		userRepo, traitRepo, moodRepo, responseRepo, questRepo, insightCache,
		logger,
	)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	analyticsSvc.SetBroadcaster(wsHub)

	container := &rest.Container{
		AuthService:      authSvc,
		UserService:      userSvc,
		QuestService:     questSvc,
		TaskService:      taskSvc,
		RewardService:    rewardSvc,
		AnalyticsService: analyticsSvc,
		InsightService:   insightSvc,
		Leaderboard:      leaderboard,
		WSHub:            wsHub,
		Logger:           logger,
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      rest.NewRouter(container),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen and serve failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
