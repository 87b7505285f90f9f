package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"solospark/internal/cache"
	"solospark/internal/service"
	"solospark/internal/transport/rest/handler"
	"solospark/internal/transport/rest/middleware"
	"solospark/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService      *service.AuthService
	UserService      *service.UserService
	QuestService     *service.QuestService
	TaskService      *service.TaskService
	RewardService    *service.RewardService
	AnalyticsService *service.AnalyticsService
	InsightService   *service.InsightService
	Leaderboard      cache.LeaderboardCache
	WSHub            *ws.Hub
	Logger           *zap.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	userHandler := handler.NewUserHandler(c.UserService, c.AnalyticsService, c.InsightService)
	questHandler := handler.NewQuestHandler(c.QuestService)
	taskHandler := handler.NewTaskHandler(c.TaskService)
	rewardHandler := handler.NewRewardHandler(c.RewardService)
	leaderboardHandler := handler.NewLeaderboardHandler(c.Leaderboard)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.Logger)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws", wsHandler.UserWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Authenticated routes
	authed := v1.NewRoute().Subrouter()
	authed.Use(authMW.RequireUser)

	authed.HandleFunc("/users/{userId}", userHandler.Get).Methods("GET", "OPTIONS")
	authed.HandleFunc("/users/{userId}", userHandler.Save).Methods("PUT", "OPTIONS")
	authed.HandleFunc("/users/{userId}", userHandler.Delete).Methods("DELETE", "OPTIONS")
	authed.HandleFunc("/users/{userId}/traits", userHandler.SaveTrait).Methods("POST", "OPTIONS")
	authed.HandleFunc("/users/{userId}/moods", userHandler.SaveMood).Methods("POST", "OPTIONS")
	authed.HandleFunc("/users/{userId}/moods", userHandler.ListMoods).Methods("GET", "OPTIONS")
	authed.HandleFunc("/users/{userId}/points", userHandler.SavePoints).Methods("POST", "OPTIONS")
	authed.HandleFunc("/users/{userId}/points", userHandler.ListPoints).Methods("GET", "OPTIONS")
	authed.HandleFunc("/users/{userId}/responses", questHandler.SubmitResponse).Methods("POST", "OPTIONS")
	authed.HandleFunc("/users/{userId}/analysis", userHandler.Analyze).Methods("POST", "OPTIONS")
	authed.HandleFunc("/users/{userId}/insights", userHandler.Insights).Methods("GET", "OPTIONS")
	authed.HandleFunc("/users/{userId}/tasks", taskHandler.List).Methods("GET", "OPTIONS")

	authed.HandleFunc("/quests", questHandler.Create).Methods("POST", "OPTIONS")
	authed.HandleFunc("/quests", questHandler.List).Methods("GET", "OPTIONS")
	authed.HandleFunc("/quests/{questId}", questHandler.Get).Methods("GET", "OPTIONS")

	authed.HandleFunc("/tasks", taskHandler.Create).Methods("POST", "OPTIONS")
	authed.HandleFunc("/tasks/{taskId}", taskHandler.Get).Methods("GET", "OPTIONS")
	authed.HandleFunc("/tasks/{taskId}", taskHandler.Update).Methods("PUT", "OPTIONS")
	authed.HandleFunc("/tasks/{taskId}", taskHandler.Delete).Methods("DELETE", "OPTIONS")

	authed.HandleFunc("/rewards", rewardHandler.Create).Methods("POST", "OPTIONS")
	authed.HandleFunc("/rewards", rewardHandler.List).Methods("GET", "OPTIONS")
	authed.HandleFunc("/rewards/{rewardId}", rewardHandler.Update).Methods("PUT", "OPTIONS")
	authed.HandleFunc("/rewards/{rewardId}", rewardHandler.Delete).Methods("DELETE", "OPTIONS")

	authed.HandleFunc("/leaderboard", leaderboardHandler.Top).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
