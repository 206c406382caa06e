package api

import (
	"net/http"

	"github.com/Yash-007/zenith-engine/internal/handler"
	"github.com/Yash-007/zenith-engine/internal/middleware"
	"github.com/Yash-007/zenith-engine/internal/utils"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
)

func SetupRouter(h *handler.Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.OptionalAuth)

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)
	authenticatedRoutes.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", h.RootHandler).Methods(http.MethodGet)

	// Challenges
	authenticatedRoutes.HandleFunc("/challenges", h.GetChallenges).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/challenges/refresh", h.RefreshChallenges).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/challenges/interests/{id}/toggle", h.ToggleInterest).Methods(http.MethodPost)

	// Submissions
	authenticatedRoutes.HandleFunc("/submissions", h.SubmitChallenge).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/submissions", h.GetSubmissions).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/submissions/{id}", h.GetSubmissionByID).Methods(http.MethodGet)

	// User
	authenticatedRoutes.HandleFunc("/user", h.GetCurrentUser).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/user/activity", h.GetActivity).Methods(http.MethodGet)

	// Leaderboard
	authenticatedRoutes.HandleFunc("/leaderboard", h.GetLeaderboard).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/age-ranges", h.GetAgeRanges).Methods(http.MethodGet)

	// Rewards
	authenticatedRoutes.HandleFunc("/rewards/history", h.GetRewardHistory).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/rewards/redeem", h.RedeemPoints).Methods(http.MethodPost)

	// Chat (coach IA)
	authenticatedRoutes.HandleFunc("/chat/history", h.GetChatHistory).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/chat", h.AskCoach).Methods(http.MethodPost)

	// Health check
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
