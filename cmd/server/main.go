package main

import (
	"net/http"
	"os"
	"time"

	"github.com/Yash-007/zenith-engine/internal/api"
	"github.com/Yash-007/zenith-engine/internal/config"
	"github.com/Yash-007/zenith-engine/internal/engine"
	"github.com/Yash-007/zenith-engine/internal/featured"
	"github.com/Yash-007/zenith-engine/internal/handler"
	"github.com/Yash-007/zenith-engine/internal/logger"
	"github.com/Yash-007/zenith-engine/internal/middleware"
	"github.com/Yash-007/zenith-engine/internal/remote"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Backend API client
	client := remote.New(cfg.APIBaseURL, cfg.APIToken, cfg.APITimeout, cfg.MaxRetries)

	// Featured pick policy
	var policy featured.Policy
	switch cfg.FeaturedPolicy {
	case "first":
		policy = featured.First()
	default:
		policy = featured.Random(time.Now().UnixNano())
	}

	eng := engine.New(client, policy, cfg.ActivityWindowDays)

	// Initialize routes
	router := api.SetupRouter(handler.New(eng))

	// Wrap router with CORS middleware
	h := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, h); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
