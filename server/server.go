package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"distrohub/cache"
	"distrohub/catalog"
	"distrohub/config"
	"distrohub/core/player"
	"distrohub/db"
	"distrohub/logger"
	"distrohub/repository"

	"github.com/gorilla/mux"
)

// Start initializes and starts the HTTP server.
func Start() {
	cfg := config.Load()

	logger.Init(logger.Config{
		Level:      cfg.LogLevel,
		OutputPath: cfg.LogOutput,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	})

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Connect to the database (content tables for the public pages).
	if err := db.ConnectGormDB(cfg); err != nil {
		logger.Fatal("Failed to connect to database", logger.ErrorField(err))
	}
	defer db.CloseGormDB()

	// Connect to Redis (playback session snapshots).
	if err := cache.ConnectRedis(cfg); err != nil {
		logger.Fatal("Failed to connect to Redis", logger.ErrorField(err))
	}
	defer cache.CloseRedis()
	logger.Info("Successfully connected to Redis")

	// One shared playback session for the whole process, with the set of
	// connected pages as its audio output.
	hub := player.NewHub()
	session := player.NewSession(hub, cfg.PlayerDefaultVolume)
	defer session.Close()

	// The persistent player survives restarts: restore track, queue,
	// volume and shuffle mode, always stopped.
	if state, ok, err := cache.LoadSessionState(context.Background()); err != nil {
		logger.Warn("Failed to restore playback session", logger.ErrorField(err))
	} else if ok {
		session.Restore(state)
		logger.Info("Playback session restored",
			logger.Int("queued", len(state.Queue)),
			logger.Bool("shuffle", state.IsShuffleMode))
	}

	session.OnChange(hub.BroadcastState)
	session.OnChange(func(state player.State) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := cache.SaveSessionState(ctx, state); err != nil {
			logger.Debug("Failed to persist playback session", logger.ErrorField(err))
		}
	})

	client := catalog.NewClient(cfg)
	engine := catalog.NewEngine(cfg.CatalogPageSize)
	contentRepo := repository.NewContentRepository()

	// Catalog credentials can be rotated by editing .env while running.
	stopWatch, err := config.Watch(func(next *config.Config) {
		client.Reconfigure(next)
		logger.Info("Catalog client reconfigured")
	})
	if err != nil {
		logger.Warn("Config watcher unavailable", logger.ErrorField(err))
	} else {
		defer stopWatch()
	}

	// Warm the engine. Failure is not fatal: the catalog page shows the
	// fetch error and refreshing is user-triggered.
	func() {
		ctx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.CatalogTimeoutSec)*time.Second)
		defer cancel()
		releases, err := client.Fetch(ctx)
		if err != nil {
			logger.Warn("Initial catalog fetch failed", logger.ErrorField(err))
			return
		}
		engine.SetReleases(releases)
		logger.Info("Catalog loaded", logger.Int("releases", len(releases)))
	}()

	apiHandler := NewAPIHandler(client, engine, session, hub, contentRepo, cfg)

	router := mux.NewRouter()

	// CORS middleware: the public site and the websocket pages are served
	// from a separate frontend origin.
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, HEAD")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "86400")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	// Catalog endpoints.
	router.HandleFunc("/api/catalog", apiHandler.GetCatalogHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/catalog/more", apiHandler.LoadMoreHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/catalog/refresh", apiHandler.RefreshCatalogHandler).Methods(http.MethodPost)

	// Playback session endpoints.
	router.HandleFunc("/api/player/state", apiHandler.GetPlayerStateHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/player/play", apiHandler.PlayTrackHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/player/toggle", apiHandler.TogglePlayHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/player/next", apiHandler.NextTrackHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/player/prev", apiHandler.PrevTrackHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/player/seek", apiHandler.SeekHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/player/volume", apiHandler.VolumeHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/player/queue", apiHandler.QueueHandler).Methods(http.MethodPost, http.MethodDelete)
	router.HandleFunc("/api/player/shuffle", apiHandler.ShufflePlayHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/player/shuffle/toggle", apiHandler.ToggleShuffleHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/player/expand/toggle", apiHandler.ToggleExpandHandler).Methods(http.MethodPost)

	// One websocket per open page keeps the player state in sync across
	// navigations.
	router.HandleFunc("/ws/player", apiHandler.PlayerWSHandler)

	// Public content endpoints.
	router.HandleFunc("/api/content/pricing", apiHandler.GetPricingHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/content/services", apiHandler.GetServicesHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/content/additional-services", apiHandler.GetAdditionalServicesHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/content/store-partners", apiHandler.GetStorePartnersHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/content/distribution-steps", apiHandler.GetDistributionStepsHandler).Methods(http.MethodGet)

	server.Handler = router

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Server starting", logger.String("addr", cfg.ServerAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", logger.ErrorField(err))
		}
	}()

	<-stop
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	logger.Info("Server stopped")
}
