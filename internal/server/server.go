package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"

	appchat "mlb-companion/internal/app/chat"
	appfavorites "mlb-companion/internal/app/favorites"
	appschedule "mlb-companion/internal/app/schedule"
	appteams "mlb-companion/internal/app/teams"
	apptrivia "mlb-companion/internal/app/trivia"
	"mlb-companion/internal/backend"
	"mlb-companion/internal/config"
	"mlb-companion/internal/metrics"
	"mlb-companion/internal/poller"
	"mlb-companion/internal/session"
	"mlb-companion/internal/web"
)

var metricsSetup = metrics.Setup

// Server composes the backend client, the per-session services, and the
// web front end into one runnable unit.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	sessions      *session.Store
	httpServer    httpServer
	metricsServer httpServer
	poller        *poller.Poller
	metricsStop   func(context.Context) error
}

// New constructs a fully wired server from configuration.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	client := backend.NewClient(backend.Config{
		BaseURL:  cfg.BackendBaseURL,
		Logger:   logger,
		Recorder: recorder,
	})

	scheduleSvc := appschedule.NewService(client, cfg.ScheduleCacheTTL)
	favoritesSvc := appfavorites.NewService(client)
	teamsSvc := appteams.NewService(client)
	triviaSvc := apptrivia.NewService(client)
	chatSvc := appchat.NewService(client)

	sessions := session.NewStore(cfg.SessionTTL)
	sessions.OnDestroy(scheduleSvc.Drop)
	sessions.OnDestroy(triviaSvc.Drop)
	sessions.OnDestroy(chatSvc.Drop)

	codec := session.NewCodec(signingKey(cfg, logger), cfg.SessionTTL)

	templates, err := web.NewTemplateCache()
	if err != nil {
		return nil, err
	}

	handler := web.NewHandler(web.Deps{
		API:       client,
		Sessions:  sessions,
		Codec:     codec,
		Schedule:  scheduleSvc,
		Favorites: favoritesSvc,
		Teams:     teamsSvc,
		Trivia:    triviaSvc,
		Chat:      chatSvc,
		Templates: templates,
		Logger:    logger,
		PageSize:  cfg.SchedulePageSize,
	})

	router := web.NewRouter(handler, logger, recorder, cfg.AllowedOrigins)
	httpSrv := netHTTPServer{srv: &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}}

	plr := poller.New(teamsSvc, logger, recorder, cfg.TeamsRefresh, cfg.ServiceToken)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		sessions:      sessions,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}, nil
}

// signingKey returns the configured session key, generating an ephemeral
// one when unset. Sessions live in memory, so a fresh key per boot only
// forces a re-login after restart.
func signingKey(cfg config.Config, logger *slog.Logger) []byte {
	if cfg.SessionKey != "" {
		return []byte(cfg.SessionKey)
	}

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		// Extremely unlikely; fall back to an address-derived value so boot succeeds.
		return []byte(hex.EncodeToString([]byte(cfg.Port + cfg.BackendBaseURL)))
	}
	if logger != nil {
		logger.Warn("SESSION_SIGNING_KEY not set, using an ephemeral key")
	}
	return key
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.startPoller(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

// startPoller begins the team-directory refresh loop. The refresh needs
// an authenticated call, so without a service token the poller stays off
// and team browsing falls back to per-request fetches.
func (s *Server) startPoller(ctx context.Context) {
	if s.cfg.ServiceToken == "" {
		if s.logger != nil {
			s.logger.Info("BACKEND_SERVICE_TOKEN not set, team directory poller disabled")
		}
		return
	}
	s.poller.Start(ctx)
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
