// Package api provides the HTTP REST API and WebSocket server for ServoLink Core.
//
// It exposes account registration and login, the authenticated servo control
// endpoint, the open servo read endpoint, and a read-only WebSocket stream of
// state changes.
//
// The server follows the same lifecycle pattern as the other infrastructure
// components:
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
//
// Thread Safety: All methods are safe for concurrent use from multiple goroutines.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mwade84/servolink/internal/actuator"
	"github.com/mwade84/servolink/internal/audit"
	"github.com/mwade84/servolink/internal/auth"
	"github.com/mwade84/servolink/internal/infrastructure/config"
	"github.com/mwade84/servolink/internal/infrastructure/influxdb"
	"github.com/mwade84/servolink/internal/infrastructure/logging"
	"github.com/mwade84/servolink/internal/infrastructure/mqtt"
)

// gracefulShutdownTimeout is the maximum time to wait for in-flight requests
// to complete during shutdown.
const gracefulShutdownTimeout = 10 * time.Second

// Deps holds the dependencies required by the API server.
type Deps struct {
	Config    config.APIConfig
	Security  config.SecurityConfig
	Logger    *logging.Logger
	Auth      *auth.Service
	Servo     *actuator.Holder
	MQTT      *mqtt.Client     // optional: retained state publishing
	Influx    *influxdb.Client // optional: state history telemetry
	AuditRepo audit.Repository // optional: activity trail
	Version   string
}

// Server is the HTTP API server for ServoLink Core.
//
// It manages the HTTP listener, routes, middleware, the WebSocket hub, and
// the async audit queue. The server is created with New() and started with
// Start().
type Server struct {
	cfg       config.APIConfig
	secCfg    config.SecurityConfig
	logger    *logging.Logger
	auth      *auth.Service
	servo     *actuator.Holder
	mqtt      *mqtt.Client
	influx    *influxdb.Client
	auditRepo audit.Repository
	version   string
	server    *http.Server
	hub       *Hub
	auditCh   chan audit.AuditLog
	cancel    context.CancelFunc // cancels background goroutines on Close()
}

// New creates a new API server with the given dependencies.
//
// The server is not started until Start() is called.
//
// Returns:
//   - *Server: Configured server ready to start
//   - error: If required dependencies are missing
func New(deps Deps) (*Server, error) {
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("auth service is required")
	}
	if deps.Servo == nil {
		return nil, fmt.Errorf("servo state holder is required")
	}
	// MQTT, InfluxDB, and the audit repository are optional; the HTTP
	// surface stays fully functional without them.

	return &Server{
		cfg:       deps.Config,
		secCfg:    deps.Security,
		logger:    deps.Logger,
		auth:      deps.Auth,
		servo:     deps.Servo,
		mqtt:      deps.MQTT,
		influx:    deps.Influx,
		auditRepo: deps.AuditRepo,
		version:   deps.Version,
	}, nil
}

// Start begins listening for HTTP connections.
//
// It sets up the router, starts the WebSocket hub and audit drain, and
// launches the HTTP listener in a background goroutine. The server is
// stopped with Close().
//
// Returns:
//   - error: If the server fails to start (port in use, etc.)
func (s *Server) Start(ctx context.Context) error {
	// Internal context so Close() can stop background goroutines
	// independently of the parent context.
	var srvCtx context.Context
	srvCtx, s.cancel = context.WithCancel(ctx)

	s.hub = NewHub(s.logger)
	go s.hub.Run(srvCtx)

	if s.auditRepo != nil {
		s.auditCh = make(chan audit.AuditLog, auditQueueSize)
		go s.drainAuditLog(srvCtx)
	}

	router := s.buildRouter()

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:           router,
		ReadTimeout:       time.Duration(s.cfg.Timeouts.Read) * time.Second,
		ReadHeaderTimeout: time.Duration(s.cfg.Timeouts.Read) * time.Second,
		WriteTimeout:      time.Duration(s.cfg.Timeouts.Write) * time.Second,
		IdleTimeout:       time.Duration(s.cfg.Timeouts.Idle) * time.Second,
	}

	go func() {
		err := s.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("API server error", "error", err)
		}
	}()

	s.logger.Info("API server started", "address", s.server.Addr)
	return nil
}

// Close gracefully shuts down the API server.
//
// It waits up to 10 seconds for in-flight requests to complete,
// then forcefully closes remaining connections.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}

	// Cancel background goroutines (hub, audit drain)
	if s.cancel != nil {
		s.cancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	s.logger.Info("API server shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down API server: %w", err)
	}
	return nil
}

// HealthCheck verifies the API server is running and responsive.
func (s *Server) HealthCheck(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("api health check: %w", ctx.Err())
	default:
	}

	if s.server == nil {
		return fmt.Errorf("api server not started")
	}

	return nil
}
