package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/trottparts/garage-api/internal/catalog"
	"github.com/trottparts/garage-api/internal/database"
	"github.com/trottparts/garage-api/internal/garage"
	"github.com/trottparts/garage-api/internal/handler"
	"github.com/trottparts/garage-api/internal/logger"
	"github.com/trottparts/garage-api/internal/metrics"
	"github.com/trottparts/garage-api/internal/modification"
	"github.com/trottparts/garage-api/internal/points"
	"github.com/trottparts/garage-api/internal/sse"
)

type Server struct {
	httpServer          *http.Server
	dbPool              database.Pool
	pointsService       points.Service
	catalogService      catalog.Service
	garageService       garage.Service
	modificationService modification.Service
	sseHub              *sse.Hub
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, pointsService points.Service, catalogService catalog.Service, garageService garage.Service, modificationService modification.Service, sseHub *sse.Hub) *Server {
	r := chi.NewRouter()

	// Middleware stack executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// SSE stream for XP and level-up toasts
	r.Get("/events", sse.Handler(sseHub))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/points", func(r chi.Router) {
			r.Post("/add", handler.HandleAddPoints(pointsService))
			r.Get("/profile", handler.HandleGetProfile(pointsService))
		})

		r.Get("/levels", handler.HandleGetLevels())
		r.Get("/xp/preview", handler.HandleXPPreview())

		catalogHandler := handler.NewCatalogHandler(catalogService)
		r.Route("/parts", func(r chi.Router) {
			r.Get("/", catalogHandler.HandleListParts)
			r.Post("/", catalogHandler.HandleCreatePart)
			r.Get("/{partID}", catalogHandler.HandleGetPart)
			r.Put("/{partID}", catalogHandler.HandleUpdatePart)
			r.Delete("/{partID}", catalogHandler.HandleDeletePart)
		})
		r.Route("/scooters", func(r chi.Router) {
			r.Get("/", catalogHandler.HandleListScooters)
			r.Post("/", catalogHandler.HandleCreateScooter)
			r.Get("/{scooterID}", catalogHandler.HandleGetScooter)
			r.Put("/{scooterID}", catalogHandler.HandleUpdateScooter)
			r.Delete("/{scooterID}", catalogHandler.HandleDeleteScooter)
			r.Get("/{scooterID}/parts", catalogHandler.HandleListCompatibleParts)
		})
		r.Route("/compatibility", func(r chi.Router) {
			r.Post("/", catalogHandler.HandleLinkCompatibility)
			r.Delete("/", catalogHandler.HandleUnlinkCompatibility)
		})
		r.Get("/categories", catalogHandler.HandleListCategories)
		r.Post("/orders/credit", catalogHandler.HandleCreditPurchase)

		garageHandler := handler.NewGarageHandler(garageService)
		r.Route("/garage", func(r chi.Router) {
			r.Post("/", garageHandler.HandleAddScooter)
			r.Get("/", garageHandler.HandleListGarage)
			r.Put("/{itemID}", garageHandler.HandleUpdateDetails)
			r.Put("/{itemID}/owned", garageHandler.HandleSetOwned)
			r.Delete("/{itemID}", garageHandler.HandleRemoveScooter)
		})

		modificationHandler := handler.NewModificationHandler(modificationService)
		r.Route("/modifications", func(r chi.Router) {
			r.Post("/", modificationHandler.HandleRecord)
			r.Delete("/{eventID}", modificationHandler.HandleDelete)
		})
		r.Get("/garage/{itemID}/modifications", modificationHandler.HandleList)
		r.Get("/order-items/{orderItemID}/installed", modificationHandler.HandleOrderItemStatus)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:              dbPool,
		pointsService:       pointsService,
		catalogService:      catalogService,
		garageService:       garageService,
		modificationService: modificationService,
		sseHub:              sseHub,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health checks, metrics and the SSE stream stay out of request logs
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") ||
			strings.HasPrefix(r.URL.Path, "/events") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, "Authorization") {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
