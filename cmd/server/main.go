package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cloud-ru/emi-finance-go/internal/calculations"
	"github.com/cloud-ru/emi-finance-go/internal/config"
	"github.com/cloud-ru/emi-finance-go/internal/logging"
	"github.com/cloud-ru/emi-finance-go/internal/metrics"
	"github.com/cloud-ru/emi-finance-go/internal/records"
	"github.com/cloud-ru/emi-finance-go/internal/tools"
	"github.com/cloud-ru/emi-finance-go/internal/tracing"
)

// maxBodyBytes ограничение размера тела запроса к инструменту
const maxBodyBytes = 1 << 20

// Server отдает инструменты по HTTP
type Server struct {
	registry tools.Registry
	logger   *slog.Logger
}

func NewServer(registry tools.Registry, logger *slog.Logger) *Server {
	return &Server{registry: registry, logger: logger}
}

// Router собирает маршруты сервера
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.countRequests)
	router.HandleFunc("/healthz", s.healthHandler).Methods("GET")
	router.HandleFunc("/tools", s.listToolsHandler).Methods("GET")
	router.HandleFunc("/tools/{name}", s.callToolHandler).Methods("POST")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	return router
}

type errorResponse struct {
	Error string `json:"error"`
}

// statusRecorder запоминает код ответа для метрик
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tmpl, err := current.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(rec.code)).Inc()
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "status", status, "error", err)
	}
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listToolsHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string][]string{"tools": s.registry.Names()})
}

func (s *Server) callToolHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	handler, err := s.registry.Lookup(name)
	if err != nil {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error() + ": " + name})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	params := map[string]interface{}{}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
			return
		}
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "request body must be a JSON object"})
		return
	}

	result, err := handler(r.Context(), params)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("tool call failed", "tool", name, "error", err)
		} else {
			s.logger.Debug("tool call rejected", "tool", name, "error", err)
		}
		s.writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, calculations.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, records.ErrLoanNotActive):
		return http.StatusConflict
	case errors.Is(err, tools.ErrUnknownTool):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)

	tracer, shutdownTracing, err := tracing.InitTracing(context.Background(), cfg.OTELServiceName, cfg.OTELEndpoint, logger)
	if err != nil {
		logger.Error("failed to init tracing", "error", err)
		os.Exit(1)
	}

	server := NewServer(tools.NewRegistry(cfg, tracer), logger)

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", httpServer.Addr, "tools", len(server.registry))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	if err := shutdownTracing(ctx); err != nil {
		logger.Error("failed to flush traces", "error", err)
	}

	logger.Info("server stopped")
}
