package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ReportFetcher supplies the raw METAR and TAF for a station
type ReportFetcher interface {
	FetchReports(ctx context.Context, icao string) (metar, taf FetchResult)
}

// Server is the HTTP weather proxy
type Server struct {
	fetcher ReportFetcher
	config  ServerConfig
	logger  *zap.Logger
}

// NewServer creates a new weather proxy
func NewServer(fetcher ReportFetcher, config ServerConfig, logger *zap.Logger) *Server {
	return &Server{
		fetcher: fetcher,
		config:  config,
		logger:  logger.Named("api"),
	}
}

// Routes returns the router for the proxy
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(s.cors)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/weather", s.handleWeather)
		r.Get("/decode", s.handleDecode)
	})

	return r
}

// ListenAndServe runs the proxy until ctx is canceled, then shuts down
// gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port)),
		Handler:      s.Routes(),
		ReadTimeout:  time.Duration(s.config.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(s.config.WriteTimeoutSecs) * time.Second,
		IdleTimeout:  time.Duration(s.config.IdleTimeoutSecs) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(s.config.ShutdownTimeoutSec)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down HTTP server: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleWeather fetches, decodes and returns the METAR and TAF for ?icao=
func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("icao")
	if input == "" {
		writeError(w, http.StatusBadRequest, "ICAO code is required")
		return
	}

	icao, err := NormalizeStationCode(input)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	metar, taf := s.fetcher.FetchReports(r.Context(), icao)
	if metar.Err != nil && taf.Err != nil {
		s.logger.Error("Weather fetch failed",
			zap.String("airport", icao),
			zap.NamedError("metar_error", metar.Err),
			zap.NamedError("taf_error", taf.Err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Unable to fetch weather data",
			"details": errors.Join(metar.Err, taf.Err).Error(),
		})
		return
	}

	if metar.Err != nil {
		s.logger.Warn("METAR unavailable", zap.String("airport", icao), zap.Error(metar.Err))
	}
	if taf.Err != nil {
		s.logger.Warn("TAF unavailable", zap.String("airport", icao), zap.Error(taf.Err))
	}

	writeJSON(w, http.StatusOK, BuildWeatherReport(icao, metar, taf))
}

// handleDecode decodes a caller supplied report without any upstream call
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	raw := q.Get("raw")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "raw report is required")
		return
	}

	kind := q.Get("kind")
	if kind == "" {
		kind = string(KindMETAR)
	}

	decoded, err := Decode(RawReport{Kind: ReportKind(kind), Text: raw, StationID: q.Get("icao")})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, decoded)
}

// cors sets the CORS headers and answers preflight requests
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origins := s.config.CORSAllowedOrigins
		origin := r.Header.Get("Origin")
		switch {
		case slices.Contains(origins, "*"):
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case origin != "" && slices.Contains(origins, origin):
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.Debug("HTTP request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a structured error response
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
