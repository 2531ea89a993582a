// Package main provides the upload service: it accepts one transaction file
// per request, runs the metrics engine over it, and returns the report JSON
// the dashboard renders. Nothing is persisted between requests.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"payment-metrics-lab/internal/decode"
	"payment-metrics-lab/internal/engine"
	"payment-metrics-lab/internal/observability"
	"payment-metrics-lab/internal/reporting"
)

// Server holds the upload service components.
type Server struct {
	engine    *engine.Engine
	metrics   *observability.Metrics
	logger    *log.Logger
	maxUpload int64
}

func main() {
	listen := flag.String("listen", ":8080", "HTTP listen address")
	maxUpload := flag.Int64("max-upload-bytes", 32<<20, "Maximum accepted upload size in bytes")
	flag.Parse()

	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.LUTC)

	srv := &Server{
		engine:    engine.New(),
		metrics:   observability.NewMetrics(""),
		logger:    logger,
		maxUpload: *maxUpload,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/report", srv.handleReport)
	mux.HandleFunc("/healthz", srv.handleHealth)
	mux.Handle("/metrics", observability.Handler())

	httpServer := &http.Server{
		Addr:              *listen,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM
	done := make(chan struct{})
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		logger.Println("shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Printf("shutdown error: %v", err)
		}
		close(done)
	}()

	logger.Printf("listening on %s", *listen)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("server error: %v", err)
	}
	<-done
}

// handleReport accepts a multipart upload under the "file" field, decodes the
// first sheet/table, and responds with the metrics report JSON. An upload
// that decodes to zero rows yields 204 No Content: a legitimate "nothing to
// show" state the client must not render partially.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := uuid.NewString()

	if r.Method != http.MethodPost {
		s.finish(w, r, requestID, start, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	file, header, err := r.FormFile("file")
	if err != nil {
		s.finish(w, r, requestID, start, http.StatusBadRequest, fmt.Sprintf("missing file field: %v", err))
		return
	}
	defer file.Close()

	format, err := decode.FormatForFilename(header.Filename)
	if err != nil {
		s.finish(w, r, requestID, start, http.StatusUnsupportedMediaType, err.Error())
		return
	}

	rows, err := decode.DecodeReader(file, format)
	if err != nil {
		s.metrics.DecodeErrors.WithLabelValues(string(format)).Inc()
		s.finish(w, r, requestID, start, http.StatusUnprocessableEntity, fmt.Sprintf("decode failed: %v", err))
		return
	}
	s.metrics.RowsDecoded.Add(float64(len(rows)))

	computeStart := time.Now()
	report := s.engine.ComputeReport(rows)
	s.metrics.ComputeDuration.Observe(time.Since(computeStart).Seconds())

	if report == nil {
		s.metrics.EmptyDatasets.Inc()
		s.finish(w, r, requestID, start, http.StatusNoContent, "")
		return
	}
	s.metrics.ReportsGenerated.Inc()

	out, err := reporting.RenderJSON(report)
	if err != nil {
		s.finish(w, r, requestID, start, http.StatusInternalServerError, fmt.Sprintf("render failed: %v", err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(out)
	s.observe(http.StatusOK, start)
	s.logger.Printf("request=%s file=%q rows=%d status=%d duration=%s",
		requestID, header.Filename, len(rows), http.StatusOK, time.Since(start).Round(time.Millisecond))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

// finish writes a non-success (or empty) response and records it.
func (s *Server) finish(w http.ResponseWriter, r *http.Request, requestID string, start time.Time, status int, msg string) {
	if msg != "" && status != http.StatusNoContent {
		http.Error(w, msg, status)
	} else {
		w.WriteHeader(status)
	}
	s.observe(status, start)
	s.logger.Printf("request=%s path=%s status=%d msg=%q duration=%s",
		requestID, r.URL.Path, status, msg, time.Since(start).Round(time.Millisecond))
}

func (s *Server) observe(status int, start time.Time) {
	s.metrics.UploadRequests.WithLabelValues(fmt.Sprintf("%dxx", status/100)).Inc()
	s.metrics.UploadDuration.Observe(time.Since(start).Seconds())
}
