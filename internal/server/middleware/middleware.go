package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"news_dashboard/internal/metrics"
)

// RequestIDKey is the context key type for the request ID.
type RequestIDKey string

const (
	// RequestIDHeader is the header name for the request ID.
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey is the context key for the request ID.
	RequestIDContextKey RequestIDKey = "request_id"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func generateRequestID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// RequestIDMiddleware assigns every request an ID, echoing one supplied
// by the caller.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = generateRequestID()
		}
		w.Header().Set(RequestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}

// LoggingMiddleware logs every handled request.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := w.Header().Get(RequestIDHeader)

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		logrus.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rw.statusCode,
			"duration":   duration,
			"request_id": requestID,
			"remote_ip":  r.RemoteAddr,
		}).Info("Request handled")
	})
}

// MetricsMiddleware records request counts and latency.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		metrics.HTTPRequests.WithLabelValues(r.URL.Path, strconv.Itoa(rw.statusCode)).Inc()
		metrics.HTTPDuration.WithLabelValues(r.URL.Path).Observe(time.Since(start).Seconds())
	})
}
