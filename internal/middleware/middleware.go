package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

// LoggingMiddleware логирует каждый запрос: метод, путь, статус, размер, длительность.
func LoggingMiddleware(logger *zap.Logger) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(resp http.ResponseWriter, r *http.Request) {
			start := time.Now()

			lw := &loggingResponseWriter{ResponseWriter: resp, statusCode: http.StatusOK}

			next.ServeHTTP(lw, r)

			duration := time.Since(start)
			logger.Info("HTTP Request",
				zap.String("method", r.Method),
				zap.String("uri", r.RequestURI),
				zap.String("request_id", RequestIDFromContext(r.Context())),
				zap.Int("status", lw.statusCode),
				zap.Int("size", lw.size),
				zap.Duration("duration", duration),
			)
		})
	}
}

func (lw *loggingResponseWriter) WriteHeader(code int) {
	lw.statusCode = code
	lw.ResponseWriter.WriteHeader(code)
}

func (lw *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := lw.ResponseWriter.Write(b)
	lw.size += size
	return size, err
}
