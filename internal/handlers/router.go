package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bunrouter"

	"github.com/Beratdogann/Patato-Disease-Detector-App/internal/logger"
)

// NewRouter builds the service router with logging and CORS middleware.
func NewRouter(h *Handler, log *logger.Logger) *bunrouter.CompatRouter {
	router := bunrouter.New(
		bunrouter.Use(loggingMiddleware(log)),
		bunrouter.Use(corsMiddleware),
	).Compat()

	router.GET("/ping", h.Ping)
	router.POST("/predict", h.Predict)

	return router
}

// statusWriter captures the status code written by downstream handlers.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(log *logger.Logger) bunrouter.MiddlewareFunc {
	return func(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
		return func(w http.ResponseWriter, req bunrouter.Request) error {
			requestID := uuid.New().String()
			start := time.Now()

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			err := next(sw, req)

			log.Info("[%s] %s %s %d %v", requestID, req.Method, req.URL.Path, sw.status, time.Since(start))
			return err
		}
	}
}

func corsMiddleware(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
	return func(w http.ResponseWriter, req bunrouter.Request) error {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return nil
		}

		return next(w, req)
	}
}
