package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"woz/internal/live"
	"woz/internal/product"
	"woz/internal/session"
)

const requestTimeout = 30 * time.Second

// NewRouter mounts every module under /v1. The live websocket is kept out of
// the request timeout.
func NewRouter(productCtrl *product.Controller, sessionCtrl *session.Controller, liveCtrl *live.Controller, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestLogger(logger))
	r.Use(chimw.Recoverer)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeStatus(w, http.StatusNotFound, "no route for "+req.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeStatus(w, http.StatusMethodNotAllowed, "method "+req.Method+" not allowed on "+req.URL.Path)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeStatus(w, http.StatusOK, "ok")
	})
	r.Get("/v1/live", liveCtrl.HandleLive)

	r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(requestTimeout))

		r.Get("/v1/products", productCtrl.HandleListProducts)
		r.Post("/v1/products/search", productCtrl.HandleSearchProducts)

		r.Get("/v1/stats", liveCtrl.HandleStats)
		r.Get("/v1/providers", liveCtrl.HandleProviders)

		r.Route("/v1/sessions", func(r chi.Router) {
			r.Post("/", sessionCtrl.HandleCreate)
			r.Route("/{sessionId}", func(r chi.Router) {
				r.Get("/", sessionCtrl.HandleGet)
				r.Delete("/", sessionCtrl.HandleDelete)
				r.Get("/cards", sessionCtrl.HandleCards)
				r.Patch("/controls", sessionCtrl.HandleUpdateControls)
				r.Post("/controls/clear", sessionCtrl.HandleClearControls)
				r.Post("/scroll", sessionCtrl.HandleScroll)
			})
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("requestId", chimw.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

type statusResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func writeStatus(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(statusResponse{Status: status, Message: message})
}
