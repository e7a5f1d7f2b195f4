package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/api"
	"github.com/ppopeskul/convoflow/internal/config"
	"github.com/ppopeskul/convoflow/internal/middleware"
)

func setupRouter(handler api.ServerInterface, cfg *config.Config, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(middleware.NewConfig(&cfg.Middleware, logger)))

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, "api/openapi.yaml")
	})

	return api.HandlerFromMux(handler, r)
}
