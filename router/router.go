// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/vignette-lab/assign"
	"github.com/danielhkuo/vignette-lab/cliparse"
	"github.com/danielhkuo/vignette-lab/handlers"
	"github.com/danielhkuo/vignette-lab/middleware"
	"github.com/danielhkuo/vignette-lab/pool"
	"github.com/danielhkuo/vignette-lab/web"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, p *pool.Pool, b *assign.Balancer) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(db, cfg, p, b)
	submitHandler := handlers.NewSubmitHandler(db, cfg, p)
	adminHandler := handlers.NewAdminHandler(db, cfg, p)
	healthHandler := handlers.NewHealthHandler(p)

	// Health check
	mux.HandleFunc("GET /healthz", healthHandler.Health)

	// Participant flow (public)
	mux.HandleFunc("POST /register", middleware.WithLogging(registerHandler.Register))
	mux.HandleFunc("GET /participant/{pid}/samples", middleware.WithLogging(registerHandler.GetSamples))
	mux.HandleFunc("POST /submit", middleware.WithLogging(submitHandler.Submit))

	// Admin summaries (read-only)
	mux.HandleFunc("GET /admin/assignments", middleware.WithLogging(adminHandler.Assignments))
	mux.HandleFunc("GET /admin/responses", middleware.WithLogging(adminHandler.Responses))

	// Embedded frontend
	mux.Handle("GET /static/", web.Static())
	mux.HandleFunc("GET /{$}", web.ServeIndex)

	return mux
}
