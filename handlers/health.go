// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/vignette-lab/middleware"
	"github.com/danielhkuo/vignette-lab/models"
	"github.com/danielhkuo/vignette-lab/pool"
)

type HealthHandler struct {
	pool *pool.Pool
}

func NewHealthHandler(p *pool.Pool) *HealthHandler {
	return &HealthHandler{pool: p}
}

// Health handles GET /healthz
// Reads only the immutable pool; no side effects.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		OK:            true,
		SamplesLoaded: h.pool.Size(),
		Foundations:   h.pool.Foundations(),
	})
}
