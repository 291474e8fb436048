// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the vignette rating API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, samplePool, balancer)

# Endpoints

Health:

	GET /healthz

Participant flow (public):

	POST /register                  - Register and receive the sample list
	GET  /participant/{pid}/samples - Re-fetch the served snapshot
	POST /submit                    - Submit one rating

Admin summaries (read-only):

	GET /admin/assignments - Per-foundation and per-pair counts
	GET /admin/responses   - Recent responses and foundation aggregates

Frontend:

	GET /          - Stepper UI entry page
	GET /static/*  - Embedded assets

# Handler Initialization

The router creates handler instances with dependency injection:

	registerHandler := handlers.NewRegisterHandler(db, cfg, p, b)
	submitHandler := handlers.NewSubmitHandler(db, cfg, p)
	adminHandler := handlers.NewAdminHandler(db, cfg, p)
	healthHandler := handlers.NewHealthHandler(p)
*/
package router
