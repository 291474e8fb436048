// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the vignette rating API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - RegisterHandler: registration and snapshot re-fetch (db, cfg, pool, balancer)
  - SubmitHandler: rating submission (db, cfg, pool)
  - AdminHandler: read-only summaries (db, cfg, pool)
  - HealthHandler: pool status (pool)

	registerHandler := handlers.NewRegisterHandler(db, cfg, samplePool, balancer)

# Registration Flow

	POST /register                   → Register (assign pair, draw samples, snapshot)
	GET  /participant/{pid}/samples  → GetSamples (deterministic re-fetch)

Registration assigns the two least-loaded foundations via the balancer,
draws 10 original + 20 generated samples (configurable), and stores the
ordered id list on the participant row so the served list never changes.

# Submission

	POST /submit → Submit

Validates rating ∈ 0..4, the sample id against the pool, and the
participant id against the store. Upserts on (participant_id, sample_id):
re-rating overwrites. No idempotency tokens, no retries.

# Admin Views

	GET /admin/assignments → Assignments (per-pair and per-foundation counts)
	GET /admin/responses   → Responses (recent rows + per-foundation aggregates)

Both are read-only and computed from the two tables, joining sample
metadata from the in-memory pool.

# Health

	GET /healthz → Health (pool size and foundation list)
*/
package handlers
