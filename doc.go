// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the vignette rating study server.

The server collects human ratings (0-4) on a fixed pool of vignette
samples. Each participant is assigned a balanced pair of moral foundations
and served a fixed mix of original and generated vignettes restricted to
that pair; ratings are stored one row per (participant, sample) in SQLite.

# Starting the Server

The server reads the sample pool CSV at startup and will not start
without it:

	go run . -s MFV130Gen.csv

Or with environment variables (a local .env file is honored):

	PORT=8000 SAMPLES_CSV=MFV130Gen.csv go run .

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 8000)
  - DATABASE_PATH (-d): SQLite file (default: data.db)
  - SAMPLES_CSV (-s): Sample pool CSV (default: MFV130Gen.csv)
  - -original / -generated: Per-participant draw quotas (default: 10 / 20)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - pool: immutable in-memory sample pool and the per-participant draw
  - assign: mutex-guarded balanced foundation assignment
  - handlers: HTTP request handlers (register, submit, admin, health)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - db: SQLite connection and schema creation
  - cliparse: Configuration parsing
  - web: embedded single-page stepper frontend

See package documentation for each component.
*/
package main
