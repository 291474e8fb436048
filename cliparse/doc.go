// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabasePath: SQLite database file (default: data.db)
  - SamplesCSV: Sample pool CSV file (default: MFV130Gen.csv)
  - OriginalCount: Original samples served per participant (default: 10)
  - GeneratedCount: Generated samples served per participant (default: 20)

# CLI Flags

	-p          Server port
	-d          SQLite database path
	-s          Sample pool CSV path
	-original   Original quota per participant
	-generated  Generated quota per participant

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_PATH → -d
	SAMPLES_CSV   → -s

CLI flags take precedence over environment variables. main loads an
optional .env file (godotenv) before parsing, so a local .env can supply
any of these.

# Validation

ParseFlags returns an error if:

  - PORT is set but not numeric
  - either quota is zero or negative

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg.DatabasePath)
	// ...
	mux := router.NewRouter(conn, cfg, samplePool, balancer)
*/
package cliparse
