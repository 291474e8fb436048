package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port           int
	DatabasePath   string
	SamplesCSV     string
	OriginalCount  int
	GeneratedCount int
}

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("vignette-lab", flag.ContinueOnError)

	// Network and file config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabasePath, "d", "", "SQLite database path")
	fs.StringVar(&cfg.SamplesCSV, "s", "", "Sample pool CSV path")

	// Per-participant draw quotas
	fs.IntVar(&cfg.OriginalCount, "original", 10, "Original samples served per participant")
	fs.IntVar(&cfg.GeneratedCount, "generated", 20, "Generated samples served per participant")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8000 // default
		}
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = os.Getenv("DATABASE_PATH")
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "data.db"
	}

	if cfg.SamplesCSV == "" {
		cfg.SamplesCSV = os.Getenv("SAMPLES_CSV")
	}
	if cfg.SamplesCSV == "" {
		cfg.SamplesCSV = "MFV130Gen.csv"
	}

	if cfg.OriginalCount <= 0 || cfg.GeneratedCount <= 0 {
		return Config{}, errors.New("sample quotas must be positive")
	}

	return cfg, nil
}
