package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/vignette-lab/assign"
	"github.com/danielhkuo/vignette-lab/cliparse"
	"github.com/danielhkuo/vignette-lab/db"
	"github.com/danielhkuo/vignette-lab/middleware"
	"github.com/danielhkuo/vignette-lab/pool"
	"github.com/danielhkuo/vignette-lab/router"
)

func main() {
	var err error

	// Optional .env file for local development
	godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Load the sample pool; a bad CSV must stop the server
	samplePool, err := pool.Load(cfg.SamplesCSV)
	if err != nil {
		slog.Error("sample pool load failed", "error", err, "path", cfg.SamplesCSV)
		os.Exit(1)
	}
	slog.Info("Sample pool loaded",
		"samples", samplePool.Size(),
		"foundations", samplePool.Foundations(),
	)

	// Open SQLite database
	conn, err := db.Open(cfg.DatabasePath)
	if err != nil {
		slog.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(conn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Seed the balancer from existing participants
	balancer, err := assign.Load(conn, samplePool.Foundations())
	if err != nil {
		slog.Error("balancer initialization failed", "error", err)
		os.Exit(1)
	}

	// Create router
	mux := router.NewRouter(conn, cfg, samplePool, balancer)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
