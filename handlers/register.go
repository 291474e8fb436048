// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/vignette-lab/assign"
	"github.com/danielhkuo/vignette-lab/cliparse"
	"github.com/danielhkuo/vignette-lab/middleware"
	"github.com/danielhkuo/vignette-lab/models"
	"github.com/danielhkuo/vignette-lab/pool"
)

type RegisterHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	pool     *pool.Pool
	balancer *assign.Balancer
}

func NewRegisterHandler(db *sql.DB, cfg cliparse.Config, p *pool.Pool, b *assign.Balancer) *RegisterHandler {
	return &RegisterHandler{db: db, cfg: cfg, pool: p, balancer: b}
}

// Register handles POST /register
// Creates a participant, assigns a balanced foundation pair, draws the
// sample list and snapshots it, then returns the samples inline.
func (h *RegisterHandler) Register(w http.ResponseWriter, r *http.Request) {
	// Body is optional; a missing or malformed body just means no name.
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		req = models.RegisterRequest{}
	}

	foundationA, foundationB := h.balancer.Assign()
	samples := h.pool.Select(foundationA, foundationB, h.cfg.OriginalCount, h.cfg.GeneratedCount)

	participantID := uuid.NewString()
	sampleIDs := make([]int, len(samples))
	for i, s := range samples {
		sampleIDs[i] = s.ID
	}

	pairJSON, err := json.Marshal([]string{foundationA, foundationB})
	if err != nil {
		slog.Error("failed to marshal foundation pair", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}
	samplesJSON, err := json.Marshal(sampleIDs)
	if err != nil {
		slog.Error("failed to marshal sample ids", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	var name sql.NullString
	if req.Name != "" {
		name = sql.NullString{String: req.Name, Valid: true}
	}

	_, err = h.db.Exec(`
		INSERT INTO participants (id, assigned_foundations, samples_json, name, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, participantID, string(pairJSON), string(samplesJSON), name, time.Now().UTC())

	if err != nil {
		slog.Error("failed to insert participant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	slog.Info("participant registered",
		"participant_id", participantID,
		"foundations", []string{foundationA, foundationB},
		"samples", len(samples),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterResponse{
		ParticipantID:       participantID,
		AssignedFoundations: []string{foundationA, foundationB},
		Samples:             samples,
		Name:                req.Name,
	})
}

// GetSamples handles GET /participant/{pid}/samples
// Re-fetches the registration snapshot; the returned list is identical
// across calls because it is read from the stored snapshot, not redrawn.
func (h *RegisterHandler) GetSamples(w http.ResponseWriter, r *http.Request) {
	participantID := r.PathValue("pid")
	if participantID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "participant id is required")
		return
	}

	var pairJSON, samplesJSON string
	var name sql.NullString
	err := h.db.QueryRow(`
		SELECT assigned_foundations, samples_json, name FROM participants WHERE id = ?
	`, participantID).Scan(&pairJSON, &samplesJSON, &name)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "participant not found")
		return
	}
	if err != nil {
		slog.Error("failed to query participant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var foundations []string
	if err := json.Unmarshal([]byte(pairJSON), &foundations); err != nil {
		slog.Error("failed to parse stored foundation pair", "error", err, "participant_id", participantID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Corrupt participant record")
		return
	}
	var sampleIDs []int
	if err := json.Unmarshal([]byte(samplesJSON), &sampleIDs); err != nil {
		slog.Error("failed to parse stored sample ids", "error", err, "participant_id", participantID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Corrupt participant record")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ParticipantSamplesResponse{
		ParticipantID:       participantID,
		AssignedFoundations: foundations,
		Samples:             h.pool.Samples(sampleIDs),
		Name:                name.String,
	})
}
