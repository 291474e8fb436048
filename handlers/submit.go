// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/vignette-lab/cliparse"
	"github.com/danielhkuo/vignette-lab/middleware"
	"github.com/danielhkuo/vignette-lab/models"
	"github.com/danielhkuo/vignette-lab/pool"
)

type SubmitHandler struct {
	db   *sql.DB
	cfg  cliparse.Config
	pool *pool.Pool
}

func NewSubmitHandler(db *sql.DB, cfg cliparse.Config, p *pool.Pool) *SubmitHandler {
	return &SubmitHandler{db: db, cfg: cfg, pool: p}
}

// Submit handles POST /submit
// Upserts one rating keyed on (participant_id, sample_id): re-rating a
// sample overwrites the previous row instead of accumulating duplicates.
func (h *SubmitHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ParticipantID == "" || req.SampleID == nil || req.Rating == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "participant_id, sample_id, rating required")
		return
	}

	rating := *req.Rating
	if rating < 0 || rating > 4 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "rating must be 0..4")
		return
	}

	if _, ok := h.pool.ByID(*req.SampleID); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "sample not found")
		return
	}

	// Participant must exist. A sample outside the participant's served
	// list is still accepted, matching the study's lenient intake.
	var exists bool
	err := h.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM participants WHERE id = ?)
	`, req.ParticipantID).Scan(&exists)

	if err != nil {
		slog.Error("failed to verify participant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "participant not found")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	var isUpdate bool
	err = tx.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM responses WHERE participant_id = ? AND sample_id = ?)
	`, req.ParticipantID, *req.SampleID).Scan(&isUpdate)

	if err != nil {
		slog.Error("failed to check existing response", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	_, err = tx.Exec(`
		INSERT INTO responses (participant_id, sample_id, rating, note, ts)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (participant_id, sample_id)
		DO UPDATE SET rating = excluded.rating, note = excluded.note, ts = excluded.ts
	`, req.ParticipantID, *req.SampleID, rating, req.Note, time.Now().UTC())

	if err != nil {
		slog.Error("failed to upsert response", "error", err, "participant_id", req.ParticipantID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save response")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save response")
		return
	}

	slog.Info("response recorded",
		"participant_id", req.ParticipantID,
		"sample_id", *req.SampleID,
		"rating", rating,
		"is_update", isUpdate,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponse{
		OK:      true,
		Updated: isUpdate,
	})
}
