// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/vignette-lab/cliparse"
	"github.com/danielhkuo/vignette-lab/middleware"
	"github.com/danielhkuo/vignette-lab/models"
	"github.com/danielhkuo/vignette-lab/pool"
)

// recentResponseLimit caps the raw rows returned by /admin/responses.
const recentResponseLimit = 2000

type AdminHandler struct {
	db   *sql.DB
	cfg  cliparse.Config
	pool *pool.Pool
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config, p *pool.Pool) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg, pool: p}
}

// Assignments handles GET /admin/assignments
// Counts are computed from the participants table, not the balancer, so
// the report reflects exactly what was persisted.
func (h *AdminHandler) Assignments(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`SELECT assigned_foundations FROM participants`)
	if err != nil {
		slog.Error("failed to query participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	pairCounts := make(map[string]int)
	singleCounts := make(map[string]int)

	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			slog.Error("failed to scan participant row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}

		var pair []string
		if err := json.Unmarshal([]byte(raw), &pair); err != nil || len(pair) != 2 {
			// Skip unparseable legacy rows rather than failing the report.
			continue
		}

		pairCounts[strings.Join(pair, "|")]++
		singleCounts[pair[0]]++
		singleCounts[pair[1]]++
	}

	if err := rows.Err(); err != nil {
		slog.Error("error iterating participant rows", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AssignmentsResponse{
		PairCounts:   pairCounts,
		SingleCounts: singleCounts,
	})
}

// Responses handles GET /admin/responses
// Returns the most recent raw rows joined with sample metadata, plus
// per-foundation aggregates (origin counts and mean rating).
func (h *AdminHandler) Responses(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT participant_id, sample_id, rating, note, ts
		FROM responses
		ORDER BY ts DESC, id DESC
		LIMIT ?
	`, recentResponseLimit)
	if err != nil {
		slog.Error("failed to query responses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	type runningAgg struct {
		models.FoundationAggregate
		ratingSum int
	}

	agg := make(map[string]*runningAgg)
	raw := []models.ResponseRow{}

	for rows.Next() {
		var row models.ResponseRow
		var note sql.NullString
		if err := rows.Scan(&row.ParticipantID, &row.SampleID, &row.Rating, &note, &row.TS); err != nil {
			slog.Error("failed to scan response row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		row.Note = note.String

		if sample, ok := h.pool.ByID(row.SampleID); ok {
			row.Foundation = sample.Foundation
			row.Label = sample.Label
			row.Title = sample.Title

			a := agg[sample.Foundation]
			if a == nil {
				a = &runningAgg{}
				agg[sample.Foundation] = a
			}
			if sample.Label == models.LabelOriginal {
				a.Original++
			} else {
				a.Generated++
			}
			a.Total++
			a.ratingSum += row.Rating
		}

		raw = append(raw, row)
	}

	if err := rows.Err(); err != nil {
		slog.Error("error iterating response rows", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	aggregates := make(map[string]models.FoundationAggregate, len(agg))
	for foundation, a := range agg {
		out := a.FoundationAggregate
		out.MeanRating = float64(a.ratingSum) / float64(a.Total)
		aggregates[foundation] = out
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResponsesResponse{
		AggregatesByFoundation: aggregates,
		RecentResponses:        raw,
	})
}
