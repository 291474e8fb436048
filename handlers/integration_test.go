// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/vignette-lab/assign"
	"github.com/danielhkuo/vignette-lab/models"
	"github.com/danielhkuo/vignette-lab/testutil"
)

// TestFullStudyFlow walks a participant through the whole lifecycle:
// register, rate a sample, and show up in the admin reports.
func TestFullStudyFlow(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	p := testutil.BuildPool(t, testFoundations, 12, 22)
	b, err := assign.New(p.Foundations())
	require.NoError(t, err)

	registerHandler := NewRegisterHandler(conn, cfg, p, b)
	submitHandler := NewSubmitHandler(conn, cfg, p)
	adminHandler := NewAdminHandler(conn, cfg, p)

	// Step 1: register
	req := testutil.MakeRequest("POST", "/register", models.RegisterRequest{Name: "integration"}, nil)
	w := httptest.NewRecorder()
	registerHandler.Register(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var reg models.RegisterResponse
	testutil.AssertJSON(t, w, &reg)

	require.Len(t, reg.AssignedFoundations, 2)
	require.NotEqual(t, reg.AssignedFoundations[0], reg.AssignedFoundations[1])
	require.Len(t, reg.Samples, 30)

	pair := map[string]bool{
		reg.AssignedFoundations[0]: true,
		reg.AssignedFoundations[1]: true,
	}
	seen := make(map[int]bool)
	originals, generated := 0, 0
	for _, s := range reg.Samples {
		require.False(t, seen[s.ID], "duplicate sample %d", s.ID)
		seen[s.ID] = true
		require.True(t, pair[s.Foundation], "sample %d from unassigned foundation %s", s.ID, s.Foundation)
		if s.Label == models.LabelOriginal {
			originals++
		} else {
			generated++
		}
	}
	require.Equal(t, 10, originals)
	require.Equal(t, 20, generated)

	// Step 2: rate the first sample
	rating := 3
	sampleID := reg.Samples[0].ID
	req = testutil.MakeRequest("POST", "/submit", models.SubmitRequest{
		ParticipantID: reg.ParticipantID,
		SampleID:      &sampleID,
		Rating:        &rating,
		Note:          "clear scenario",
	}, nil)
	w = httptest.NewRecorder()
	submitHandler.Submit(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Step 3: the response shows up exactly once in the admin report
	req = httptest.NewRequest("GET", "/admin/responses", nil)
	w = httptest.NewRecorder()
	adminHandler.Responses(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResponsesResponse
	testutil.AssertJSON(t, w, &resp)

	matches := 0
	for _, row := range resp.RecentResponses {
		if row.ParticipantID == reg.ParticipantID && row.SampleID == sampleID {
			matches++
			require.Equal(t, 3, row.Rating)
			require.Equal(t, "clear scenario", row.Note)
		}
	}
	require.Equal(t, 1, matches)

	// Step 4: an out-of-range rating is rejected and leaves no trace
	bad := 7
	req = testutil.MakeRequest("POST", "/submit", models.SubmitRequest{
		ParticipantID: reg.ParticipantID,
		SampleID:      &sampleID,
		Rating:        &bad,
	}, nil)
	w = httptest.NewRecorder()
	submitHandler.Submit(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
	require.Equal(t, 1, testutil.CountResponses(t, conn))
}

// TestBalancedAssignmentOverManyRegistrations registers 100 participants
// and checks the per-foundation assignment counts stay within 1 of each
// other, as reported by /admin/assignments.
func TestBalancedAssignmentOverManyRegistrations(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	p := testutil.BuildPool(t, testFoundations, 12, 22)
	b, err := assign.New(p.Foundations())
	require.NoError(t, err)

	registerHandler := NewRegisterHandler(conn, cfg, p, b)
	adminHandler := NewAdminHandler(conn, cfg, p)

	for i := 0; i < 100; i++ {
		req := testutil.MakeRequest("POST", "/register", nil, nil)
		w := httptest.NewRecorder()
		registerHandler.Register(w, req)
		testutil.AssertStatus(t, w, http.StatusCreated)
	}

	req := httptest.NewRequest("GET", "/admin/assignments", nil)
	w := httptest.NewRecorder()
	adminHandler.Assignments(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AssignmentsResponse
	testutil.AssertJSON(t, w, &resp)

	total := 0
	lo, hi := -1, -1
	for _, f := range p.Foundations() {
		n := resp.SingleCounts[f]
		total += n
		if lo == -1 || n < lo {
			lo = n
		}
		if n > hi {
			hi = n
		}
	}
	require.Equal(t, 200, total)
	require.LessOrEqual(t, hi-lo, 1, "assignment counts out of balance: %v", resp.SingleCounts)
}
