// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/vignette-lab/models"
	"github.com/danielhkuo/vignette-lab/pool"
	"github.com/danielhkuo/vignette-lab/testutil"
)

func setupAdminHandler(t *testing.T) (*AdminHandler, *sql.DB, *pool.Pool) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { db.Close() })

	// Per foundation: ids are sequential, 2 originals then 3 generated
	p := testutil.BuildPool(t, testFoundations, 2, 3)
	return NewAdminHandler(db, testutil.GetTestConfig(), p), db, p
}

func TestAssignments(t *testing.T) {
	handler, db, _ := setupAdminHandler(t)

	testutil.CreateTestParticipant(t, db, "p1", []string{"Care", "Fairness"}, []int{0})
	testutil.CreateTestParticipant(t, db, "p2", []string{"Care", "Fairness"}, []int{0})
	testutil.CreateTestParticipant(t, db, "p3", []string{"Care", "Loyalty"}, []int{0})

	req := httptest.NewRequest("GET", "/admin/assignments", nil)
	w := httptest.NewRecorder()
	handler.Assignments(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AssignmentsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.PairCounts["Care|Fairness"] != 2 {
		t.Errorf("Expected pair count 2 for Care|Fairness, got %d", resp.PairCounts["Care|Fairness"])
	}
	if resp.PairCounts["Care|Loyalty"] != 1 {
		t.Errorf("Expected pair count 1 for Care|Loyalty, got %d", resp.PairCounts["Care|Loyalty"])
	}
	if resp.SingleCounts["Care"] != 3 {
		t.Errorf("Expected single count 3 for Care, got %d", resp.SingleCounts["Care"])
	}
	if resp.SingleCounts["Fairness"] != 2 {
		t.Errorf("Expected single count 2 for Fairness, got %d", resp.SingleCounts["Fairness"])
	}
	if resp.SingleCounts["Loyalty"] != 1 {
		t.Errorf("Expected single count 1 for Loyalty, got %d", resp.SingleCounts["Loyalty"])
	}
}

func TestAssignments_Empty(t *testing.T) {
	handler, _, _ := setupAdminHandler(t)

	req := httptest.NewRequest("GET", "/admin/assignments", nil)
	w := httptest.NewRecorder()
	handler.Assignments(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AssignmentsResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.PairCounts) != 0 || len(resp.SingleCounts) != 0 {
		t.Errorf("Expected empty counts, got %v / %v", resp.PairCounts, resp.SingleCounts)
	}
}

func TestResponses(t *testing.T) {
	handler, db, p := setupAdminHandler(t)

	pid := testutil.CreateTestParticipant(t, db, "p1", []string{"Care", "Fairness"}, []int{0, 2, 5})

	// Care block: id 0 is original, id 2 is generated (2 originals per foundation)
	testutil.InsertTestResponse(t, db, pid, 0, 4)
	testutil.InsertTestResponse(t, db, pid, 2, 2)
	// Fairness block starts at id 5
	testutil.InsertTestResponse(t, db, pid, 5, 1)

	req := httptest.NewRequest("GET", "/admin/responses", nil)
	w := httptest.NewRecorder()
	handler.Responses(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResponsesResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.RecentResponses) != 3 {
		t.Fatalf("Expected 3 recent responses, got %d", len(resp.RecentResponses))
	}

	// Rows carry sample metadata joined from the pool
	for _, row := range resp.RecentResponses {
		sample, ok := p.ByID(row.SampleID)
		if !ok {
			t.Fatalf("Response row references unknown sample %d", row.SampleID)
		}
		if row.Foundation != sample.Foundation || row.Label != sample.Label {
			t.Errorf("Row metadata mismatch for sample %d: %s/%s", row.SampleID, row.Foundation, row.Label)
		}
	}

	care := resp.AggregatesByFoundation["Care"]
	if care.Original != 1 || care.Generated != 1 || care.Total != 2 {
		t.Errorf("Care aggregate wrong: %+v", care)
	}
	if care.MeanRating != 3.0 {
		t.Errorf("Expected Care mean rating 3.0, got %f", care.MeanRating)
	}

	fairness := resp.AggregatesByFoundation["Fairness"]
	if fairness.Total != 1 || fairness.MeanRating != 1.0 {
		t.Errorf("Fairness aggregate wrong: %+v", fairness)
	}
}

func TestResponses_NewestFirst(t *testing.T) {
	handler, db, _ := setupAdminHandler(t)

	pid := testutil.CreateTestParticipant(t, db, "p1", []string{"Care", "Fairness"}, []int{0, 1, 2})
	testutil.InsertTestResponse(t, db, pid, 0, 1)
	testutil.InsertTestResponse(t, db, pid, 1, 2)
	testutil.InsertTestResponse(t, db, pid, 2, 3)

	req := httptest.NewRequest("GET", "/admin/responses", nil)
	w := httptest.NewRecorder()
	handler.Responses(w, req)

	var resp models.ResponsesResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.RecentResponses) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(resp.RecentResponses))
	}
	// Inserted in id order with non-decreasing timestamps; newest first
	if resp.RecentResponses[0].SampleID != 2 {
		t.Errorf("Expected newest row first, got sample %d", resp.RecentResponses[0].SampleID)
	}
}

func TestResponses_Empty(t *testing.T) {
	handler, _, _ := setupAdminHandler(t)

	req := httptest.NewRequest("GET", "/admin/responses", nil)
	w := httptest.NewRecorder()
	handler.Responses(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResponsesResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.RecentResponses) != 0 {
		t.Errorf("Expected no rows, got %d", len(resp.RecentResponses))
	}
}
