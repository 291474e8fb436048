// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/vignette-lab/models"
	"github.com/danielhkuo/vignette-lab/testutil"
)

func TestHealth(t *testing.T) {
	p := testutil.BuildPool(t, testFoundations, 2, 3)
	handler := NewHealthHandler(p)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	handler.Health(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.HealthResponse
	testutil.AssertJSON(t, w, &resp)

	if !resp.OK {
		t.Error("Expected ok to be true")
	}
	if resp.SamplesLoaded != 15 {
		t.Errorf("Expected 15 samples loaded, got %d", resp.SamplesLoaded)
	}
	if len(resp.Foundations) != 3 {
		t.Errorf("Expected 3 foundations, got %v", resp.Foundations)
	}
}

func TestHealth_Idempotent(t *testing.T) {
	p := testutil.BuildPool(t, testFoundations, 2, 3)
	handler := NewHealthHandler(p)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/healthz", nil)
		w := httptest.NewRecorder()
		handler.Health(w, req)

		var resp models.HealthResponse
		testutil.AssertJSON(t, w, &resp)
		if !resp.OK || resp.SamplesLoaded != 15 {
			t.Errorf("Health check %d changed: %+v", i, resp)
		}
	}
}
