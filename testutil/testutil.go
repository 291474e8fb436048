// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/vignette-lab/cliparse"
	"github.com/danielhkuo/vignette-lab/db"
	"github.com/danielhkuo/vignette-lab/models"
	"github.com/danielhkuo/vignette-lab/pool"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           8000,
		DatabasePath:   ":memory:",
		SamplesCSV:     "testdata.csv",
		OriginalCount:  10,
		GeneratedCount: 20,
	}
}

// BuildPool constructs an in-memory sample pool with originalsPer original
// and generatedPer generated samples for each foundation. Sample ids are
// sequential row indexes, like the CSV loader assigns.
func BuildPool(t *testing.T, foundations []string, originalsPer, generatedPer int) *pool.Pool {
	t.Helper()

	var samples []models.Sample
	id := 0
	for _, f := range foundations {
		for i := 0; i < originalsPer; i++ {
			samples = append(samples, models.Sample{
				ID:         id,
				Foundation: f,
				Label:      models.LabelOriginal,
				Title:      fmt.Sprintf("%s original %d", f, i),
				Scenario:   fmt.Sprintf("An original %s scenario (#%d).", f, i),
			})
			id++
		}
		for i := 0; i < generatedPer; i++ {
			samples = append(samples, models.Sample{
				ID:         id,
				Foundation: f,
				Label:      models.LabelGenerated,
				Title:      fmt.Sprintf("%s generated %d", f, i),
				Scenario:   fmt.Sprintf("A generated %s scenario (#%d).", f, i),
			})
			id++
		}
	}

	return pool.New(samples)
}

// CreateTestParticipant inserts a participant row and returns its id
func CreateTestParticipant(t *testing.T, conn *sql.DB, id string, foundations []string, sampleIDs []int) string {
	t.Helper()

	pairJSON, _ := json.Marshal(foundations)
	samplesJSON, _ := json.Marshal(sampleIDs)

	_, err := conn.Exec(`
		INSERT INTO participants (id, assigned_foundations, samples_json, name, created_at)
		VALUES (?, ?, ?, NULL, ?)
	`, id, string(pairJSON), string(samplesJSON), time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test participant: %v", err)
	}

	return id
}

// InsertTestResponse inserts a response row directly
func InsertTestResponse(t *testing.T, conn *sql.DB, participantID string, sampleID, rating int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO responses (participant_id, sample_id, rating, note, ts)
		VALUES (?, ?, ?, '', ?)
	`, participantID, sampleID, rating, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to insert test response: %v", err)
	}
}

// CountResponses returns the number of stored response rows
func CountResponses(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM responses`).Scan(&n); err != nil {
		t.Fatalf("Failed to count responses: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
