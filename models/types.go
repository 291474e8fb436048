package models

import "time"

// Sample label constants
const (
	LabelOriginal  = "original"
	LabelGenerated = "generated"
)

// FoundationMissing is substituted for a blank foundation column in the CSV.
const FoundationMissing = "<missing>"

// Request types

type RegisterRequest struct {
	Name string `json:"name"`
}

// Rating and SampleID are pointers so a missing field can be told apart
// from a legitimate zero value.
type SubmitRequest struct {
	ParticipantID string `json:"participant_id"`
	SampleID      *int   `json:"sample_id"`
	Rating        *int   `json:"rating"`
	Note          string `json:"note,omitempty"`
}

// Response types

type RegisterResponse struct {
	ParticipantID       string   `json:"participant_id"`
	AssignedFoundations []string `json:"assigned_foundations"`
	Samples             []Sample `json:"samples"`
	Name                string   `json:"name,omitempty"`
}

type ParticipantSamplesResponse struct {
	ParticipantID       string   `json:"participant_id"`
	AssignedFoundations []string `json:"assigned_foundations"`
	Samples             []Sample `json:"samples"`
	Name                string   `json:"name,omitempty"`
}

type SubmitResponse struct {
	OK      bool `json:"ok"`
	Updated bool `json:"updated"`
}

type HealthResponse struct {
	OK            bool     `json:"ok"`
	SamplesLoaded int      `json:"samples_loaded"`
	Foundations   []string `json:"foundations"`
}

// Pair keys are the two foundation names joined with "|" in pool order.
type AssignmentsResponse struct {
	PairCounts   map[string]int `json:"pair_counts"`
	SingleCounts map[string]int `json:"single_counts"`
}

type ResponsesResponse struct {
	AggregatesByFoundation map[string]FoundationAggregate `json:"aggregates_by_foundation"`
	RecentResponses        []ResponseRow                  `json:"recent_responses"`
}

type FoundationAggregate struct {
	Original   int     `json:"original"`
	Generated  int     `json:"generated"`
	Total      int     `json:"total"`
	MeanRating float64 `json:"mean_rating"`
}

// Domain types

type Sample struct {
	ID          int    `json:"id"`
	Foundation  string `json:"foundation"`
	Label       string `json:"label"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Scenario    string `json:"scenario"`
}

type Participant struct {
	ID                  string    `json:"id"`
	AssignedFoundations []string  `json:"assigned_foundations"`
	SampleIDs           []int     `json:"sample_ids"`
	Name                string    `json:"name,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// A response row joined with the sample metadata the admin view needs.
type ResponseRow struct {
	ParticipantID string    `json:"participant_id"`
	SampleID      int       `json:"sample_id"`
	Rating        int       `json:"rating"`
	Note          string    `json:"note,omitempty"`
	TS            time.Time `json:"ts"`
	Foundation    string    `json:"foundation,omitempty"`
	Label         string    `json:"label,omitempty"`
	Title         string    `json:"title,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
