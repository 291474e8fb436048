// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: optional display name
  - SubmitRequest: participant_id, sample_id, rating (0-4), optional note

# Response Types

Types for JSON responses:

  - RegisterResponse: participant_id, assigned_foundations, samples, name
  - ParticipantSamplesResponse: the registration snapshot, re-fetched
  - SubmitResponse: ok, updated
  - HealthResponse: ok, samples_loaded, foundations
  - AssignmentsResponse: pair_counts, single_counts
  - ResponsesResponse: aggregates_by_foundation, recent_responses
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Sample: one vignette from the CSV pool (id = row index)
  - Participant: assignment pair plus the served-sample snapshot
  - ResponseRow: a stored rating joined with sample metadata
  - FoundationAggregate: per-foundation response counts and mean rating

# Constants

Sample labels:

	LabelOriginal  = "original"
	LabelGenerated = "generated"

Foundation placeholder for blank CSV cells:

	FoundationMissing = "<missing>"
*/
package models
