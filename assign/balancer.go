// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package assign

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

var ErrTooFewFoundations = errors.New("at least two foundations required")

// Balancer owns the running per-foundation assignment counts. All access
// goes through Assign, which is serialized by a mutex; nothing else may
// touch the counts.
type Balancer struct {
	mu     sync.Mutex
	order  []string
	counts map[string]int
}

// New creates a Balancer over the given foundations, all counts zero.
// The slice order is the tie-break order for Assign.
func New(foundations []string) (*Balancer, error) {
	if len(foundations) < 2 {
		return nil, ErrTooFewFoundations
	}

	counts := make(map[string]int, len(foundations))
	order := make([]string, len(foundations))
	copy(order, foundations)
	for _, f := range order {
		counts[f] = 0
	}

	return &Balancer{order: order, counts: counts}, nil
}

// Load creates a Balancer seeded from the participants table, so a
// restarted server keeps long-run balance. Rows whose stored pair fails to
// parse, and foundations no longer present in the pool, are skipped.
func Load(db *sql.DB, foundations []string) (*Balancer, error) {
	b, err := New(foundations)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT assigned_foundations FROM participants`)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignment counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}

		var pair []string
		if err := json.Unmarshal([]byte(raw), &pair); err != nil || len(pair) != 2 {
			continue
		}
		for _, f := range pair {
			if _, known := b.counts[f]; known {
				b.counts[f]++
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignment rows: %w", err)
	}

	return b, nil
}

// Assign picks the two least-assigned foundations, increments both counts,
// and returns them ordered by the pool's foundation order. Ties break on
// that same order, so the result is deterministic for a given count state.
func (b *Balancer) Assign() (string, string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	first, second := "", ""
	for _, f := range b.order {
		switch {
		case first == "" || b.counts[f] < b.counts[first]:
			second = first
			first = f
		case second == "" || b.counts[f] < b.counts[second]:
			second = f
		}
	}

	b.counts[first]++
	b.counts[second]++

	// Report in pool order regardless of which count was lower.
	for _, f := range b.order {
		if f == second {
			return second, first
		}
		if f == first {
			break
		}
	}
	return first, second
}

// Counts returns a copy of the running per-foundation counts.
func (b *Balancer) Counts() map[string]int {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make(map[string]int, len(b.counts))
	for f, c := range b.counts {
		out[f] = c
	}
	return out
}
