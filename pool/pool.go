// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pool

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/danielhkuo/vignette-lab/models"
)

// Pool is the immutable in-memory sample table loaded at startup.
type Pool struct {
	samples     []models.Sample
	byID        map[int]models.Sample
	foundations []string
}

// Load reads the sample pool from a CSV file. The file must have a header
// row containing at least "foundation" and "label" columns; "title",
// "description" and "scenario" are optional. Sample ids are row indexes,
// matching the export tooling's join key.
func Load(path string) (*Pool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sample CSV: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"foundation", "label"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("sample CSV missing required column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var samples []models.Sample
	for idx := 0; ; idx++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", idx+1, err)
		}

		foundation := strings.TrimSpace(field(record, "foundation"))
		if foundation == "" {
			foundation = models.FoundationMissing
		}
		label := strings.ToLower(strings.TrimSpace(field(record, "label")))
		if label != models.LabelOriginal && label != models.LabelGenerated {
			label = models.LabelGenerated
		}

		samples = append(samples, models.Sample{
			ID:          idx,
			Foundation:  foundation,
			Label:       label,
			Title:       field(record, "title"),
			Description: field(record, "description"),
			Scenario:    field(record, "scenario"),
		})
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("sample CSV %s contains no rows", path)
	}

	return New(samples), nil
}

// New builds a Pool from an already-assembled sample list. Used by Load
// and by tests.
func New(samples []models.Sample) *Pool {
	byID := make(map[int]models.Sample, len(samples))
	foundationSet := make(map[string]bool)
	for _, s := range samples {
		byID[s.ID] = s
		foundationSet[s.Foundation] = true
	}

	foundations := make([]string, 0, len(foundationSet))
	for f := range foundationSet {
		foundations = append(foundations, f)
	}
	sort.Strings(foundations)

	return &Pool{
		samples:     samples,
		byID:        byID,
		foundations: foundations,
	}
}

// Size returns the number of samples in the pool.
func (p *Pool) Size() int {
	return len(p.samples)
}

// Foundations returns the distinct foundation labels in sorted order.
// Callers must not mutate the returned slice.
func (p *Pool) Foundations() []string {
	return p.foundations
}

// ByID looks up a sample by its id.
func (p *Pool) ByID(id int) (models.Sample, bool) {
	s, ok := p.byID[id]
	return s, ok
}

// Samples returns the samples for an ordered list of ids, preserving the
// input order. Ids unknown to the pool are skipped.
func (p *Pool) Samples(ids []int) []models.Sample {
	out := make([]models.Sample, 0, len(ids))
	for _, id := range ids {
		if s, ok := p.byID[id]; ok {
			out = append(out, s)
		}
	}
	return out
}
