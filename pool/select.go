// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pool

import (
	"math/rand/v2"

	"github.com/danielhkuo/vignette-lab/models"
)

// Select draws a participant's sample list: originalCount original and
// generatedCount generated items, split evenly across the two assigned
// foundations. Each foundation's block is shuffled internally; blocks are
// concatenated, so ordering is random within a foundation but foundations
// are not interleaved.
//
// Shortage policy: if a foundation lacks enough items of an origin, the
// shortfall is pulled from same-origin items of other foundations. If the
// whole pool cannot satisfy the quota, the list degrades to fewer items
// rather than failing the registration.
func (p *Pool) Select(foundationA, foundationB string, originalCount, generatedCount int) []models.Sample {
	origA := originalCount / 2
	origB := originalCount - origA
	genA := generatedCount / 2
	genB := generatedCount - genA

	total := originalCount + generatedCount
	chosen := make([]models.Sample, 0, total)
	taken := make(map[int]bool, total)

	blocks := []struct {
		foundation string
		needOrig   int
		needGen    int
	}{
		{foundationA, origA, genA},
		{foundationB, origB, genB},
	}

	for _, b := range blocks {
		block := p.draw(b.foundation, models.LabelOriginal, b.needOrig, taken)
		block = append(block, p.draw(b.foundation, models.LabelGenerated, b.needGen, taken)...)

		rand.Shuffle(len(block), func(i, j int) {
			block[i], block[j] = block[j], block[i]
		})

		for _, s := range block {
			taken[s.ID] = true
			chosen = append(chosen, s)
		}
	}

	// Last resort: top up from whatever is left, origin ignored.
	if len(chosen) < total {
		var remain []models.Sample
		for _, s := range p.samples {
			if !taken[s.ID] {
				remain = append(remain, s)
			}
		}
		extra := sampleN(remain, total-len(chosen))
		for _, s := range extra {
			taken[s.ID] = true
			chosen = append(chosen, s)
		}
	}

	return chosen
}

// draw picks n samples of the given label, preferring the given foundation
// and falling back to the rest of the pool. Samples whose ids appear in
// taken are excluded; draw does not modify taken.
func (p *Pool) draw(foundation, label string, n int, taken map[int]bool) []models.Sample {
	var preferred, fallback []models.Sample
	for _, s := range p.samples {
		if s.Label != label || taken[s.ID] {
			continue
		}
		if s.Foundation == foundation {
			preferred = append(preferred, s)
		} else {
			fallback = append(fallback, s)
		}
	}

	out := sampleN(preferred, n)
	if len(out) < n {
		out = append(out, sampleN(fallback, n-len(out))...)
	}
	return out
}

// sampleN returns up to n items drawn uniformly without replacement.
func sampleN(items []models.Sample, n int) []models.Sample {
	if n >= len(items) {
		out := make([]models.Sample, len(items))
		copy(out, items)
		return out
	}

	idx := rand.Perm(len(items))[:n]
	out := make([]models.Sample, 0, n)
	for _, i := range idx {
		out = append(out, items[i])
	}
	return out
}
