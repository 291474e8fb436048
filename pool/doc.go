// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package pool holds the in-memory sample pool and the per-participant draw.

# Loading

Load reads the sample CSV once at startup:

	samplePool, err := pool.Load(cfg.SamplesCSV)

A missing file or a header without the required "foundation"/"label"
columns is an error; the server must not start without a valid pool.
Row normalization matches the export tooling: a blank foundation becomes
"<missing>", an unrecognized label becomes "generated".

The pool is immutable after Load and safe for concurrent reads without
locking.

# Selection

Select draws the fixed per-participant mix:

	samples := samplePool.Select(foundationA, foundationB, 10, 20)

Quotas split evenly across the two foundations. Ordering is randomized
within each foundation block; blocks are not interleaved. When a
foundation runs short, the draw falls back to same-origin samples from
other foundations, and degrades to fewer items only once the whole pool
is exhausted.

# Lookup

	s, ok := samplePool.ByID(42)
	ordered := samplePool.Samples(participant.SampleIDs)
*/
package pool
