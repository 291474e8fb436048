// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package assign balances foundation assignment across participants.

# Balancer

The Balancer owns the running per-foundation assignment counts. The counts
are private to this package and every mutation happens inside the
mutex-guarded Assign call, so concurrent registrations are serialized at
this point.

	balancer, err := assign.Load(conn, samplePool.Foundations())
	...
	a, b := balancer.Assign()

Assign returns the two foundations with the lowest running counts and
increments both. Ties break on pool order. Over N sequential
registrations across K foundations the counts never differ by more
than one.

# Seeding

Load counts existing participants' stored pairs so a restart does not
reset the balance. New starts from zero, which tests use.
*/
package assign
