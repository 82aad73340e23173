// Package rainflow implements streaming rainflow cycle counting for
// fatigue analysis of scalar load-time histories.
//
// A Context is fed samples incrementally via Feed/FeedTuple/FeedScaled;
// internally it runs each sample through a hysteresis peak-valley filter
// (hysteresis), closes cycles with either the four-point method or the
// HCM (Clormann–Seeger) stack method (cyclefind), accumulates them into
// a rainflow matrix, range-pair and level-crossing histograms and
// cumulative damage against a Wöhler S-N curve (counter, wohler), and
// optionally spreads each cycle's damage across the turning points it
// spans (spread). Finalize applies one of several policies to whatever
// residue is left once feeding stops (finalize).
//
// The package does no file or network I/O and performs no background
// work: every operation runs synchronously on the caller's goroutine,
// and a Context carries no shared mutable state beyond what the caller
// holds a reference to.
package rainflow
