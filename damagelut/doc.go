// Package damagelut implements the per-class-pair damage lookup table
// (C4): once built, Damage(from,to) and Amplitude(from,to) are O(1)
// instead of re-evaluating the Wöhler curve (and, if configured, the
// Haigh amplitude transform) on every closed cycle.
//
// The table can be temporarily disabled (spec §4.4's "inapt" counter):
// Disable/Enable calls nest, and Lookup reports ok=false while any
// Disable is outstanding so callers fall through to direct computation.
// No other package of this module calls Disable/Enable: the counter's
// Miner-consequent path bypasses the table altogether, and range-pair
// damage is computed from the curve without reading it.
package damagelut
