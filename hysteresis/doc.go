// Package hysteresis implements the peak-valley filter (C5): it converts
// a raw sample stream into confirmed turning points by suppressing any
// reversal smaller than a configured hysteresis band.
//
// The filter is a small state machine (spec §4.5). Before any turning
// point has been confirmed it tracks a running (lo,hi) envelope over the
// samples seen so far; once the envelope's range exceeds the hysteresis
// band, the earlier of the two extrema is confirmed and the later one
// becomes an interim (tentative) point. From then on every new sample
// either extends the interim in the same direction, confirms it and
// starts a new interim in the opposite direction once the reversal is
// large enough, or is discarded as noise inside the band.
//
// Non-finite samples (NaN, ±Inf) are skipped without affecting state.
package hysteresis
