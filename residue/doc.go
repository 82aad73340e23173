// Package residue implements the residue buffer and the optional
// turning-point store (C6).
//
// The residue is the ordered sequence of confirmed turning points (plus,
// while the hysteresis filter holds one, a tentative interim point at
// the tail) that have not yet been paired into a closed cycle. It grows
// append-only as the filter confirms points, and shrinks from the middle
// as the cycle finder removes the inner pair of each closed cycle.
//
// The turning-point store is a separate, optional, externally visible
// history of every confirmed point ever seen, addressed by a monotone
// 1-based tp_pos. It supports auto-pruning once it exceeds a configured
// threshold, rewriting positions or reattaching residue back-references
// as documented in spec §4.6.
package residue
