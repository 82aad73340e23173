// Package wohler implements the Wöhler (S-N) fatigue curve and the damage
// it assigns to a single stress-amplitude cycle.
//
// Three shapes are supported, per spec §4.2:
//
//   - Elementary: a single log-log slope k through (Sx, Nx), no endurance.
//   - Original:   the same single slope, with an endurance point (Sd, Nd)
//     equal to (Sx, Nx) below which damage is zero.
//   - Modified:   a distinct slope k2 between Sx and the endurance point
//     (Sd, Nd), shallower than k, before damage drops to zero below Sd.
//
// Damage for an amplitude Sa follows the closed-form
//
//	D(Sa) = exp(|slope| * (ln(Sa) - ln(Sx)) - ln(Nx))
//
// using k above Sx and k2 below it, with the omission/endurance cutoffs
// applied first.
package wohler
