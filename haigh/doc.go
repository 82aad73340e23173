// Package haigh implements the mean-stress amplitude transform (C3):
// given a stress amplitude Sa and mean Sm, it returns the amplitude Sa'
// that would cause equivalent damage at a rig's reference mean-stress
// condition, using a piecewise-linear Haigh reference curve.
//
// A Curve is an ordered list of (Sa,Sm) points; the ratio Sm_i/Sa_i must
// be monotonically non-decreasing across the list, matching how a Haigh
// diagram is normally drawn (increasing R ratio left to right). Either
// a user-supplied curve or the FKM-standard default (built from a single
// mean-stress sensitivity M, spec §4.3) can be used.
package haigh
