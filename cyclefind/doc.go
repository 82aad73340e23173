// Package cyclefind implements the two closed-cycle detection strategies
// of C7: the classical four-point method and the HCM (Clormann–Seeger)
// three-point stack method. Both consume confirmed turning points from a
// residue.Buffer and emit Cycle values for the counter (C8) to accumulate,
// removing the points they consume from the buffer as they go.
package cyclefind
