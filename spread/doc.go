// Package spread implements the damage spreading methods of C10: once
// the counter closes a cycle, its damage can optionally be redistributed
// across the turning points between the cycle's endpoints instead of
// being attributed solely to the cycle itself.
package spread
