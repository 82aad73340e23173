// Package finalize implements the residue finalization policies of C9:
// the rules applied to whatever turning points remain in the residue
// once feeding stops, from leaving it untouched through to replaying it
// through the cycle finder a second time.
package finalize
