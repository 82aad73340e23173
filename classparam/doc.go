// Package classparam implements the class model used throughout rainflow
// counting: a real-valued sample is mapped onto a bounded set of equal-width
// classes so that turning points, cycles and histograms can all be indexed
// by small integers instead of floats.
//
// A class model is three numbers: how many classes there are, how wide each
// one is, and where the first one starts. Everything else — a value's class
// index, a class's mean, a class's upper bound — is derived from those three.
package classparam
