// Package counter implements the histograms and damage accumulator of
// C8: the rainflow matrix, range-pair and level-crossing counts, and an
// Accumulator that wires classparam, damagelut/wohler and haigh
// together to turn a closed cyclefind.Cycle into counts and cumulative
// damage, including the optional Miner-consequent endurance depression.
package counter
