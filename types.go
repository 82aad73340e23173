package rainflow

import (
	"github.com/katalvlaran/rainflow/counter"
	"github.com/katalvlaran/rainflow/cyclefind"
	"github.com/katalvlaran/rainflow/finalize"
	"github.com/katalvlaran/rainflow/spread"
)

// State is the Context lifecycle state machine of spec §4.11.
type State int

const (
	StateInit0 State = iota
	StateInit
	StateBusy
	StateBusyInterim
	StateFinalize
	StateFinished
	StateError
)

// CountFlags is a bitmask selecting which histograms and behaviors a
// Context maintains.
type CountFlags uint32

const (
	FlagRFM CountFlags = 1 << iota
	FlagDamage
	FlagDH
	FlagRP
	FlagLCUp
	FlagLCDown
	FlagEnforceMargin
	FlagTPAutoprune
	FlagTPPreservePos
	FlagTPPreserveRes
)

// Has reports whether every bit in want is set in f.
func (f CountFlags) Has(want CountFlags) bool { return f&want == want }

// CountMethod selects the cycle-closure strategy (spec §6: counting
// method enumeration).
type CountMethod = cyclefind.Method

const (
	MethodFourPoint = cyclefind.FourPoint
	MethodHCM       = cyclefind.HCM
)

// ResidualMethod selects the residue finalization policy.
type ResidualMethod = finalize.Policy

const (
	ResidualNone           = finalize.None
	ResidualIgnore         = finalize.Ignore
	ResidualDiscard        = finalize.Discard
	ResidualHalfCycles     = finalize.HalfCycles
	ResidualFullCycles     = finalize.FullCycles
	ResidualClormannSeeger = finalize.ClormannSeeger
	ResidualRepeated       = finalize.Repeated
	ResidualRPDIN45667     = finalize.RPDIN45667
)

// SpreadMethod selects the damage-spreading method.
type SpreadMethod = spread.Method

const (
	SpreadNone            = spread.None
	SpreadHalf23          = spread.Half23
	SpreadFullP2          = spread.FullP2
	SpreadFullP3          = spread.FullP3
	SpreadRampAmplitude23 = spread.RampAmplitude23
	SpreadRampAmplitude24 = spread.RampAmplitude24
	SpreadRampDamage23    = spread.RampDamage23
	SpreadRampDamage24    = spread.RampDamage24
	SpreadTransient23     = spread.Transient23
	SpreadTransient23c    = spread.Transient23c
)

// RangePairDamageMethod selects how DamageFromRP interprets a range-pair
// histogram's entries (spec §6).
type RangePairDamageMethod = counter.RangePairDamageMethod

const (
	RPDefault    = counter.RPDefault
	RPElementary = counter.RPElementary
	RPModified   = counter.RPModified
	RPConsequent = counter.RPConsequent
)

// Logger is the optional debug sink a Context may be configured with
// (spec §5: "an optional debug log sink passed through the context").
// It is never required; a nil Logger disables logging entirely.
type Logger interface {
	Debugf(format string, args ...interface{})
}
