package rainflow

import (
	"github.com/katalvlaran/rainflow/classparam"
	"github.com/katalvlaran/rainflow/counter"
	"github.com/katalvlaran/rainflow/cyclefind"
	"github.com/katalvlaran/rainflow/damagelut"
	"github.com/katalvlaran/rainflow/haigh"
	"github.com/katalvlaran/rainflow/hysteresis"
	"github.com/katalvlaran/rainflow/residue"
	"github.com/katalvlaran/rainflow/wohler"
)

// Context is the single-threaded, cooperative facade composing every
// component of the engine: the class model, Wöhler curve and optional
// Haigh transform, the hysteresis filter, the cycle finder, the
// histograms and damage accumulator, and the optional turning-point
// store and damage history. A Context is not safe for concurrent use;
// independent Contexts share no state (spec §5).
type Context struct {
	state State
	err   *Error

	params classparam.Params
	hyst   float64
	flags  CountFlags
	logger Logger

	curve       *wohler.Curve
	haighCurve  *haigh.Curve
	transformer *haigh.Transformer
	table       *damagelut.Table

	filter  *hysteresis.Filter
	residue *residue.Buffer
	finder  cyclefind.Finder
	method  CountMethod
	epsilon float64

	acc *counter.Accumulator

	tpStore     *residue.TurningPointStore
	dh          []float64
	spreadK     float64
	spreadMeth  SpreadMethod

	closedCount int64
	streamPos   int64
}

func (c *Context) logf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}

func (c *Context) fail(kind ErrorKind, err error) error {
	e := newError(kind, err)
	c.err = e
	c.state = StateError
	c.logf("rainflow: entering error state: %v", e)
	return e
}

// checkUsable returns the latched error, if any, and otherwise
// ErrNotInitialized if the context was never initialized.
func (c *Context) checkUsable() error {
	if c.state == StateError {
		return c.err
	}
	if c.state == StateInit0 {
		return ErrNotInitialized
	}
	return nil
}

// New validates and allocates a Context. count<=classparam.MaxClasses,
// width>0, hysteresis>=0 (spec §4.11).
func New(count int, width, offset, hyst float64, flags CountFlags, opts ...Option) (*Context, error) {
	params, err := classparam.New(count, width, offset)
	if err != nil {
		return nil, newError(InvArg, err)
	}
	if hyst < 0 {
		return nil, newError(InvArg, hysteresis.ErrNegativeHysteresis)
	}
	filter, err := hysteresis.NewFilter(hyst)
	if err != nil {
		return nil, newError(InvArg, err)
	}

	cfg := &config{method: MethodFourPoint, epsilon: width / 100}
	for _, opt := range opts {
		opt(cfg)
	}

	residueCap := 2 * count
	if residueCap < 3 {
		residueCap = 3
	}
	finder, err := cyclefind.New(cfg.method, cfg.epsilon)
	if err != nil {
		return nil, newError(InvArg, err)
	}

	c := &Context{
		state:   StateInit,
		params:  params,
		hyst:    hyst,
		flags:   flags,
		logger:  cfg.logger,
		filter:  filter,
		residue: residue.NewBuffer(residueCap),
		finder:  finder,
		method:  cfg.method,
		epsilon: cfg.epsilon,
	}
	return c, nil
}

// Deinit releases every resource the Context owns and returns it to
// StateInit0. A Deinit'd context must go through New again before use.
func (c *Context) Deinit() {
	*c = Context{state: StateInit0}
}

// ClearCounts resets every histogram and cumulative damage value while
// keeping the class model, Wöhler curve and configuration intact.
func (c *Context) ClearCounts() error {
	if err := c.checkUsable(); err != nil {
		return err
	}
	if c.acc != nil {
		n := c.acc.Params.Count
		m, err := counter.NewMatrix(n)
		if err != nil {
			return c.fail(Memory, err)
		}
		c.acc.Matrix = m
		c.acc.Damage = 0
		if c.acc.RP != nil {
			c.acc.RP, _ = counter.NewRangePair(n)
		}
		if c.acc.LC != nil {
			c.acc.LC, _ = counter.NewLevelCrossing(n, c.acc.LC.UpEnabled, c.acc.LC.DownEnabled)
		}
	}
	c.closedCount = 0
	return nil
}

// State reports the Context's current lifecycle state.
func (c *Context) State() State { return c.state }

// LastError returns the error that latched the Context into StateError,
// or nil if it is not in that state.
func (c *Context) LastError() *Error { return c.err }

// ClassParamGet returns the current class model.
func (c *Context) ClassParamGet() classparam.Params { return c.params }

// ClassNumber returns the class index for v without clipping, mirroring
// classparam.Params.ClassOf.
func (c *Context) ClassNumber(v float64) (int, bool) { return c.params.ClassOf(v) }

// ClassUpper returns the upper bound of class c.
func (c *Context) ClassUpper(class int) float64 { return c.params.Upper(class) }

// ClassMean returns the mean of class c.
func (c *Context) ClassMean(class int) float64 { return c.params.Mean(class) }

// Flags returns the Context's current CountFlags (get_flags).
func (c *Context) Flags() CountFlags { return c.flags }

// SetFlags replaces the Context's CountFlags (set_flags). Changing
// TP/DH related bits after tp_init/dh_init has no retroactive effect on
// buffers already attached.
func (c *Context) SetFlags(flags CountFlags) { c.flags = flags }

// Stats is a convenience summary of the Context's progress.
type Stats struct {
	State       State
	ClosedCount int64
	Damage      float64
	StreamLen   int64
}

// Stats reports closed-cycle count, cumulative damage and the current
// state, a supplemented convenience accessor (SPEC_FULL.md §6).
func (c *Context) Stats() Stats {
	s := Stats{State: c.state, ClosedCount: c.closedCount, StreamLen: c.streamPos}
	if c.acc != nil {
		s.Damage = c.acc.Damage
	}
	return s
}
