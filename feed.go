package rainflow

import (
	"errors"
	"math"

	"github.com/katalvlaran/rainflow/classparam"
	"github.com/katalvlaran/rainflow/counter"
	"github.com/katalvlaran/rainflow/cyclefind"
	"github.com/katalvlaran/rainflow/hysteresis"
	"github.com/katalvlaran/rainflow/residue"
	"github.com/katalvlaran/rainflow/spread"
)

// Feed pushes values through the hysteresis filter one at a time,
// advancing streamPos for every sample — finite or not — so that
// turning-point positions and spreading windows stay anchored to the
// caller's original stream indexing (spec §4.1/§4.5). Non-finite
// samples are silently skipped by the filter itself.
func (c *Context) Feed(values []float64) error {
	for _, v := range values {
		if err := c.feedOne(v); err != nil {
			return err
		}
	}
	return nil
}

// FeedScaled is Feed with every sample multiplied by factor first, used
// to replay a normalized stream at a chosen physical unit without a
// caller-side copy.
func (c *Context) FeedScaled(values []float64, factor float64) error {
	for _, v := range values {
		if err := c.feedOne(v * factor); err != nil {
			return err
		}
	}
	return nil
}

// Tuple is one (value, external-position) pair accepted by FeedTuple,
// for callers replaying a stream whose positions are not contiguous
// from 1 (e.g. a re-fed saved residue).
type Tuple struct {
	Value float64
	Pos   int64
}

// FeedTuple feeds samples carrying their own absolute stream position,
// bypassing the Context's internal counter (spec §6: tuple feed form).
// Positions must be non-decreasing; the Context's internal counter is
// advanced to match the last tuple fed.
func (c *Context) FeedTuple(tuples []Tuple) error {
	for _, t := range tuples {
		c.streamPos = t.Pos - 1
		if err := c.feedOne(t.Value); err != nil {
			return err
		}
	}
	return nil
}

func (c *Context) feedOne(v float64) error {
	if err := c.checkUsable(); err != nil {
		return err
	}
	if c.state != StateBusy && c.state != StateInit && c.state != StateBusyInterim {
		return c.fail(InvArg, ErrWrongState)
	}

	c.streamPos++
	if !isFinite(v) {
		return nil
	}
	if c.state == StateInit {
		c.state = StateBusy
	}

	class := 0
	if c.params.Enabled() {
		cl, _ := c.params.ClassOf(v)
		if !c.params.InRange(cl) {
			return c.fail(InvArg, classparam.ErrClassOutOfRange)
		}
		class = cl
	}

	sample := hysteresis.Sample{Value: v, Class: class, Pos: c.streamPos}
	res, ok := c.filter.Feed(sample)
	if !ok {
		return nil
	}

	if err := c.absorb(res); err != nil {
		return err
	}

	c.state = StateBusyInterim
	if cycles := c.finder.Drain(c.residue); len(cycles) > 0 {
		if err := c.countCycles(cycles); err != nil {
			return err
		}
	}
	return nil
}

// absorb mirrors a hysteresis.Result onto the residue buffer (and the
// turning-point store, if attached): the very first confirmation seeds
// two fresh tail entries; every later confirmation only appends the new
// tentative point, since the outgoing tentative one is already the
// buffer's tail. A bare continuation (no confirmation) replaces the
// tail in place.
func (c *Context) absorb(res hysteresis.Result) error {
	if res.HasConfirmed {
		if c.residue.Len() == 0 {
			if err := c.pushPoint(res.Confirmed); err != nil {
				return err
			}
		}
		return c.pushPoint(res.Interim)
	}
	p := residue.Point{Sample: res.Interim}
	if c.residue.Len() == 0 {
		return c.residue.Push(p)
	}
	return c.residue.ReplaceLast(p)
}

func (c *Context) pushPoint(s hysteresis.Sample) error {
	p := residue.Point{Sample: s}
	if c.tpStore != nil {
		pos, err := c.tpStore.AppendPoint(p, c.residue)
		if err != nil {
			return c.fail(TP, err)
		}
		p.TPPos = pos
	}
	if err := c.residue.Push(p); err != nil {
		return c.fail(Memory, err)
	}
	return nil
}

func (c *Context) countCycles(cycles []cyclefind.Cycle) error {
	for _, cyc := range cycles {
		c.closedCount++
		if c.acc != nil {
			if err := c.acc.Count(cyc, counter.IncFull); err != nil {
				return c.fail(InvArg, err)
			}
			if c.spreadMeth != SpreadNone && c.tpStore != nil {
				di, _, err := c.acc.DamageOf(cyc)
				if err != nil {
					return c.fail(InvArg, err)
				}
				if err := c.spreadDamage(cyc, di); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// spreadDamage distributes one cycle's damage share across the turning
// points it spans, per the Context's configured SpreadMethod. The
// Wöhler slope k passed to spread.Spread comes from the active curve;
// only its magnitude is used.
func (c *Context) spreadDamage(cyc cyclefind.Cycle, damage float64) error {
	k := c.spreadK
	if c.curve != nil {
		k = c.curve.K
	}
	err := spread.Spread(c.spreadMeth, cyc, damage, k, c.tpStore, c.dh, c.streamPos)
	if err == nil {
		return nil
	}
	if errors.Is(err, spread.ErrUnsupported) {
		return c.fail(Unsupported, err)
	}
	return c.fail(InvArg, err)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
