package rainflow

import (
	"github.com/katalvlaran/rainflow/counter"
	"github.com/katalvlaran/rainflow/damagelut"
	"github.com/katalvlaran/rainflow/wohler"
)

// WlInitElementary configures a single-slope Miner-elementary curve
// (wl_init_elementary) and invalidates any existing lookup table.
func (c *Context) WlInitElementary(sx, nx, k float64) error {
	curve, err := wohler.NewElementary(sx, nx, k)
	if err != nil {
		return c.fail(InvArg, err)
	}
	return c.setCurve(curve)
}

// WlInitOriginal configures a Miner-original curve (wl_init_original).
func (c *Context) WlInitOriginal(sd, nd, k float64) error {
	curve, err := wohler.NewOriginal(sd, nd, k)
	if err != nil {
		return c.fail(InvArg, err)
	}
	return c.setCurve(curve)
}

// WlInitModified configures a Miner-modified curve (wl_init_modified).
func (c *Context) WlInitModified(sx, nx, k, k2, sd, nd float64) error {
	curve, err := wohler.NewModified(sx, nx, k, k2, sd, nd)
	if err != nil {
		return c.fail(InvArg, err)
	}
	return c.setCurve(curve)
}

// WlInitAny configures a curve from a fully populated parameter set
// (wl_init_any).
func (c *Context) WlInitAny(p wohler.Curve) error {
	curve, err := wohler.NewAny(p)
	if err != nil {
		return c.fail(InvArg, err)
	}
	return c.setCurve(curve)
}

// setCurve installs curve, invalidates the damage LUT and rebuilds the
// accumulator it feeds (class model must already be valid; called only
// from the Wl* setters).
func (c *Context) setCurve(curve *wohler.Curve) error {
	if err := c.checkUsable(); err != nil {
		return err
	}
	c.curve = curve
	if c.table != nil {
		c.table.Invalidate()
	}
	return c.rebuildAccumulator()
}

func (c *Context) rebuildAccumulator() error {
	if c.curve == nil || !c.params.Enabled() {
		return nil
	}
	var opts []counter.Option
	if c.table != nil {
		opts = append(opts, counter.WithTable(c.table))
	}
	if c.transformer != nil {
		opts = append(opts, counter.WithTransformer(c.transformer))
	}
	if c.flags.Has(FlagRP) {
		opts = append(opts, counter.WithRangePair())
	}
	if c.flags.Has(FlagLCUp) || c.flags.Has(FlagLCDown) {
		opts = append(opts, counter.WithLevelCrossing(c.flags.Has(FlagLCUp), c.flags.Has(FlagLCDown)))
	}
	acc, err := counter.NewAccumulator(c.params, c.curve, opts...)
	if err != nil {
		return c.fail(InvArg, err)
	}
	c.acc = acc
	return nil
}

// WlParamGet returns the currently configured Wöhler curve, or an error
// if none has been set.
func (c *Context) WlParamGet() (wohler.Curve, error) {
	if c.curve == nil {
		return wohler.Curve{}, newError(InvArg, ErrNoWohlerCurve)
	}
	return *c.curve, nil
}

// WlCalcDamage computes single-cycle damage at amplitude sa directly
// from the configured Wöhler curve; the damage lookup table is not
// consulted (wl_calc_damage family).
func (c *Context) WlCalcDamage(sa float64) (float64, error) {
	if c.curve == nil {
		return 0, c.fail(InvArg, ErrNoWohlerCurve)
	}
	d, err := c.curve.Damage(sa)
	if err != nil {
		return 0, c.fail(InvArg, err)
	}
	return d, nil
}

// WlCalcN computes cycles-to-failure at constant amplitude sa
// (wl_calc_n).
func (c *Context) WlCalcN(sa float64) (float64, error) {
	if c.curve == nil {
		return 0, c.fail(InvArg, ErrNoWohlerCurve)
	}
	n, err := c.curve.N(sa)
	if err != nil {
		return 0, c.fail(InvArg, err)
	}
	return n, nil
}

// WlCalcSa computes the amplitude failing in exactly n cycles
// (wl_calc_sa).
func (c *Context) WlCalcSa(n float64) (float64, error) {
	if c.curve == nil {
		return 0, c.fail(InvArg, ErrNoWohlerCurve)
	}
	sa, err := c.curve.Sa(n)
	if err != nil {
		return 0, c.fail(InvArg, err)
	}
	return sa, nil
}

// BuildLUT precomputes the damage/amplitude lookup table for the
// current class model, curve and transformer (a named entry point for
// the LUT build step implicit in spec.md's wl_/at_ setters).
func (c *Context) BuildLUT() error {
	if c.curve == nil {
		return c.fail(LUT, ErrNoWohlerCurve)
	}
	t, err := damagelut.Build(c.params, c.curve, c.transformer)
	if err != nil {
		return c.fail(LUT, err)
	}
	c.table = t
	return c.rebuildAccumulator()
}
