package rainflow

import "github.com/katalvlaran/rainflow/haigh"

// AtInit configures the Haigh mean-stress amplitude transform (at_init):
// sa/sm describe a custom reference curve, or pass nil for sa to fall
// back to the FKM-standard curve parameterized by m. pinned selects
// whether the rig condition is a constant ratio (pinnedR, rRig) or a
// constant absolute mean (pinnedSm, smRig); symmetric mirrors the curve
// around Sm=0 before use. Configuring a transform invalidates any
// existing damage lookup table, since it changes the amplitude every
// (from,to) pair resolves to.
func (c *Context) AtInit(sa, sm []float64, m float64, pinned haigh.PinMode, smRig, rRig float64, symmetric bool) error {
	if err := c.checkUsable(); err != nil {
		return err
	}

	var curve *haigh.Curve
	var err error
	if sa != nil {
		curve, err = haigh.NewCurve(sa, sm)
	} else {
		curve, err = haigh.NewFKMDefault(m)
	}
	if err != nil {
		return c.fail(AT, err)
	}

	c.haighCurve = curve
	c.transformer = haigh.NewTransformer(curve, pinned, smRig, rRig, symmetric)
	if c.table != nil {
		c.table.Invalidate()
	}
	return c.rebuildAccumulator()
}

// AtTransform applies the configured transform to a single (Sa,Sm) pair
// directly, without going through a closed cycle (at_transform).
func (c *Context) AtTransform(sa, sm float64) (float64, error) {
	if c.transformer == nil {
		return 0, c.fail(AT, ErrNoTransform)
	}
	out, err := c.transformer.Transform(sa, sm)
	if err != nil {
		return 0, c.fail(AT, err)
	}
	return out, nil
}
