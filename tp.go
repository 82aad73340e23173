package rainflow

import "github.com/katalvlaran/rainflow/residue"

// TpInit attaches a turning-point store to the Context: buffer==nil
// requests an owned, growable store; a non-nil buffer requests a
// borrowed store that starts out in that slice (tp_init, spec §4.6).
// See residue.TurningPointStore for when a borrowed store's entries
// leave the caller's slice.
func (c *Context) TpInit(buffer []residue.Point) error {
	if err := c.checkUsable(); err != nil {
		return err
	}
	if buffer != nil {
		c.tpStore = residue.NewBorrowedStore(buffer)
	} else {
		c.tpStore = residue.NewOwnedStore()
	}
	return nil
}

// TpInitAutoprune configures automatic pruning on the attached store
// (tp_init_autoprune): once its length exceeds threshold it is trimmed
// back to targetSize from the head. The preserve flags mirror
// FlagTPPreservePos/FlagTPPreserveRes.
func (c *Context) TpInitAutoprune(targetSize, threshold int, preservePos, preserveResidue bool) error {
	if c.tpStore == nil {
		return c.fail(TP, ErrNoTurningPointStore)
	}
	if err := c.tpStore.SetAutoPrune(true, targetSize, threshold); err != nil {
		return c.fail(TP, err)
	}
	c.tpStore.PreservePositions(preservePos)
	c.tpStore.PreserveResidue(preserveResidue)
	return nil
}

// TpDisableAutoprune turns off automatic pruning on the attached store.
func (c *Context) TpDisableAutoprune() error {
	if c.tpStore == nil {
		return c.fail(TP, ErrNoTurningPointStore)
	}
	return c.tpStore.SetAutoPrune(false, 0, 0)
}

// TpLen reports the number of points currently held by the
// turning-point store.
func (c *Context) TpLen() (int, error) {
	if c.tpStore == nil {
		return 0, c.fail(TP, ErrNoTurningPointStore)
	}
	return c.tpStore.Len(), nil
}

// TpAt returns the turning-point store entry at index i.
func (c *Context) TpAt(i int) (residue.Point, error) {
	if c.tpStore == nil {
		return residue.Point{}, c.fail(TP, ErrNoTurningPointStore)
	}
	p, err := c.tpStore.At(i)
	if err != nil {
		return residue.Point{}, c.fail(TP, err)
	}
	return p, nil
}

// TpClear empties the turning-point store (tp_clear).
func (c *Context) TpClear() error {
	if c.tpStore == nil {
		return c.fail(TP, ErrNoTurningPointStore)
	}
	c.tpStore.Clear()
	return nil
}

// SetSpread configures the damage-spreading method and a fallback
// Wöhler slope k for its ramp variants (spec §4.10); when a Wöhler
// curve is configured, spreading uses that curve's K instead of k.
// method==SpreadNone
// disables spreading; every other method requires a turning-point store
// to already be attached via TpInit.
func (c *Context) SetSpread(method SpreadMethod, k float64) error {
	if method != SpreadNone && c.tpStore == nil {
		return c.fail(TP, ErrNoTurningPointStore)
	}
	c.spreadMeth = method
	c.spreadK = k
	return nil
}
