package rainflow

// DhInit attaches a damage-history buffer to the Context: one float64
// slot per absolute stream position, filled in by the damage-spreading
// step as cycles close (dh_init, spec §4.10). size allocates a fresh
// owned buffer; pass a non-nil buffer to borrow a caller-supplied slice
// instead (never grown past len(buffer)).
func (c *Context) DhInit(size int, buffer []float64) error {
	if err := c.checkUsable(); err != nil {
		return err
	}
	if buffer != nil {
		c.dh = buffer
		return nil
	}
	c.dh = make([]float64, size)
	return nil
}

// DhAt returns the accumulated damage recorded at absolute stream
// position pos (1-based, matching hysteresis.Sample.Pos).
func (c *Context) DhAt(pos int64) (float64, error) {
	if c.dh == nil {
		return 0, c.fail(InvArg, ErrNoDamageHistory)
	}
	idx := pos - 1
	if idx < 0 || idx >= int64(len(c.dh)) {
		return 0, c.fail(InvArg, ErrIndexOutOfRange)
	}
	return c.dh[idx], nil
}

// DhLen reports the capacity of the attached damage-history buffer.
func (c *Context) DhLen() int { return len(c.dh) }

// DhClear zeroes every slot of the attached damage-history buffer.
func (c *Context) DhClear() error {
	if c.dh == nil {
		return c.fail(InvArg, ErrNoDamageHistory)
	}
	for i := range c.dh {
		c.dh[i] = 0
	}
	return nil
}
