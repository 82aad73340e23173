package rainflow

import "github.com/katalvlaran/rainflow/counter"

func (c *Context) requireAcc() error {
	if c.acc == nil {
		return c.fail(InvArg, ErrHistogramNotEnabled)
	}
	return nil
}

// RfmGet returns the rainflow matrix cell at (from,to) (rfm_get).
func (c *Context) RfmGet(from, to int) (uint64, error) {
	if err := c.requireAcc(); err != nil {
		return 0, err
	}
	v, err := c.acc.Matrix.Get(from, to)
	if err != nil {
		return 0, c.fail(InvArg, err)
	}
	return v, nil
}

// RfmSet overwrites a rainflow matrix cell directly (rfm_set).
func (c *Context) RfmSet(from, to int, v uint64) error {
	if err := c.requireAcc(); err != nil {
		return err
	}
	if err := c.acc.Matrix.Set(from, to, v); err != nil {
		return c.fail(InvArg, err)
	}
	return nil
}

// RfmPeek is the unchecked rainflow matrix read (rfm_peek).
func (c *Context) RfmPeek(from, to int) uint64 {
	if c.acc == nil {
		return 0
	}
	return c.acc.Matrix.Peek(from, to)
}

// RfmPoke is the unchecked rainflow matrix write (rfm_poke).
func (c *Context) RfmPoke(from, to int, v uint64) {
	if c.acc == nil {
		return
	}
	c.acc.Matrix.Poke(from, to, v)
}

// RfmSum returns the total count over every matrix cell (rfm_sum).
func (c *Context) RfmSum() (uint64, error) {
	if err := c.requireAcc(); err != nil {
		return 0, err
	}
	return c.acc.Matrix.Sum(), nil
}

// RfmNonZeros counts matrix cells with a non-zero count (rfm_non_zeros).
func (c *Context) RfmNonZeros() (int, error) {
	if err := c.requireAcc(); err != nil {
		return 0, err
	}
	return c.acc.Matrix.NonZeros(), nil
}

// RfmMakeSymmetric folds the matrix into a symmetric form in place
// (rfm_make_symmetric).
func (c *Context) RfmMakeSymmetric() error {
	if err := c.requireAcc(); err != nil {
		return err
	}
	c.acc.Matrix.MakeSymmetric()
	return nil
}

// RfmCheck validates the matrix is not within one increment of
// saturating (rfm_check).
func (c *Context) RfmCheck() error {
	if err := c.requireAcc(); err != nil {
		return err
	}
	if err := c.acc.Matrix.Check(); err != nil {
		return c.fail(Memory, err)
	}
	return nil
}

// RfmDamage returns the cumulative damage total the matrix has
// accumulated so far (rfm_damage).
func (c *Context) RfmDamage() (float64, error) {
	if err := c.requireAcc(); err != nil {
		return 0, err
	}
	return c.acc.Damage, nil
}

// RpGet returns the range-pair histogram bucket at rangeIdx (rp_get).
func (c *Context) RpGet(rangeIdx int) (uint64, error) {
	if err := c.requireAcc(); err != nil {
		return 0, err
	}
	if c.acc.RP == nil {
		return 0, c.fail(InvArg, ErrHistogramNotEnabled)
	}
	v, err := c.acc.RP.Get(rangeIdx)
	if err != nil {
		return 0, c.fail(InvArg, err)
	}
	return v, nil
}

// RpFromRFM rebuilds the range-pair histogram from the current rainflow
// matrix (rp_from_rfm), replacing whatever range-pair state existed.
func (c *Context) RpFromRFM() error {
	if err := c.requireAcc(); err != nil {
		return err
	}
	rp, err := counter.FromRFM(c.acc.Matrix)
	if err != nil {
		return c.fail(Memory, err)
	}
	c.acc.RP = rp
	return nil
}

// LcGet returns the up/down crossing counts at boundary i (lc_get).
func (c *Context) LcGet(i int) (up, down uint64, err error) {
	if err = c.requireAcc(); err != nil {
		return 0, 0, err
	}
	if c.acc.LC == nil {
		return 0, 0, c.fail(InvArg, ErrHistogramNotEnabled)
	}
	up, down, err = c.acc.LC.Get(i)
	if err != nil {
		return 0, 0, c.fail(InvArg, err)
	}
	return up, down, nil
}

// LcFromRFM rebuilds level crossings from the current rainflow matrix
// (lc_from_rfm).
func (c *Context) LcFromRFM() error {
	if err := c.requireAcc(); err != nil {
		return err
	}
	if c.acc.LC == nil {
		return c.fail(InvArg, ErrHistogramNotEnabled)
	}
	lc, err := counter.NewLevelCrossing(c.acc.LC.N, c.acc.LC.UpEnabled, c.acc.LC.DownEnabled)
	if err != nil {
		return c.fail(Memory, err)
	}
	if err := lc.FromRFM(c.acc.Matrix); err != nil {
		return c.fail(Memory, err)
	}
	c.acc.LC = lc
	return nil
}

// LcFromResidue adds the level crossings of the current open residue's
// adjacent pairs onto the existing level-crossing counts
// (lc_from_residue).
func (c *Context) LcFromResidue() error {
	if err := c.requireAcc(); err != nil {
		return err
	}
	if c.acc.LC == nil {
		return c.fail(InvArg, ErrHistogramNotEnabled)
	}
	if err := c.acc.LC.FromResidue(c.residue); err != nil {
		return c.fail(Memory, err)
	}
	return nil
}

// DamageFromRFM recomputes total damage by walking the rainflow matrix
// (damage_from_rfm), independent of the incrementally accumulated total.
func (c *Context) DamageFromRFM() (float64, error) {
	if err := c.requireAcc(); err != nil {
		return 0, err
	}
	d, err := c.acc.DamageFromRFM()
	if err != nil {
		return 0, c.fail(InvArg, err)
	}
	return d, nil
}

// DamageFromRP recomputes total damage from the range-pair histogram
// alone (damage_from_rp). method selects which Wöhler interpretation is
// applied to each range-pair bucket; RPConsequent runs the Miner-
// consequent impaired curve Count has been depressing, if configured.
func (c *Context) DamageFromRP(method RangePairDamageMethod) (float64, error) {
	if err := c.requireAcc(); err != nil {
		return 0, err
	}
	if c.acc.RP == nil {
		return 0, c.fail(InvArg, ErrHistogramNotEnabled)
	}
	if c.curve == nil {
		return 0, c.fail(InvArg, ErrNoWohlerCurve)
	}
	curve := c.curve
	if method == RPConsequent {
		curve = c.acc.EffectiveCurve()
	}
	d, err := counter.DamageFromRP(c.acc.RP, c.params, curve, method)
	if err != nil {
		return 0, c.fail(InvArg, err)
	}
	return d, nil
}
