package rainflow

import "github.com/katalvlaran/rainflow/classparam"

// ClassParamSet reconfigures the class model (class_param_set). Since
// every histogram, the damage lookup table and the residue sizing rule
// all depend on the class count, this discards the current accumulator
// state and lookup table; callers that need to preserve counts across a
// resize should read them out first.
func (c *Context) ClassParamSet(count int, width, offset float64) error {
	if err := c.checkUsable(); err != nil {
		return err
	}
	params, err := classparam.New(count, width, offset)
	if err != nil {
		return c.fail(InvArg, err)
	}
	c.params = params
	if c.table != nil {
		c.table.Invalidate()
	}
	return c.rebuildAccumulator()
}
