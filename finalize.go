package rainflow

import (
	"github.com/katalvlaran/rainflow/cyclefind"
	"github.com/katalvlaran/rainflow/finalize"
)

// Finalize applies the chosen residual policy to whatever remains in
// the residue once feeding has stopped, counting whatever cycles it
// resolves, then transitions the Context to StateFinished. A finished
// Context rejects further Feed calls; ClearCounts/Deinit are still
// available.
func (c *Context) Finalize(policy ResidualMethod) error {
	if err := c.checkUsable(); err != nil {
		return err
	}
	if c.state == StateFinished || c.state == StateFinalize {
		return c.fail(InvArg, ErrWrongState)
	}

	c.state = StateFinalize
	// HCM keeps its not-yet-closed points on an internal stack rather
	// than in c.residue, draining the residue every feed; fold them back
	// before a residual policy runs, or it would see an empty buffer.
	if hcm, ok := c.finder.(*cyclefind.HCMStack); ok {
		if err := c.residue.AppendAll(hcm.Flush()); err != nil {
			return c.fail(Memory, err)
		}
	}
	if err := finalize.Finalize(policy, c.residue, c.acc, c.finder); err != nil {
		return c.fail(InvArg, err)
	}
	c.state = StateFinished
	return nil
}
