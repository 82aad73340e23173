package spread

import (
	"math"

	"github.com/katalvlaran/rainflow/cyclefind"
	"github.com/katalvlaran/rainflow/residue"
)

// Method selects how a closed cycle's damage is attributed to turning
// points (spec §4.10).
type Method int

const (
	None Method = iota
	Half23
	FullP2
	FullP3
	RampAmplitude23
	RampAmplitude24
	RampDamage23
	RampDamage24
	Transient23
	Transient23c
)

// Spread attributes damage to the turning points straddling cyc,
// according to method. k is the Wöhler slope used by the ramp methods
// (only its magnitude matters); store and history are only touched by
// the methods that need them (nil is accepted otherwise). streamLen is
// the current absolute stream length, used to resolve wrap-around
// windows introduced by the REPEATED finalizer.
func Spread(method Method, cyc cyclefind.Cycle, damage, k float64, store *residue.TurningPointStore, history []float64, streamLen int64) error {
	switch method {
	case None:
		return nil
	case Half23:
		if store == nil {
			return ErrNilStore
		}
		half := damage / 2
		if err := addDamage(store, history, cyc.From, half); err != nil {
			return err
		}
		return addDamage(store, history, cyc.To, half)
	case FullP2:
		if store == nil {
			return ErrNilStore
		}
		return addDamage(store, history, cyc.From, damage)
	case FullP3:
		if store == nil {
			return ErrNilStore
		}
		return addDamage(store, history, cyc.To, damage)
	case RampAmplitude23:
		return ramp(cyc.From, cyc.To, damage, k, store, history, streamLen, true)
	case RampAmplitude24:
		return ramp(cyc.From, cyc.Next, damage, k, store, history, streamLen, true)
	case RampDamage23:
		return ramp(cyc.From, cyc.To, damage, k, store, history, streamLen, false)
	case RampDamage24:
		return ramp(cyc.From, cyc.Next, damage, k, store, history, streamLen, false)
	case Transient23, Transient23c:
		return ErrUnsupported
	default:
		return ErrInvalidMethod
	}
}

// addDamage locates the store entry at p's stream position and adds
// delta to both its recorded Damage and the per-sample history, used by
// the point-attribution methods (HALF_23, FULL_P2, FULL_P3). A point not
// currently held by the store (never tracked, or pruned away) is
// silently skipped, matching ramp's treatment of an empty window.
func addDamage(store *residue.TurningPointStore, history []float64, p residue.Point, delta float64) error {
	idx, ok := findByPos(store, p.Sample.Pos)
	if !ok {
		return nil
	}
	cur, err := store.At(idx)
	if err != nil {
		return err
	}
	if err := store.SetDamage(idx, cur.Damage+delta); err != nil {
		return err
	}
	if history != nil {
		pos := p.Sample.Pos - 1
		if pos >= 0 && int64(len(history)) > pos {
			history[pos] += delta
		}
	}
	return nil
}

func findByPos(store *residue.TurningPointStore, pos int64) (int, bool) {
	for i, tp := range store.All() {
		if tp.Sample.Pos == pos {
			return i, true
		}
	}
	return 0, false
}

// ramp walks every turning point store entry strictly between from and
// to (accounting for stream wrap-around), assigns it a weight w equal
// to its fractional position in the window, computes a candidate damage
// D_new = damage*w^-|k| (amplitude mode) or damage*w (damage mode), and
// — only if that exceeds the point's previously recorded damage — adds
// the difference both to the point and to the per-sample history.
func ramp(from, to residue.Point, damage, k float64, store *residue.TurningPointStore, history []float64, streamLen int64, amplitudeMode bool) error {
	if store == nil {
		return ErrNilStore
	}
	startPos, endPos := from.Sample.Pos, to.Sample.Pos
	if startPos >= endPos {
		endPos += streamLen
	}
	width := float64(endPos - startPos)
	if width <= 0 {
		return nil
	}

	absK := math.Abs(k)
	pts := store.All()
	for i, tp := range pts {
		pos := tp.Sample.Pos
		if pos < startPos {
			pos += streamLen
		}
		if pos <= startPos || pos >= endPos {
			continue
		}
		w := float64(pos-startPos) / width
		var dNew float64
		if amplitudeMode {
			dNew = damage * math.Pow(w, -absK)
		} else {
			dNew = damage * w
		}
		if dNew <= tp.Damage {
			continue
		}
		delta := dNew - tp.Damage
		if err := store.SetDamage(i, dNew); err != nil {
			return err
		}
		if history != nil {
			idx := tp.Sample.Pos - 1
			if idx >= 0 && int64(len(history)) > idx {
				history[idx] += delta
			}
		}
	}
	return nil
}
