package finalize

import (
	"math"
	"sort"

	"github.com/katalvlaran/rainflow/counter"
	"github.com/katalvlaran/rainflow/cyclefind"
	"github.com/katalvlaran/rainflow/residue"
)

// Policy selects how the residue left over after feeding stops is
// processed (spec §4.9).
type Policy int

const (
	None Policy = iota
	Ignore
	Discard
	HalfCycles
	FullCycles
	ClormannSeeger
	Repeated
	RPDIN45667
)

// Finalize applies policy to buf, counting whatever cycles it resolves
// into acc. finder is only consulted by Repeated, which replays the
// doubled residue through it.
func Finalize(policy Policy, buf *residue.Buffer, acc *counter.Accumulator, finder cyclefind.Finder) error {
	switch policy {
	case None, Ignore:
		return nil
	case Discard:
		buf.Clear()
		return nil
	case HalfCycles:
		return countAdjacentPairs(buf, acc, counter.IncHalf)
	case FullCycles:
		return countAdjacentPairs(buf, acc, counter.IncFull)
	case ClormannSeeger:
		return clormannSeeger(buf, acc)
	case Repeated:
		return repeated(buf, acc, finder)
	case RPDIN45667:
		return rpDIN45667(buf, acc)
	default:
		return ErrInvalidPolicy
	}
}

func requireAccumulator(acc *counter.Accumulator) error {
	if acc == nil {
		return ErrNilAccumulator
	}
	return nil
}

// countAdjacentPairs counts every adjacent pair in the residue once,
// at the given weight, without removing anything (spec's HALFCYCLES/
// FULLCYCLES rows only specify counting, not emptying the residue).
func countAdjacentPairs(buf *residue.Buffer, acc *counter.Accumulator, kind counter.IncKind) error {
	if err := requireAccumulator(acc); err != nil {
		return err
	}
	pts := buf.All()
	for i := 0; i+1 < len(pts); i++ {
		cyc := cyclefind.Cycle{From: pts[i], To: pts[i+1], Next: pts[i+1]}
		if err := acc.Count(cyc, kind); err != nil {
			return err
		}
	}
	return nil
}

// clormannSeeger scans the residue for 4-point windows A,B,C,D whose
// first two differences have opposite signs and whose magnitudes satisfy
// |D-C| >= |B-A| >= |C-B|, counting
// the inner pair as a full cycle and removing it, per spec's residue
// variant of the Clormann–Seeger test.
func clormannSeeger(buf *residue.Buffer, acc *counter.Accumulator) error {
	if err := requireAccumulator(acc); err != nil {
		return err
	}
	i := 0
	for i+3 < buf.Len() {
		a, _ := buf.At(i)
		b, _ := buf.At(i + 1)
		c, _ := buf.At(i + 2)
		d, _ := buf.At(i + 3)

		db := b.Sample.Value - a.Sample.Value
		dc := c.Sample.Value - b.Sample.Value
		dd := d.Sample.Value - c.Sample.Value

		if db*dc < 0 && math.Abs(dd) >= math.Abs(db) && math.Abs(db) >= math.Abs(dc) {
			cyc := cyclefind.Cycle{From: b, To: c, Next: d}
			if err := acc.Count(cyc, counter.IncFull); err != nil {
				return err
			}
			_ = buf.RemoveInner(i+1, i+2)
			continue
		}
		i++
	}
	return nil
}

// repeated concatenates the residue with itself, replays the doubled
// sequence through finder one point at a time (draining after each
// push) to close any cycles only visible across the seam, counts them,
// and discards whatever is left.
func repeated(buf *residue.Buffer, acc *counter.Accumulator, finder cyclefind.Finder) error {
	if err := requireAccumulator(acc); err != nil {
		return err
	}
	if finder == nil {
		return ErrNilFinder
	}
	original := append([]residue.Point(nil), buf.All()...)
	if len(original) == 0 {
		return nil
	}

	doubled := residue.NewBuffer(0)
	for _, pass := range [2][]residue.Point{original, original} {
		for _, p := range pass {
			if err := doubled.Push(p); err != nil {
				return err
			}
			for _, cyc := range finder.Drain(doubled) {
				if err := acc.Count(cyc, counter.IncFull); err != nil {
					return err
				}
			}
		}
	}
	buf.Clear()
	return nil
}

// rpDIN45667 classifies adjacent-pair slopes into rising and falling,
// sorts each group by amplitude descending, pairs them index-for-index,
// and counts whichever half of each pair has the smaller amplitude as a
// full cycle.
func rpDIN45667(buf *residue.Buffer, acc *counter.Accumulator) error {
	if err := requireAccumulator(acc); err != nil {
		return err
	}
	pts := buf.All()

	type leg struct {
		from, to residue.Point
		amp      float64
	}
	var rising, falling []leg
	for i := 0; i+1 < len(pts); i++ {
		diff := pts[i+1].Sample.Value - pts[i].Sample.Value
		l := leg{from: pts[i], to: pts[i+1], amp: math.Abs(diff)}
		if diff >= 0 {
			rising = append(rising, l)
		} else {
			falling = append(falling, l)
		}
	}
	sort.Slice(rising, func(i, j int) bool { return rising[i].amp > rising[j].amp })
	sort.Slice(falling, func(i, j int) bool { return falling[i].amp > falling[j].amp })

	n := len(rising)
	if len(falling) < n {
		n = len(falling)
	}
	for i := 0; i < n; i++ {
		smaller := rising[i]
		if falling[i].amp < smaller.amp {
			smaller = falling[i]
		}
		cyc := cyclefind.Cycle{From: smaller.from, To: smaller.to, Next: smaller.to}
		if err := acc.Count(cyc, counter.IncFull); err != nil {
			return err
		}
	}
	return nil
}
