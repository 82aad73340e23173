package residue

import "github.com/katalvlaran/rainflow/hysteresis"

// Point is one entry of the residue or the turning-point store: a
// confirmed sample plus its back-reference into the turning-point store
// (0 means "not tracked" or "pruned away", spec §4.6).
type Point struct {
	Sample hysteresis.Sample
	TPPos  int64
	// Damage is the cumulative damage spread (C10) has attributed to
	// this turning point so far; zero until a spreading method touches
	// it.
	Damage float64
}

// Buffer is the append-only, middle-shrinking residue stack of spec §6.
// Capacity 0 means unbounded; a positive capacity matches the design's
// max(2*N,3) sizing rule, enforced by the caller that constructs it.
type Buffer struct {
	cap    int
	points []Point
}

// NewBuffer constructs an empty Buffer. capacity<=0 means unbounded.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{cap: capacity}
}

// Len returns the number of points currently held.
func (b *Buffer) Len() int { return len(b.points) }

// Push appends p to the tail.
func (b *Buffer) Push(p Point) error {
	if b.cap > 0 && len(b.points) >= b.cap {
		return ErrBufferFull
	}
	b.points = append(b.points, p)
	return nil
}

// ReplaceLast overwrites the tail entry with p (used when the hysteresis
// filter extends its tentative interim point instead of confirming it).
func (b *Buffer) ReplaceLast(p Point) error {
	if len(b.points) == 0 {
		return ErrIndexOutOfRange
	}
	b.points[len(b.points)-1] = p
	return nil
}

// At returns the point at index i.
func (b *Buffer) At(i int) (Point, error) {
	if i < 0 || i >= len(b.points) {
		return Point{}, ErrIndexOutOfRange
	}
	return b.points[i], nil
}

// Last returns the tail point, if any.
func (b *Buffer) Last() (Point, bool) {
	if len(b.points) == 0 {
		return Point{}, false
	}
	return b.points[len(b.points)-1], true
}

// Tail returns (a copy of) the last n points in stream order, or fewer
// if the buffer holds less than n.
func (b *Buffer) Tail(n int) []Point {
	if n > len(b.points) {
		n = len(b.points)
	}
	out := make([]Point, n)
	copy(out, b.points[len(b.points)-n:])
	return out
}

// All returns a read-only view of every point currently held, in order.
func (b *Buffer) All() []Point {
	return b.points
}

// RemoveInner deletes the two points at indices i and j (i<j), shifting
// everything after j down by two. Used by the four-point cycle finder
// and the Clormann–Seeger residue policy to remove the closed inner
// pair of a cycle.
func (b *Buffer) RemoveInner(i, j int) error {
	n := len(b.points)
	if i < 0 || j < 0 || i >= n || j >= n || i >= j {
		return ErrIndexOutOfRange
	}
	out := make([]Point, 0, n-2)
	out = append(out, b.points[:i]...)
	out = append(out, b.points[i+1:j]...)
	out = append(out, b.points[j+1:]...)
	b.points = out
	return nil
}

// PopFront removes and returns the head point, shifting the rest down
// by one. Used by the HCM cycle finder, which consumes the residue
// oldest-first rather than from the tail.
func (b *Buffer) PopFront() (Point, bool) {
	if len(b.points) == 0 {
		return Point{}, false
	}
	p := b.points[0]
	b.points = b.points[1:]
	return p, true
}

// PopBack removes and returns the tail point.
func (b *Buffer) PopBack() (Point, bool) {
	n := len(b.points)
	if n == 0 {
		return Point{}, false
	}
	p := b.points[n-1]
	b.points = b.points[:n-1]
	return p, true
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.points = b.points[:0]
}

// AppendAll appends a full snapshot of points to the tail, used by the
// REPEATED residue finalization policy to concatenate the residue with
// itself (spec §4.9).
func (b *Buffer) AppendAll(pts []Point) error {
	if b.cap > 0 && len(b.points)+len(pts) > b.cap {
		return ErrBufferFull
	}
	b.points = append(b.points, pts...)
	return nil
}
