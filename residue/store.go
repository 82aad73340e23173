package residue

// TurningPointStore is the optional externally visible history of every
// confirmed turning point ever seen (spec §4.6). Positions are a
// monotone 1-based counter independent of the residue's own indices, so
// a residue entry can keep referring to its turning point even after
// the residue itself has shrunk.
//
// A store is either owned (grows by append, spec's "auto" buffers) or
// borrowed (starts out in a fixed-size caller buffer, spec's "static"
// buffers). Without auto-prune, a borrowed store rejects appends once
// that buffer is full. With auto-prune on, a borrowed store also grows
// past the buffer's capacity, and every prune moves the entries into a
// newly allocated slice; the caller's buffer then no longer holds them.
type TurningPointStore struct {
	owned   bool
	buf     []Point
	nextPos int64

	autoPrune       bool
	targetSize      int
	threshold       int
	preservePos     bool
	preserveResidue bool
}

// NewOwnedStore returns an empty store that grows as points are
// appended.
func NewOwnedStore() *TurningPointStore {
	return &TurningPointStore{owned: true, nextPos: 1}
}

// NewBorrowedStore returns a store that starts out in a fixed-capacity
// buffer supplied by the caller; see TurningPointStore for when its
// entries leave that buffer.
func NewBorrowedStore(buf []Point) *TurningPointStore {
	return &TurningPointStore{owned: false, buf: buf[:0], nextPos: 1}
}

// SetAutoPrune configures (or disables, with enabled=false) automatic
// pruning: once the store's length exceeds threshold, it is trimmed
// back down to targetSize from the head. preservePos keeps the
// remaining entries' tp_pos numbers unchanged (leaving a gap);
// otherwise positions are renumbered contiguously from the drop point.
// preserveResidue keeps any dropped entry that a live residue buffer
// still references, re-admitting it instead of breaking the reference.
func (s *TurningPointStore) SetAutoPrune(enabled bool, targetSize, threshold int) error {
	if enabled {
		if targetSize <= 0 {
			return ErrBadCapacity
		}
		if threshold < targetSize {
			return ErrBadThreshold
		}
	}
	s.autoPrune = enabled
	s.targetSize = targetSize
	s.threshold = threshold
	return nil
}

// PreservePositions sets the renumbering policy used by auto-prune.
func (s *TurningPointStore) PreservePositions(preserve bool) { s.preservePos = preserve }

// PreserveResidue sets the residue-reattachment policy used by auto-prune.
func (s *TurningPointStore) PreserveResidue(preserve bool) { s.preserveResidue = preserve }

// Len returns the number of points currently held.
func (s *TurningPointStore) Len() int { return len(s.buf) }

// At returns the point at index i.
func (s *TurningPointStore) At(i int) (Point, error) {
	if i < 0 || i >= len(s.buf) {
		return Point{}, ErrIndexOutOfRange
	}
	return s.buf[i], nil
}

// All returns a read-only view of every point currently held, in order.
func (s *TurningPointStore) All() []Point {
	return s.buf
}

// SetDamage overwrites the cumulative damage recorded against the point
// at index i, used by the damage-spreading methods (C10).
func (s *TurningPointStore) SetDamage(i int, d float64) error {
	if i < 0 || i >= len(s.buf) {
		return ErrIndexOutOfRange
	}
	s.buf[i].Damage = d
	return nil
}

// AppendPoint records a confirmed point, assigning it the next tp_pos,
// and runs auto-prune (against residue, which may be nil) if configured.
func (s *TurningPointStore) AppendPoint(p Point, residue *Buffer) (int64, error) {
	if !s.owned && s.buf == nil {
		return 0, ErrStoreNotInitialized
	}
	if !s.owned && len(s.buf) == cap(s.buf) && !s.autoPrune {
		return 0, ErrBufferFull
	}
	p.TPPos = s.nextPos
	s.buf = append(s.buf, p)
	s.nextPos++
	if err := s.maybePrune(residue); err != nil {
		return 0, err
	}
	return p.TPPos, nil
}

// Clear empties the store and resets its position counter.
func (s *TurningPointStore) Clear() {
	s.buf = s.buf[:0]
	s.nextPos = 1
}

func (s *TurningPointStore) maybePrune(residue *Buffer) error {
	if !s.autoPrune || len(s.buf) <= s.threshold {
		return nil
	}
	drop := len(s.buf) - s.targetSize
	if drop <= 0 {
		return nil
	}
	dropped := s.buf[:drop]

	if s.preserveResidue && residue != nil {
		referenced := make(map[int64]bool, drop)
		for _, rp := range residue.All() {
			if rp.TPPos != 0 {
				referenced[rp.TPPos] = true
			}
		}
		kept := make([]Point, 0, drop)
		for _, p := range dropped {
			if referenced[p.TPPos] {
				kept = append(kept, p)
			}
		}
		s.buf = append(kept, s.buf[drop:]...)
	} else {
		if residue != nil {
			droppedSet := make(map[int64]bool, drop)
			for _, p := range dropped {
				droppedSet[p.TPPos] = true
			}
			pts := residue.points
			for i := range pts {
				if droppedSet[pts[i].TPPos] {
					pts[i].TPPos = 0
				}
			}
		}
		s.buf = append([]Point(nil), s.buf[drop:]...)
	}

	if !s.preservePos {
		// Renumber contiguously from 1, closing the gap left by the drop,
		// and carry every remapped position over to the live residue.
		remap := make(map[int64]int64, len(s.buf))
		for i := range s.buf {
			old := s.buf[i].TPPos
			remap[old] = int64(i + 1)
			s.buf[i].TPPos = int64(i + 1)
		}
		if residue != nil {
			pts := residue.points
			for i := range pts {
				if np, ok := remap[pts[i].TPPos]; ok {
					pts[i].TPPos = np
				}
			}
		}
		s.nextPos = int64(len(s.buf) + 1)
	}
	return nil
}
