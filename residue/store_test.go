package residue_test

import (
	"testing"

	"github.com/katalvlaran/rainflow/residue"
	"github.com/stretchr/testify/require"
)

func fillFive(t *testing.T, s *residue.TurningPointStore, liveResidue *residue.Buffer) {
	t.Helper()
	for i := 0; i < 5; i++ {
		_, err := s.AppendPoint(pt(float64(i), int64(i+1)), liveResidue)
		require.NoError(t, err)
	}
}

func TestStoreAutoPrunePreservePositionsClearsResidueRef(t *testing.T) {
	s := residue.NewOwnedStore()
	require.NoError(t, s.SetAutoPrune(true, 2, 4))
	s.PreservePositions(true)
	s.PreserveResidue(false)

	live := residue.NewBuffer(0)
	require.NoError(t, live.Push(residue.Point{TPPos: 2}))

	fillFive(t, s, live)

	require.Equal(t, 2, s.Len())
	first, err := s.At(0)
	require.NoError(t, err)
	require.Equal(t, int64(4), first.TPPos)

	ref, err := live.At(0)
	require.NoError(t, err)
	require.Equal(t, int64(0), ref.TPPos, "reference into a dropped point must be cleared")
}

func TestStoreAutoPruneRenumbersAndFollowsSurvivingRef(t *testing.T) {
	s := residue.NewOwnedStore()
	require.NoError(t, s.SetAutoPrune(true, 2, 4))
	s.PreservePositions(false)
	s.PreserveResidue(false)

	live := residue.NewBuffer(0)
	require.NoError(t, live.Push(residue.Point{TPPos: 4}))

	fillFive(t, s, live)

	require.Equal(t, 2, s.Len())
	first, _ := s.At(0)
	second, _ := s.At(1)
	require.Equal(t, int64(1), first.TPPos)
	require.Equal(t, int64(2), second.TPPos)

	ref, _ := live.At(0)
	require.Equal(t, int64(1), ref.TPPos, "surviving reference must follow the renumbering")
}

func TestStoreAutoPrunePreserveResidueReadmitsReferencedPoint(t *testing.T) {
	s := residue.NewOwnedStore()
	require.NoError(t, s.SetAutoPrune(true, 2, 4))
	s.PreservePositions(false)
	s.PreserveResidue(true)

	live := residue.NewBuffer(0)
	require.NoError(t, live.Push(residue.Point{TPPos: 2}))

	fillFive(t, s, live)

	require.Equal(t, 3, s.Len(), "the referenced point must be readmitted alongside the 2 targetSize survivors")
	ref, _ := live.At(0)
	require.Equal(t, int64(1), ref.TPPos, "readmitted point keeps a live reference after renumbering")
}

func TestBorrowedStoreRejectsOverflowWithoutAutoPrune(t *testing.T) {
	s := residue.NewBorrowedStore(make([]residue.Point, 0, 2))
	_, err := s.AppendPoint(pt(0, 1), nil)
	require.NoError(t, err)
	_, err = s.AppendPoint(pt(1, 2), nil)
	require.NoError(t, err)
	_, err = s.AppendPoint(pt(2, 3), nil)
	require.ErrorIs(t, err, residue.ErrBufferFull)
}

func TestStoreSetAutoPruneValidatesThreshold(t *testing.T) {
	s := residue.NewOwnedStore()
	require.ErrorIs(t, s.SetAutoPrune(true, 0, 4), residue.ErrBadCapacity)
	require.ErrorIs(t, s.SetAutoPrune(true, 4, 2), residue.ErrBadThreshold)
}

func TestStoreClearResetsPositions(t *testing.T) {
	s := residue.NewOwnedStore()
	pos1, err := s.AppendPoint(pt(0, 1), nil)
	require.NoError(t, err)
	require.Equal(t, int64(1), pos1)
	s.Clear()
	require.Equal(t, 0, s.Len())
	pos2, err := s.AppendPoint(pt(1, 2), nil)
	require.NoError(t, err)
	require.Equal(t, int64(1), pos2)
}
