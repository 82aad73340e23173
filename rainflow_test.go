package rainflow_test

import (
	"testing"

	"github.com/katalvlaran/rainflow"
	"github.com/katalvlaran/rainflow/haigh"
	"github.com/katalvlaran/rainflow/wohler"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) *rainflow.Context {
	t.Helper()
	ctx, err := rainflow.New(10, 1, 0, 0,
		rainflow.FlagRFM|rainflow.FlagDamage|rainflow.FlagRP|rainflow.FlagLCUp|rainflow.FlagLCDown)
	require.NoError(t, err)
	require.NoError(t, ctx.WlInitElementary(10, 1e6, -5))
	return ctx
}

func TestFeedClosesNestedFourPointCycle(t *testing.T) {
	ctx := newTestContext(t)

	// Zigzag 0 (valley), 5 (peak), 2 (valley), 8 (peak): the inner pair
	// (5,2) nests inside the outer pair (0,8) and closes immediately.
	require.NoError(t, ctx.Feed([]float64{0, 5, 2, 8}))

	stats := ctx.Stats()
	require.Equal(t, int64(1), stats.ClosedCount)
	require.Equal(t, rainflow.StateBusyInterim, ctx.State())

	count, err := ctx.RfmGet(5, 2)
	require.NoError(t, err)
	require.Equal(t, uint64(2), count)

	curve, err := ctx.WlParamGet()
	require.NoError(t, err)
	expected, err := curve.Damage(1.5) // |mean(2)-mean(5)|/2 = |2.5-5.5|/2
	require.NoError(t, err)

	damage, err := ctx.RfmDamage()
	require.NoError(t, err)
	require.InDelta(t, expected, damage, 1e-12)
}

func TestFinalizeFullCyclesCountsResidueAndTransitionsState(t *testing.T) {
	ctx := newTestContext(t)
	require.NoError(t, ctx.Feed([]float64{0, 5, 2, 8}))

	curve, err := ctx.WlParamGet()
	require.NoError(t, err)
	dClosed, err := curve.Damage(1.5)
	require.NoError(t, err)
	dResidue, err := curve.Damage(4) // |mean(8)-mean(0)|/2 = |8.5-0.5|/2
	require.NoError(t, err)

	require.NoError(t, ctx.Finalize(rainflow.ResidualFullCycles))
	require.Equal(t, rainflow.StateFinished, ctx.State())

	count, err := ctx.RfmGet(0, 8)
	require.NoError(t, err)
	require.Equal(t, uint64(2), count)

	damage, err := ctx.RfmDamage()
	require.NoError(t, err)
	require.InDelta(t, dClosed+dResidue, damage, 1e-12)

	require.ErrorIs(t, ctx.Feed([]float64{1}), rainflow.ErrWrongState)
}

func TestDamageFromRFMAndRPAgreeWithIncremental(t *testing.T) {
	ctx := newTestContext(t)
	require.NoError(t, ctx.Feed([]float64{0, 5, 2, 8}))
	require.NoError(t, ctx.RpFromRFM())

	incremental, err := ctx.RfmDamage()
	require.NoError(t, err)

	fromRFM, err := ctx.DamageFromRFM()
	require.NoError(t, err)
	require.InDelta(t, incremental, fromRFM, 1e-12)

	fromRP, err := ctx.DamageFromRP(rainflow.RPDefault)
	require.NoError(t, err)
	require.InDelta(t, incremental, fromRP, 1e-12)
}

func TestLevelCrossingFromRFM(t *testing.T) {
	ctx := newTestContext(t)
	require.NoError(t, ctx.Feed([]float64{0, 5, 2, 8}))
	require.NoError(t, ctx.LcFromRFM())

	// The only closed cycle recorded in the matrix is (from=5,to=2), a
	// downward crossing through the interior boundaries 3 and 4.
	up, down, err := ctx.LcGet(3)
	require.NoError(t, err)
	require.Equal(t, uint64(0), up)
	require.Equal(t, uint64(2), down)
}

func TestClassParamSetRebuildsAccumulator(t *testing.T) {
	ctx := newTestContext(t)
	require.NoError(t, ctx.Feed([]float64{0, 5, 2, 8}))

	require.NoError(t, ctx.ClassParamSet(20, 1, 0))
	require.Equal(t, 20, ctx.ClassParamGet().Count)

	// A fresh accumulator means the matrix was reallocated empty.
	sum, err := ctx.RfmSum()
	require.NoError(t, err)
	require.Equal(t, uint64(0), sum)
}

func TestTurningPointStoreAndSpreadWiring(t *testing.T) {
	// A failed call latches its context into StateError, so each missing-
	// store check runs on a context of its own.
	bare := newTestContext(t)
	_, err := bare.TpLen()
	require.ErrorIs(t, err, rainflow.ErrNoTurningPointStore)

	require.Error(t, newTestContext(t).SetSpread(rainflow.SpreadRampDamage23, -5))

	ctx := newTestContext(t)
	require.NoError(t, ctx.TpInit(nil))
	// RampDamage24 spans the closed cycle's From..Next window (positions
	// 2..4), so only the interior turning point at position 3 (value 2)
	// receives a spread share; RampDamage23's From..To window (2..3) is
	// adjacent and spreads to nothing.
	require.NoError(t, ctx.SetSpread(rainflow.SpreadRampDamage24, -5))

	require.NoError(t, ctx.Feed([]float64{0, 5, 2, 8}))
	n, err := ctx.TpLen()
	require.NoError(t, err)
	require.Equal(t, 4, n)

	p, err := ctx.TpAt(2)
	require.NoError(t, err)
	require.Equal(t, 2.0, p.Sample.Value)
	require.Greater(t, p.Damage, 0.0)
}

func TestDamageHistoryWiring(t *testing.T) {
	ctx := newTestContext(t)
	require.NoError(t, ctx.TpInit(nil))
	require.NoError(t, ctx.SetSpread(rainflow.SpreadRampDamage24, -5))
	require.NoError(t, ctx.DhInit(10, nil))

	require.NoError(t, ctx.Feed([]float64{0, 5, 2, 8}))

	d, err := ctx.DhAt(3) // position of the interior turning point valued 2
	require.NoError(t, err)
	require.Greater(t, d, 0.0)

	require.NoError(t, ctx.DhClear())
	d, err = ctx.DhAt(3)
	require.NoError(t, err)
	require.Equal(t, 0.0, d)
}

func TestAmplitudeTransformConfiguredBeforeUse(t *testing.T) {
	// The failed call latches its context into StateError, so the
	// configured transform is exercised on a fresh context.
	bare := newTestContext(t)
	_, err := bare.AtTransform(2, 1)
	require.ErrorIs(t, err, rainflow.ErrNoTransform)

	ctx := newTestContext(t)
	require.NoError(t, ctx.AtInit(nil, nil, 0.3, haigh.PinnedR, 0, 0, false))
	out, err := ctx.AtTransform(2, 0)
	require.NoError(t, err)

	refCurve, err := haigh.NewFKMDefault(0.3)
	require.NoError(t, err)
	transformer := haigh.NewTransformer(refCurve, haigh.PinnedR, 0, 0, false)
	expected, err := transformer.Transform(2, 0)
	require.NoError(t, err)
	require.InDelta(t, expected, out, 1e-9)
}

func TestWlInitVariants(t *testing.T) {
	ctx, err := rainflow.New(10, 1, 0, 0, rainflow.FlagRFM|rainflow.FlagDamage)
	require.NoError(t, err)

	require.NoError(t, ctx.WlInitOriginal(10, 1e6, -5))
	curve, err := ctx.WlParamGet()
	require.NoError(t, err)
	require.Equal(t, wohler.Original, curve.Shape())

	require.NoError(t, ctx.WlInitModified(10, 1e6, -5, -7, 5, 1e9))
	curve, err = ctx.WlParamGet()
	require.NoError(t, err)
	require.Equal(t, wohler.Modified, curve.Shape())

	d, err := ctx.WlCalcDamage(3)
	require.NoError(t, err)
	require.Equal(t, 0.0, d) // 3 < Sd(5): below endurance

	n, err := ctx.WlCalcN(20)
	require.NoError(t, err)
	require.Greater(t, n, 0.0)

	sa, err := ctx.WlCalcSa(1e6)
	require.NoError(t, err)
	require.InDelta(t, 10, sa, 1e-6)
}

func TestLifecycleDeinitAndClearCounts(t *testing.T) {
	ctx := newTestContext(t)
	require.NoError(t, ctx.Feed([]float64{0, 5, 2, 8}))
	require.NoError(t, ctx.ClearCounts())

	sum, err := ctx.RfmSum()
	require.NoError(t, err)
	require.Equal(t, uint64(0), sum)
	require.Equal(t, int64(0), ctx.Stats().ClosedCount)

	ctx.Deinit()
	require.Equal(t, rainflow.StateInit0, ctx.State())
	require.Error(t, ctx.Feed([]float64{1}))
}

func TestFinalizeFlushesHCMResidueBeforePolicy(t *testing.T) {
	ctx, err := rainflow.New(10, 1, 0, 0,
		rainflow.FlagRFM|rainflow.FlagDamage, rainflow.WithMethod(rainflow.MethodHCM))
	require.NoError(t, err)
	require.NoError(t, ctx.WlInitElementary(10, 1e6, -5))

	// Same nested zigzag as the four-point test: HCM's Drain folds every
	// confirmed point into its own stack each call, leaving c.residue
	// empty mid-stream, so the still-unclosed outer pair (0,8) only
	// reaches the residual policy if Finalize flushes the stack first.
	require.NoError(t, ctx.Feed([]float64{0, 5, 2, 8}))

	curve, err := ctx.WlParamGet()
	require.NoError(t, err)
	dClosed, err := curve.Damage(1.5)
	require.NoError(t, err)
	dResidue, err := curve.Damage(4)
	require.NoError(t, err)

	require.NoError(t, ctx.Finalize(rainflow.ResidualFullCycles))

	count, err := ctx.RfmGet(0, 8)
	require.NoError(t, err)
	require.Equal(t, uint64(2), count)

	damage, err := ctx.RfmDamage()
	require.NoError(t, err)
	require.InDelta(t, dClosed+dResidue, damage, 1e-12)
}

func TestSpreadUnsupportedMethodSurfacesUnsupportedKind(t *testing.T) {
	ctx := newTestContext(t)
	require.NoError(t, ctx.TpInit(nil))
	require.NoError(t, ctx.SetSpread(rainflow.SpreadTransient23, -5))

	err := ctx.Feed([]float64{0, 5, 2, 8})
	require.Error(t, err)

	rfErr := ctx.LastError()
	require.NotNil(t, rfErr)
	require.Equal(t, rainflow.Unsupported, rfErr.Kind)
	require.Equal(t, rainflow.StateError, ctx.State())
}

func TestDamageFromRPRangePairMethodSelectsInterpretation(t *testing.T) {
	ctx, err := rainflow.New(10, 1, 0, 0, rainflow.FlagRFM|rainflow.FlagDamage|rainflow.FlagRP)
	require.NoError(t, err)
	require.NoError(t, ctx.WlInitOriginal(10, 1e6, -5)) // endurance at Sd=10

	// Range ~1 (amplitude 0.5) sits well below the endurance limit, so
	// the curve's own Original shape reports zero damage for it; the
	// elementary interpretation ignores that cutoff entirely.
	require.NoError(t, ctx.Feed([]float64{0, 1, 0, 1}))
	require.NoError(t, ctx.RpFromRFM())

	def, err := ctx.DamageFromRP(rainflow.RPDefault)
	require.NoError(t, err)
	require.Equal(t, 0.0, def)

	elem, err := ctx.DamageFromRP(rainflow.RPElementary)
	require.NoError(t, err)
	require.Greater(t, elem, 0.0)
}

func TestNewRejectsInvalidClassParams(t *testing.T) {
	_, err := rainflow.New(-1, 1, 0, 0, 0)
	require.Error(t, err)

	_, err = rainflow.New(10, 0, 0, 0, 0)
	require.Error(t, err)

	_, err = rainflow.New(10, 1, 0, -1, 0)
	require.Error(t, err)
}
