package hmatels_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/goci/internal/det"
	"example.com/goci/internal/hmatels"
)

// Three active orbitals, orbitals 4 to 6 outside the CAS.
func TestMixedSpace(t *testing.T) {
	ints := randomIntegrals(6, 17)
	e := hmatels.New(ints, 2, 2)

	d1 := det.New(det.NewOccString(0b001, 4), det.NewOccString(0b011)) // alpha {1,4} beta {1,2}
	d2 := det.New(det.NewOccString(0b001, 5), det.NewOccString(0b011)) // alpha {1,5}
	d3 := det.New(det.NewOccString(0b010, 4), det.NewOccString(0b011)) // alpha {2,4}
	d4 := det.New(det.NewOccString(0b011), det.NewOccString(0b011))    // alpha {1,2}, CAS
	d5 := det.New(det.NewOccString(0b001, 5), det.NewOccString(0b101)) // alpha {1,5} beta {1,3}

	t.Run("diagonal", func(t *testing.T) {
		res := e.Eval(d1, d1)
		require.NoError(t, res.Err)
		require.Equal(t, hmatels.SpaceMixed, res.Excitation.Space)
		require.InDelta(t, bruteDiagonal(ints, []int{1, 4}, []int{1, 2}), res.Value, 1e-10)
	})

	t.Run("virtual internal single", func(t *testing.T) {
		res := e.Eval(d1, d2)
		require.NoError(t, res.Err)
		x := res.Excitation
		require.Equal(t, hmatels.Single, x.Kind)
		require.Equal(t, hmatels.RouteVirtualInternal, x.Route)
		require.Equal(t, hmatels.Alpha, x.Spin)
		require.Equal(t, 4, x.Init[0])
		require.Equal(t, 5, x.Final[0])

		want := hmatels.Sign(4, 5) * (ints.H(4, 5) +
			ints.ERI(1, 1, 4, 5) - ints.ERI(1, 4, 1, 5) +
			ints.ERI(1, 1, 4, 5) + ints.ERI(2, 2, 4, 5))
		require.InDelta(t, want, res.Value, 1e-12)
		require.InDelta(t, res.Value, e.Value(d2, d1), 1e-12)
	})

	t.Run("cas internal single", func(t *testing.T) {
		res := e.Eval(d1, d3)
		require.NoError(t, res.Err)
		x := res.Excitation
		require.Equal(t, hmatels.RouteCASInternal, x.Route)
		require.Equal(t, 1, x.Init[0])
		require.Equal(t, 2, x.Final[0])

		want := hmatels.Sign(1, 2) * (ints.H(1, 2) +
			ints.ERI(4, 4, 1, 2) - ints.ERI(4, 1, 4, 2) +
			ints.ERI(1, 1, 1, 2) + ints.ERI(2, 2, 1, 2))
		require.InDelta(t, want, res.Value, 1e-12)
		require.InDelta(t, res.Value, e.Value(d3, d1), 1e-12)
	})

	t.Run("cross space is unsupported", func(t *testing.T) {
		res := e.Eval(d1, d4)
		require.ErrorIs(t, res.Err, hmatels.ErrUnsupported)
		require.False(t, res.Supported())
		require.Equal(t, hmatels.RouteCrossSpace, res.Excitation.Route)
		require.Equal(t, 0.0, res.Value)
		require.Equal(t, 0.0, e.Value(d4, d1))
	})

	t.Run("cas and virtual exchange crosses the space", func(t *testing.T) {
		// alpha 1 -> 2 inside, 4 -> 5 outside; paired as 1 -> 5 and 4 -> 2
		d6 := det.New(det.NewOccString(0b010, 5), det.NewOccString(0b011))
		res := e.Eval(d1, d6)
		require.ErrorIs(t, res.Err, hmatels.ErrUnsupported)
		require.Equal(t, hmatels.DoubleSameSpin, res.Excitation.Kind)
		require.Equal(t, hmatels.RouteCrossSpace, res.Excitation.Route)
	})

	t.Run("double is unsupported", func(t *testing.T) {
		res := e.Eval(d1, d5)
		require.ErrorIs(t, res.Err, hmatels.ErrUnsupported)
		require.Equal(t, hmatels.DoubleMixedSpin, res.Excitation.Kind)
		require.Equal(t, 0.0, res.Value)
	})

	t.Run("far pairs are zero without error", func(t *testing.T) {
		far := det.New(det.NewOccString(0b110), det.NewOccString(0, 5, 6))
		res := e.Eval(d1, far)
		require.NoError(t, res.Err)
		require.Equal(t, hmatels.BeyondDouble, res.Excitation.Kind)
		require.Equal(t, 0.0, res.Value)
	})
}

func TestMalformedPairIsNotEvaluated(t *testing.T) {
	ints := randomIntegrals(4, 1)
	e := hmatels.New(ints, 2, 2)
	// alpha loses an electron, beta gains one
	i := cas(0b0011, 0b0011)
	j := cas(0b0001, 0b0111)
	res := e.Eval(i, j)
	require.ErrorIs(t, res.Err, hmatels.ErrMalformed)
	require.Equal(t, 0.0, res.Value)
}

func TestSharedVirtualSingle(t *testing.T) {
	ints := randomIntegrals(7, 5)
	e := hmatels.New(ints, 2, 2)
	// alpha {4,6} -> {6,7}: orbital 6 stays, 4 moves to 7
	i := det.New(det.NewOccString(0, 4, 6), det.NewOccString(0b011))
	j := det.New(det.NewOccString(0, 6, 7), det.NewOccString(0b011))

	res := e.Eval(i, j)
	require.NoError(t, res.Err)
	x := res.Excitation
	require.Equal(t, hmatels.Single, x.Kind)
	require.Equal(t, hmatels.RouteVirtualInternal, x.Route)
	require.Equal(t, 4, x.Init[0])
	require.Equal(t, 7, x.Final[0])

	want := hmatels.Sign(4, 7) * (ints.H(4, 7) +
		ints.ERI(6, 6, 4, 7) - ints.ERI(6, 4, 6, 7) +
		ints.ERI(1, 1, 4, 7) + ints.ERI(2, 2, 4, 7))
	require.InDelta(t, want, res.Value, 1e-12)
}
