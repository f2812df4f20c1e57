package frontmodel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildSquare(t *testing.T) (*Mesh, FLID) {
	t.Helper()
	m := NewMesh()
	ifl := m.CreateIFL()
	fl, err := m.CreateFL(ifl, 1)
	require.NoError(t, err)

	n0 := m.CreateNode(0, 0)
	n1 := m.CreateNode(1, 0)
	n2 := m.CreateNode(1, 1)
	n3 := m.CreateNode(0, 1)

	_, err = m.CreateFC(fl, NoFC, n0, n1, n2, n3)
	require.NoError(t, err)
	return m, fl
}

func TestCreateFCCyclicInvariant(t *testing.T) {
	m, fl := buildSquare(t)
	require.Equal(t, 4, m.FL(fl).Count)

	err := m.ForEach(fl, func(fc FCID) bool {
		succ := m.Succ(fc)
		pred := m.Pred(fc)
		require.Equal(t, fc, m.Pred(succ))
		require.Equal(t, fc, m.Succ(pred))
		return true
	})
	require.NoError(t, err)
}

func TestDetermineOrientationSquareIsPositive(t *testing.T) {
	m, fl := buildSquare(t)
	require.NoError(t, m.DetermineOrientation(fl))
	require.Equal(t, MathPositive, m.FL(fl).Orientation)
}

func TestDetermineOrientationReversedIsNegative(t *testing.T) {
	m := NewMesh()
	ifl := m.CreateIFL()
	fl, err := m.CreateFL(ifl, 1)
	require.NoError(t, err)

	n0 := m.CreateNode(0, 0)
	n1 := m.CreateNode(0, 1)
	n2 := m.CreateNode(1, 1)
	n3 := m.CreateNode(1, 0)
	_, err = m.CreateFC(fl, NoFC, n0, n1, n2, n3)
	require.NoError(t, err)

	require.NoError(t, m.DetermineOrientation(fl))
	require.Equal(t, MathNegative, m.FL(fl).Orientation)
}

func TestDetermineOrientationTooShort(t *testing.T) {
	m := NewMesh()
	ifl := m.CreateIFL()
	fl, err := m.CreateFL(ifl, 1)
	require.NoError(t, err)
	n0 := m.CreateNode(0, 0)
	n1 := m.CreateNode(1, 0)
	_, err = m.CreateFC(fl, NoFC, n0, n1)
	require.NoError(t, err)

	err = m.DetermineOrientation(fl)
	require.ErrorIs(t, err, ErrShortFrontList)
}

func TestDisposeFCUnlinksAndShrinks(t *testing.T) {
	m, fl := buildSquare(t)
	var victim FCID
	_ = m.ForEach(fl, func(fc FCID) bool {
		victim = fc
		return false
	})
	pred, succ := m.Pred(victim), m.Succ(victim)

	require.NoError(t, m.DisposeFC(fl, victim))
	require.Equal(t, 3, m.FL(fl).Count)
	require.Equal(t, succ, m.Succ(pred))
	require.Equal(t, pred, m.Pred(succ))
}

func TestDisposeFCDownToZeroDisposesFL(t *testing.T) {
	m := NewMesh()
	ifl := m.CreateIFL()
	fl, err := m.CreateFL(ifl, 1)
	require.NoError(t, err)
	n0 := m.CreateNode(0, 0)
	ids, err := m.CreateFC(fl, NoFC, n0)
	require.NoError(t, err)

	require.NoError(t, m.DisposeFC(fl, ids[0]))
	require.ErrorIs(t, m.DetermineOrientation(fl), ErrUnknownFL)
}

func TestCreateFCAfterNotInFLRejected(t *testing.T) {
	m, fl := buildSquare(t)
	other := m.CreateIFL()
	otherFL, err := m.CreateFL(other, 2)
	require.NoError(t, err)
	n := m.CreateNode(5, 5)

	var alien FCID
	_ = m.ForEach(fl, func(fc FCID) bool { alien = fc; return false })

	_, err = m.CreateFC(otherFL, alien, n)
	require.ErrorIs(t, err, ErrAfterNotInFL)
}
