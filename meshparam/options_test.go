package meshparam

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	require.Equal(t, DefaultHGlobal, p.HGlobal)
	require.Equal(t, DefaultHGlobal, p.H(0, 0))
}

func TestNewParamsAppliesOptionsInOrder(t *testing.T) {
	p := NewParams(WithHGlobal(0.5), WithHGlobal(0.25))
	require.Equal(t, 0.25, p.HGlobal)
}

func TestWithCoeffOverridesH(t *testing.T) {
	p := NewParams(WithCoeff(func(x, y float64) float64 { return x + y }))
	require.Equal(t, 3.0, p.H(1, 2))
}

func TestWithCheckCosPanicsOutOfRange(t *testing.T) {
	require.Panics(t, func() { WithCheckCos(1.5) })
}

func TestWithHGlobalPanicsNonPositive(t *testing.T) {
	require.Panics(t, func() { WithHGlobal(0) })
}

func TestStrategyValidate(t *testing.T) {
	s := NewStrategy(WithCriterion(CriterionAngle), WithConstDel(true))
	require.NoError(t, s.Validate())
	require.Equal(t, CriterionAngle, s.Criterion)
	require.True(t, s.ConstDel)

	var zero Strategy
	require.ErrorIs(t, zero.Validate(), ErrAmbiguousSelection)
}
