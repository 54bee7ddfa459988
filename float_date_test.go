package supernovas

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

func testFloatConstruction[F constraints.Float](t *testing.T, epsilon float64) {
	var zero FloatJulianDate[F]
	assert.Equal(t, F(0), zero.Value())

	f, err := NewFloat(F(45.234))
	require.NoError(t, err)
	assert.InEpsilon(t, 45.234, float64(f.Value()), epsilon)

	epoch := FloatFromTime[F](time.Unix(0, 0))
	assert.Equal(t, F(2440587.5), epoch.Value())

	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := NewFloat(F(x))
		assert.ErrorIs(t, err, ErrNonFinite, "%v", x)
	}
}

func testFloatArithmetic[F constraints.Float](t *testing.T, epsilon float64) {
	cases := []struct {
		d       time.Duration
		wantAdd float64
		wantSub float64
	}{
		{2 * time.Millisecond, 1.00000002315, 0.999999976852},
		{2 * time.Second, 1.00002314815, 0.999976851852},
		{2 * time.Minute, 1.00138888889, 0.998611111111},
		{2 * time.Hour, 1.08333333333, 0.916666666667},
	}
	for _, c := range cases {
		f, err := NewFloat(F(1))
		require.NoError(t, err)
		assert.InEpsilon(t, c.wantAdd, float64(f.Add(c.d).Value()), epsilon, "1 + %s", c.d)
		assert.InEpsilon(t, c.wantSub, float64(f.Sub(c.d).Value()), epsilon, "1 - %s", c.d)
	}
}

func TestFloatJulianDate(t *testing.T) {
	t.Run("float32", func(t *testing.T) {
		testFloatConstruction[float32](t, 1e-5)
		testFloatArithmetic[float32](t, 1e-5)
	})
	t.Run("float64", func(t *testing.T) {
		testFloatConstruction[float64](t, 1e-10)
		testFloatArithmetic[float64](t, 1e-10)
	})
}

func TestFloatFromTime(t *testing.T) {
	f := FloatFromTime[float64](time.Unix(1615273885, 865337375))
	assert.InDelta(t, 2459282.0+69085.865337375/86400, f.Value(), 1e-8)

	j, err := FromTime(time.Unix(1615273885, 865337375))
	require.NoError(t, err)
	assert.InDelta(t, j.Float64(), f.Value(), 1e-8)
}

func TestFloatCompare(t *testing.T) {
	a, err := NewFloat(1.5)
	require.NoError(t, err)
	b := a.Add(time.Nanosecond * 1000)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestFloatFixedConversion(t *testing.T) {
	f, err := NewFloat(2459282.5)
	require.NoError(t, err)
	j, err := f.Fixed()
	require.NoError(t, err)
	assert.Equal(t, mustNew(t, 2459282, 12*time.Hour), j)

	back := ToFloat[float64](j)
	assert.Equal(t, f, back)

	small := ToFloat[float32](mustNew(t, 1, 6*time.Hour))
	assert.Equal(t, float32(1.25), small.Value())
}

func TestFloatPrecisionLoss(t *testing.T) {
	f := ToFloat[float32](FromDays(2459282))
	j := FromDays(2459282)
	for i := 0; i < 1000; i++ {
		f = f.Add(time.Millisecond)
		var err error
		j, err = j.Add(time.Millisecond)
		require.NoError(t, err)
	}
	//float32 cannot resolve a millisecond this far from zero
	assert.Equal(t, float32(2459282), f.Value())
	assert.Equal(t, mustNew(t, 2459282, time.Second), j)
}
