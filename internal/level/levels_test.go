package level_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trottparts/garage-api/internal/level"
)

func TestResolve_BoundaryExactness(t *testing.T) {
	tests := []struct {
		points   int
		wantName string
	}{
		{points: 0, wantName: "Apprenti"},
		{points: 499, wantName: "Apprenti"},
		{points: 500, wantName: "Apprenti"},
		{points: 501, wantName: "Mécano"},
		{points: 1500, wantName: "Mécano"},
		{points: 1501, wantName: "Expert"},
		{points: 3000, wantName: "Expert"},
		{points: 3001, wantName: "Légende"},
	}

	for _, tt := range tests {
		got := level.Resolve(tt.points)
		assert.Equal(t, tt.wantName, got.Name, "points=%d", tt.points)
	}
}

func TestResolve_Monotonic(t *testing.T) {
	prev := level.Resolve(0)
	for p := 1; p <= 5000; p++ {
		cur := level.Resolve(p)
		require.GreaterOrEqual(t, cur.Ordinal, prev.Ordinal, "points=%d", p)
		prev = cur
	}
}

func TestResolve_ExtremeInputs(t *testing.T) {
	assert.Equal(t, "Apprenti", level.Resolve(-100).Name)
	assert.Equal(t, "Légende", level.Resolve(math.MaxInt).Name)
}

func TestProgressToNext_TopLevel(t *testing.T) {
	p := level.ProgressToNext(5000)
	assert.Equal(t, 100, p.Percentage)
	assert.Nil(t, p.Next)
	assert.Equal(t, 0, p.PointsToNext)
	assert.Equal(t, "Légende", p.Current.Name)
}

func TestProgressToNext_WithinLevel(t *testing.T) {
	// 250 of the 501-point Apprenti band
	p := level.ProgressToNext(250)
	require.NotNil(t, p.Next)
	assert.Equal(t, "Apprenti", p.Current.Name)
	assert.Equal(t, "Mécano", p.Next.Name)
	assert.Equal(t, 50, p.Percentage)
	assert.Equal(t, 251, p.PointsToNext)
	assert.Equal(t, 250, p.PointsInLevel)
}

func TestProgressToNext_ClampedPercentage(t *testing.T) {
	for p := 0; p <= 4000; p += 7 {
		prog := level.ProgressToNext(p)
		assert.GreaterOrEqual(t, prog.Percentage, 0, "points=%d", p)
		assert.LessOrEqual(t, prog.Percentage, 100, "points=%d", p)
	}
}

func TestProgressToNext_Zero(t *testing.T) {
	p := level.ProgressToNext(0)
	require.NotNil(t, p.Next)
	assert.Equal(t, 0, p.Percentage)
	assert.Equal(t, 501, p.PointsToNext)
}

func TestAll_ContiguousAndOrdered(t *testing.T) {
	all := level.All()
	require.Len(t, all, 4)
	for i := 1; i < len(all); i++ {
		assert.Equal(t, all[i-1].MaxPoints+1, all[i].MinPoints, "levels must be contiguous")
		assert.Greater(t, all[i].Ordinal, all[i-1].Ordinal)
	}
	assert.Equal(t, level.Unbounded, all[len(all)-1].MaxPoints)
}
