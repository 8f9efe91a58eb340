// Package level defines the gamification level table and resolves running
// points totals to levels. Levels are contiguous and ordered by threshold;
// every non-negative total maps to exactly one level.
package level

import "math"

// Level is a static level definition. MaxPoints is the inclusive upper bound
// of the band; the top level has MaxPoints == Unbounded.
type Level struct {
	Ordinal   int    `json:"level"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	MinPoints int    `json:"min_points"`
	MaxPoints int    `json:"max_points"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
}

// Unbounded marks the open upper bound of the top level.
const Unbounded = math.MaxInt

var levels = []Level{
	{Ordinal: 1, Name: "Apprenti", ShortName: "APP", MinPoints: 0, MaxPoints: 500, Icon: "🔧", Color: "slate"},
	{Ordinal: 2, Name: "Mécano", ShortName: "MÉC", MinPoints: 501, MaxPoints: 1500, Icon: "⚙️", Color: "blue"},
	{Ordinal: 3, Name: "Expert", ShortName: "EXP", MinPoints: 1501, MaxPoints: 3000, Icon: "🛠️", Color: "mineral"},
	{Ordinal: 4, Name: "Légende", ShortName: "LÉG", MinPoints: 3001, MaxPoints: Unbounded, Icon: "🏆", Color: "amber"},
}

// Resolve returns the level for a points total. Levels are evaluated from
// the highest threshold downward; the first whose minimum is <= points wins.
// Negative totals resolve to the first level.
func Resolve(points int) Level {
	for i := len(levels) - 1; i >= 0; i-- {
		if points >= levels[i].MinPoints {
			return levels[i]
		}
	}
	return levels[0]
}

// Progress describes how far a points total has advanced within its level.
// Next is nil at the top level and Percentage is pinned to 100 there.
type Progress struct {
	Percentage    int    `json:"percentage"`
	PointsToNext  int    `json:"points_to_next"`
	PointsInLevel int    `json:"points_in_level"`
	Current       Level  `json:"current_level"`
	Next          *Level `json:"next_level,omitempty"`
}

// ProgressToNext computes progress toward the next level for a points total.
func ProgressToNext(points int) Progress {
	current := Resolve(points)

	var next *Level
	for i := range levels {
		if levels[i].Ordinal == current.Ordinal && i < len(levels)-1 {
			next = &levels[i+1]
			break
		}
	}

	if next == nil {
		return Progress{
			Percentage:    100,
			PointsToNext:  0,
			PointsInLevel: points - current.MinPoints,
			Current:       current,
		}
	}

	span := next.MinPoints - current.MinPoints
	inLevel := points - current.MinPoints
	pct := int(math.Round(float64(inLevel) / float64(span) * 100))
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}

	return Progress{
		Percentage:    pct,
		PointsToNext:  next.MinPoints - points,
		PointsInLevel: inLevel,
		Current:       current,
		Next:          next,
	}
}

// All returns the full ordered level table for display.
func All() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}
