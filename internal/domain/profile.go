package domain

import "time"

// Profile represents a storefront user profile with their running points total.
// PerformancePoints is owned by the server and only ever mutated through the
// points service's atomic increment - clients never write totals back.
type Profile struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	PerformancePoints int       `json:"performance_points"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// PointsUpdate is the result of a successful points mutation.
// PreviousPoints and NewTotal let the caller detect a level transition
// without re-querying the profile.
type PointsUpdate struct {
	UserID         string `json:"user_id"`
	PreviousPoints int    `json:"previous_points"`
	PointsAdded    int    `json:"points_added"`
	NewTotal       int    `json:"new_total"`
	Action         string `json:"action"`
}
