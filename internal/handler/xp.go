package handler

import (
	"net/http"
	"strconv"

	"github.com/trottparts/garage-api/internal/xp"
)

// XPPreviewResponse is the displayed XP range for a prospective installation
type XPPreviewResponse struct {
	Difficulty int    `json:"difficulty"`
	Category   string `json:"category"`
	MinXP      int    `json:"min_xp"`
	MaxXP      int    `json:"max_xp"`
}

// HandleXPPreview returns the XP range a part installation would earn,
// before first-in-category status is known.
func HandleXPPreview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		difficulty := xp.DefaultDifficulty
		if raw := r.URL.Query().Get("difficulty"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, "difficulty must be a number")
				return
			}
			difficulty = parsed
		}

		category := r.URL.Query().Get("category")
		if category == "" {
			category = xp.DefaultCategory
		}

		minXP, maxXP := xp.PreviewRange(difficulty, category)
		respondJSON(w, http.StatusOK, XPPreviewResponse{
			Difficulty: difficulty,
			Category:   category,
			MinXP:      minXP,
			MaxXP:      maxXP,
		})
	}
}
