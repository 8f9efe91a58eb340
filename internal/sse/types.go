package sse

// XPToastPayload is the payload for routine points notifications.
type XPToastPayload struct {
	UserID     string `json:"user_id"`
	Points     int    `json:"points"`
	Action     string `json:"action"`
	NewTotal   int    `json:"new_total"`
	DurationMS int    `json:"duration_ms"`
}

// LevelUpToastPayload is the payload for level-up notifications. Celebrate
// tells the client to play the full celebration treatment.
type LevelUpToastPayload struct {
	UserID       string `json:"user_id"`
	Points       int    `json:"points"`
	Action       string `json:"action"`
	NewTotal     int    `json:"new_total"`
	OldLevel     int    `json:"old_level"`
	NewLevel     int    `json:"new_level"`
	NewLevelName string `json:"new_level_name"`
	Icon         string `json:"icon,omitempty"`
	Color        string `json:"color,omitempty"`
	DurationMS   int    `json:"duration_ms"`
	Celebrate    bool   `json:"celebrate"`
}
