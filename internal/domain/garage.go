package domain

import "time"

// GarageItem is a scooter associated with a user, either owned ("écurie")
// or favorited ("collection").
type GarageItem struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ScooterID   string    `json:"scooter_id"`
	IsOwned     bool      `json:"is_owned"`
	Nickname    string    `json:"nickname,omitempty"`
	Description string    `json:"description,omitempty"`
	OdometerKM  int       `json:"odometer_km,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ModificationEvent records one part installed on one garage item.
// XPEarned is computed once at creation and never recomputed, even if the
// reward rules change later. OrderItemID links the event to the purchase
// that produced it; at most one event may exist per order item.
type ModificationEvent struct {
	ID              string    `json:"id"`
	GarageItemID    string    `json:"garage_item_id"`
	PartID          string    `json:"part_id"`
	OrderItemID     *string   `json:"order_item_id,omitempty"`
	InstalledAt     time.Time `json:"installed_at"`
	DifficultyLevel int       `json:"difficulty_level"`
	Notes           string    `json:"notes,omitempty"`
	XPEarned        int       `json:"xp_earned"`
	CreatedAt       time.Time `json:"created_at"`

	// Denormalized part info, populated on reads
	PartName     string `json:"part_name,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
}
