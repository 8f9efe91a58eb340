package garage

const (
	// MaxDescriptionLength bounds the free-text description on a garage item.
	MaxDescriptionLength = 500

	// PromotionBonusXP is credited when a wishlist scooter is promoted to owned.
	PromotionBonusXP = 5

	LogMsgItemAdded        = "Scooter added to garage"
	LogMsgItemRemoved      = "Scooter removed from garage"
	LogMsgOwnershipChanged = "Garage item ownership changed"
	LogMsgPromotionFailed  = "Failed to credit promotion bonus"

	ErrMsgCreateFailed    = "failed to add scooter to garage: %w"
	ErrMsgFetchFailed     = "failed to fetch garage item: %w"
	ErrMsgListFailed      = "failed to list garage items: %w"
	ErrMsgUpdateFailed    = "failed to update garage item: %w"
	ErrMsgOwnershipFailed = "failed to update ownership: %w"
	ErrMsgDeleteFailed    = "failed to remove garage item: %w"
)
