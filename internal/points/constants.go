package points

import "time"

// MaxPointsPerCall caps a single ledger mutation. A compromised or buggy
// client must not be able to credit unbounded XP in one call.
const MaxPointsPerCall = 500

// Profile reads retry on transient store errors with linear backoff.
const (
	ProfileReadAttempts = 3
	ProfileReadBackoff  = 50 * time.Millisecond
)

// Well-known action labels credited through this service.
const (
	ActionPurchase  = "Achat de pièce"
	ActionPromotion = "Promu dans votre écurie"
)

// Log message constants
const (
	LogMsgPointsAwarded      = "Awarded performance points"
	LogMsgPointsRejected     = "Rejected points mutation"
	LogMsgPublishFailed      = "Failed to publish points-awarded event"
	ErrMsgAddPointsFailed    = "failed to add points: %w"
	ErrMsgProfileFetchFailed = "failed to fetch profile: %w"
)
