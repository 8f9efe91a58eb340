package catalog

import "time"

// Part lookup cache settings. Parts change rarely (admin edits only), so a
// short TTL keeps admin updates visible without hammering the database on
// every installation preview.
const (
	PartCacheSize = 512
	PartCacheTTL  = 5 * time.Minute
)

// PurchaseXP is the flat award for a completed purchase, credited once per
// order.
const PurchaseXP = 100

// Log message constants
const (
	LogMsgPurchaseCredited      = "Credited purchase XP"
	LogMsgPurchaseAlreadyDone   = "Purchase already credited, skipping"
	LogMsgPurchaseCreditFailed  = "Failed to credit purchase XP"
	LogMsgPurchasePublishFailed = "Failed to publish purchase-credited event"
)
