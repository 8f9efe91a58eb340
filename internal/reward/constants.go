package reward

const (
	// RoutineToastDurationMS is how long clients display an ordinary XP toast.
	RoutineToastDurationMS = 4000

	// LevelUpToastDurationMS is the longer display for level-up celebrations.
	LevelUpToastDurationMS = 8000

	LogMsgLevelUp       = "User leveled up"
	LogMsgPublishFailed = "Failed to publish level-up event"
	LogMsgDecodeFailed  = "Failed to decode points-awarded payload"
)
