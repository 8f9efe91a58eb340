package modification

const (
	// MaxNotesLength bounds the free-text notes on a modification event.
	MaxNotesLength = 500

	// DefaultListLimit applies when a history request does not specify one.
	DefaultListLimit = 50

	// ActionInstallPrefix labels the points credit for an installation; the
	// part name is appended.
	ActionInstallPrefix = "Pièce installée : "

	LogMsgRecorded          = "Modification recorded"
	LogMsgDeleted           = "Modification deleted"
	LogMsgEvaluatorFallback = "Rule evaluator failed, using fallback award"
	LogMsgCreditFailed      = "Failed to credit installation points"
	LogMsgPublishFailed     = "Failed to publish modification event"

	ErrMsgRecordFailed = "failed to record modification: %w"
	ErrMsgFetchFailed  = "failed to fetch modification: %w"
	ErrMsgListFailed   = "failed to list modifications: %w"
	ErrMsgDeleteFailed = "failed to delete modification: %w"
)
