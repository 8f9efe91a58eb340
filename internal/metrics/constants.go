package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameXPAwarded             = "xp_awarded_total"
	MetricNameLevelUps              = "level_ups_total"
	MetricNameModificationsRecorded = "modifications_recorded_total"
	MetricNamePointsRejected        = "points_rejected_total"
	MetricNamePurchaseCredits       = "purchase_credits_total"
	MetricNameEvaluatorFallbacks    = "xp_evaluator_fallbacks_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextXPAwarded             = "Total experience points awarded"
	HelpTextLevelUps              = "Total number of level-up transitions"
	HelpTextModificationsRecorded = "Total number of modification events recorded"
	HelpTextPointsRejected        = "Total number of rejected points mutations"
	HelpTextPurchaseCredits       = "Total number of purchase XP credits"
	HelpTextEvaluatorFallbacks    = "Total number of XP evaluator failures that fell back to the default award"
)

// Metric label names
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelAction   = "action"
	LabelReason   = "reason"
	LabelCategory = "category"
)

// Rejection reasons for points_rejected_total
const (
	RejectReasonInvalidDelta = "invalid_delta"
	RejectReasonCapExceeded  = "cap_exceeded"
)

// HTTPLatencyBuckets are the histogram buckets for request latency (seconds)
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
