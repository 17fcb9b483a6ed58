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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameAchievementsUnlocked    = "achievements_unlocked_total"
	MetricNameRewardsCollected        = "rewards_collected_total"
	MetricNameXPAwarded               = "xp_awarded_total"
	MetricNameLevelUps                = "level_ups_total"
	MetricNameBootcampLevelsCompleted = "bootcamp_levels_completed_total"
	MetricNameSubmissions             = "submissions_total"
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

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextAchievementsUnlocked    = "Total number of achievements unlocked"
	HelpTextRewardsCollected        = "Total number of rewards collected"
	HelpTextXPAwarded               = "Total experience points awarded"
	HelpTextLevelUps                = "Total number of level ups"
	HelpTextBootcampLevelsCompleted = "Total number of bootcamp levels completed"
	HelpTextSubmissions             = "Total number of kata submissions"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod      = "method"
	LabelPath        = "path"
	LabelStatus      = "status"
	LabelType        = "type"
	LabelAchievement = "achievement"
	LabelReward      = "reward"
	LabelBootcamp    = "bootcamp"
	LabelLanguage    = "language"
)

// Path label used when a request matched no route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
