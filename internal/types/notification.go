package types

// Severity classifies a notification for display.
type Severity string

// Notification severities.
const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is a user-visible event emitted for significant actions.
type Notification struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}
