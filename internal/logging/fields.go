package logging

import "log/slog"

// Field keys shared by every log line the service writes.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldOperation  = "operation"
	FieldAttempt    = "attempt"
	FieldEventKey   = "event_key"
	FieldUsername   = "username"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
	FieldError      = "error"
)

// WithCommon appends the service and version attributes, skipping empty ones.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}
