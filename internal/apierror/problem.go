// Package apierror renders API errors as RFC 9457 Problem Details.
package apierror

// ProblemDetails is an RFC 9457 Problem Details body.
// See https://www.rfc-editor.org/rfc/rfc9457.html
type ProblemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`

	// Extension members
	RequestID   string       `json:"request_id,omitempty"`
	UserMessage string       `json:"user_message,omitempty"` // safe to show in the UI
	RetryAfter  *int         `json:"retry_after,omitempty"`  // seconds, 429 only
	Errors      []FieldError `json:"errors,omitempty"`
}

// FieldError describes one invalid field or query parameter
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func (p *ProblemDetails) Error() string {
	if p.Detail != "" {
		return p.Detail
	}
	return p.Title
}
