package handlers

// Stable error codes used in the `code` field of ErrorResponse. Clients can
// branch on these without parsing messages.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeNotFound         = "not_found"
	codeMethodNotAllowed = "method_not_allowed"
	codeTooManyRequests  = "too_many_requests"
	codeInternalError    = "internal_error"
)

// Exported aliases for router-level handlers (NoRoute/NoMethod, limiter).
const (
	CodeNotFound         = codeNotFound
	CodeMethodNotAllowed = codeMethodNotAllowed
	CodeTooManyRequests  = codeTooManyRequests
)
