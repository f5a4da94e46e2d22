package values

// Response status strings carried in the ServerResponse envelope. The HTTP
// status code is derived from these in util.StatusCode.
const (
	Success        = "success"
	Created        = "created"
	Error          = "error"
	BadRequestBody = "bad-request-body"
	Unprocessable  = "unprocessable"
	NotAllowed     = "not-allowed"
	Conflict       = "conflict"
	NotFound       = "not-found"
	NotAuthorised  = "not-authorised"
)

// Request headers.
const (
	HeaderRequestSource = "X-Request-Source"
	HeaderRequestID     = "X-Request-ID"
	HeaderUserID        = "X-User-ID"
)

type contextKey string

// ContextTracingKey carries the tracing.Context through the request.
const ContextTracingKey = contextKey("tracing-context")
