package apierror

// Problem type URIs used as the "type" member of RFC 9457 responses.
const (
	// TypeValidation: request body or parameters failed validation (400)
	TypeValidation = "urn:focusflow:error:validation"

	// TypeBadRequest: malformed request (400)
	TypeBadRequest = "urn:focusflow:error:bad_request"

	// TypeInvalidID: a path or body identifier is not a UUID (400)
	TypeInvalidID = "urn:focusflow:error:invalid_id"

	// TypeInvalidRange: an analytics window could not be resolved (400)
	TypeInvalidRange = "urn:focusflow:error:invalid_range"

	// TypeFutureTimestamp: a client-generated UUIDv7 is dated in the future (400)
	TypeFutureTimestamp = "urn:focusflow:error:future_timestamp"

	// TypeNotFound: profile or activity does not exist (404)
	TypeNotFound = "urn:focusflow:error:not_found"

	// TypeConflict: the resource already exists or is in the wrong state (409)
	TypeConflict = "urn:focusflow:error:conflict"

	// TypeRateLimit: too many requests (429)
	TypeRateLimit = "urn:focusflow:error:rate_limit"

	// TypeInternal: unexpected server error (500)
	TypeInternal = "urn:focusflow:error:internal"
)

const (
	TitleValidation      = "Validation Error"
	TitleBadRequest      = "Bad Request"
	TitleInvalidID       = "Invalid Identifier"
	TitleInvalidRange    = "Invalid Date Range"
	TitleFutureTimestamp = "Future Timestamp Not Allowed"
	TitleNotFound        = "Resource Not Found"
	TitleConflict        = "Resource Conflict"
	TitleRateLimit       = "Rate Limit Exceeded"
	TitleInternal        = "Internal Server Error"
)
