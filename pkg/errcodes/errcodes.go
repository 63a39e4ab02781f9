package errcodes

// ErrorCode tags an application error with a stable, machine-readable code.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

const (
	InternalServerError ErrorCode = "InternalServerError"
	TimeoutExceeded     ErrorCode = "TimeoutExceeded"
	ValidationError     ErrorCode = "ValidationError"
	NotFound            ErrorCode = "NotFound"

	// Market data edge.
	MarketUnavailable ErrorCode = "MarketUnavailable" // transport error or non-2xx status
	MarketMalformed   ErrorCode = "MarketMalformed"   // 2xx but the expected envelope key is missing

	// Enrichment edge.
	ImageUnavailable      ErrorCode = "ImageUnavailable"
	StorefrontUnavailable ErrorCode = "StorefrontUnavailable"

	// Chat platform edge.
	MessageNotFound ErrorCode = "MessageNotFound"
	SendRejected    ErrorCode = "SendRejected"
	EditRejected    ErrorCode = "EditRejected"
)
