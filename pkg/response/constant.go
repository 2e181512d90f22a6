package response

import "time"

const (
	// DefaultErrorMessage is used when an error carries no message.
	DefaultErrorMessage = "internal server error"

	// DateTimeFormat is the wire format for timestamps.
	DateTimeFormat = time.RFC3339
)
