package response

import (
	"encoding/json"
	"time"
)

// ErrResp is the standard JSON failure body.
type ErrResp struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// DateTime is a timestamp that marshals as DateTimeFormat (RFC 3339, UTC).
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateTimeFormat))
}
