package repository

import "errors"

var (
	// ErrNotConfigured is returned by destination operations when the Google
	// service-account credentials were absent or invalid at startup.
	ErrNotConfigured = errors.New("google drive destination is not configured")
)
