package config

import "errors"

var (
	// ErrDefaultsWritten is returned when no env file existed and a default
	// one was created. It is a controlled halt, not a failure.
	ErrDefaultsWritten = errors.New("default env file created")

	ErrHostMissing         = errors.New("HOST is not set")
	ErrHostInvalid         = errors.New("HOST must be a valid IP address with 4 octets (e.g. 192.168.1.1)")
	ErrPortInvalid         = errors.New("PORT must be an integer between 1 and 65535")
	ErrConsolePrintInvalid = errors.New("CONSOLE_PRINT must be 0 or 1")
	ErrStatusCodeInvalid   = errors.New("RESPONSE_STATUS_CODE must be an integer between 100 and 599")
)
