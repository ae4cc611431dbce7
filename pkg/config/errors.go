package config

import "errors"

var (
	// ErrNotFound is returned when the configuration file cannot be read.
	ErrNotFound = errors.New("config: file not found")

	// ErrMissingSMTPServer is returned when smtp.server is absent.
	ErrMissingSMTPServer = errors.New("config: smtp.server is required")

	// ErrInvalidPort is returned for a port outside 1-65535.
	ErrInvalidPort = errors.New("config: smtp.port must be between 1 and 65535")

	// ErrMissingFromName is returned when email.from_name is absent.
	ErrMissingFromName = errors.New("config: email.from_name is required")

	// ErrMissingSubject is returned when email.subject is absent.
	ErrMissingSubject = errors.New("config: email.subject is required")

	// ErrMissingRecipients is returned when files.recipients is absent.
	ErrMissingRecipients = errors.New("config: files.recipients is required")

	// ErrNegativeDelay is returned for a negative inter-send delay.
	ErrNegativeDelay = errors.New("config: settings.delay_between_sends_seconds must not be negative")

	// ErrNegativeRetries is returned for a negative retry bound.
	ErrNegativeRetries = errors.New("config: settings.max_retries must not be negative")

	// ErrMissingCredentials is returned when the account credentials are
	// not present in the environment.
	ErrMissingCredentials = errors.New("config: OUTLOOK_EMAIL and OUTLOOK_PASSWORD must be set")
)
