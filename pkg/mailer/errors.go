package mailer

import "errors"

var (
	// ErrNoRecipient indicates no recipient address was set.
	ErrNoRecipient = errors.New("mailer: email must have a recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("mailer: email must have a subject")

	// ErrNoContent indicates no HTML body was provided.
	ErrNoContent = errors.New("mailer: email must have HTML content")

	// ErrMalformedTemplate indicates the body template carries an
	// unterminated placeholder and would break identically for every
	// recipient.
	ErrMalformedTemplate = errors.New("mailer: malformed template")

	// ErrSendFailed indicates a delivery attempt failed.
	ErrSendFailed = errors.New("mailer: failed to send email")
)
