package recipients

import "errors"

var (
	// ErrSourceNotFound is returned when the recipient source file does
	// not exist or cannot be opened.
	ErrSourceNotFound = errors.New("recipients: source file not found")

	// ErrUnsupportedFormat is returned for source files that are neither
	// CSV nor XLSX.
	ErrUnsupportedFormat = errors.New("recipients: unsupported source format")

	// ErrMissingEmail marks a row without an email address.
	ErrMissingEmail = errors.New("recipients: row is missing an email address")

	// ErrMissingName marks a row without a recipient name.
	ErrMissingName = errors.New("recipients: row is missing a name")

	// ErrInvalidEmail marks a row whose email address fails syntax
	// validation.
	ErrInvalidEmail = errors.New("recipients: invalid email address")
)
