package recipients

import (
	"fmt"
	"net/mail"
	"strings"
)

// Record is one validated recipient row. Records are immutable once loaded.
type Record struct {
	Email          string `csv:"email"`
	Name           string `csv:"name"`
	Company        string `csv:"company"`
	City           string `csv:"city"`
	CustomMessage  string `csv:"custom_message"`
	AttachmentName string `csv:"attachment_name"`
}

// Fields returns the record's personalization values keyed by placeholder
// name. Absent optional fields map to empty strings.
func (r Record) Fields() map[string]string {
	return map[string]string{
		"name":           r.Name,
		"company":        r.Company,
		"city":           r.City,
		"custom_message": r.CustomMessage,
	}
}

// Validate reports whether the record may enter the send pipeline.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return ErrMissingEmail
	}
	if strings.TrimSpace(r.Name) == "" {
		return ErrMissingName
	}
	addr, err := mail.ParseAddress(r.Email)
	if err != nil || addr.Address != strings.TrimSpace(r.Email) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, r.Email)
	}
	// Require a dotted domain so bare hostnames don't slip through.
	at := strings.LastIndex(addr.Address, "@")
	if at < 0 || !strings.Contains(addr.Address[at+1:], ".") {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, r.Email)
	}
	return nil
}

// Rejection describes one filtered source row.
type Rejection struct {
	Line   int // 1-based data row number in the source
	Email  string
	Reason error
}

// Result is the outcome of loading a recipient source.
type Result struct {
	Records    []Record
	Rejected   []Rejection
	SourcePath string
}
