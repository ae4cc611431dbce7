package mailer

import "fmt"

// Email represents a fully-prepared message ready for delivery.
type Email struct {
	To          string       // Recipient address (required)
	ToName      string       // Recipient display name
	Subject     string       // Subject line, taken verbatim from configuration
	HTML        string       // Rendered HTML body
	Attachments []Attachment // File attachments
}

// Attachment represents a binary attachment.
type Attachment struct {
	Filename    string // Display name for the attachment
	ContentType string // MIME type (e.g. "application/pdf")
	Content     []byte // Raw file content
}

// Validate checks that the message carries everything a provider needs.
func (e *Email) Validate() error {
	if e.To == "" {
		return ErrNoRecipient
	}
	if e.Subject == "" {
		return ErrNoSubject
	}
	if e.HTML == "" {
		return ErrNoContent
	}
	return nil
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
