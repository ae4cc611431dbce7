package mailer

import "context"

// Transport is the contract delivery providers implement. Connect opens an
// authenticated session with the submission endpoint; a rejected login or
// unreachable endpoint surfaces here, before any recipient is processed.
type Transport interface {
	Connect(ctx context.Context) (Session, error)
}

// Session is an authenticated connection to the submission endpoint.
// Send performs exactly one delivery attempt; retry policy belongs to the
// caller. A Session must remain usable after a failed Send.
type Session interface {
	Send(email *Email) error
	Close() error
}
