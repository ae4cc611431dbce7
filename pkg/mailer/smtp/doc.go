// Package smtp implements mailer.Transport over a single authenticated
// SMTP submission endpoint using gopkg.in/mail.v2.
//
// Connect dials the endpoint once, negotiates STARTTLS, and authenticates;
// a rejected login surfaces here as ErrConnect with a remediation hint,
// before any recipient is processed. The returned Session reuses the one
// connection for every message in the run and performs exactly one
// delivery attempt per Send call.
package smtp
