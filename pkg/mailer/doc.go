// Package mailer defines the email message model, the transport contract,
// and the placeholder renderer used to personalize HTML bodies.
//
// # Architecture
//
// The package consists of three pieces:
//
//   - Email/Attachment: a fully-prepared message ready for delivery
//   - Transport/Session: the contract delivery providers implement; a
//     Transport authenticates once per run and hands back a Session that
//     performs exactly one delivery attempt per Send call
//   - Renderer: substitutes recognized {{placeholder}} tokens in an HTML
//     template with per-recipient values
//
// Retry, rate limiting, and outcome accounting are deliberately not here:
// they belong to the send pipeline, which owns delivery policy. A Session
// that fails a Send must be safe to call again for the next attempt.
//
// # Rendering
//
// The renderer performs literal token substitution rather than Go template
// execution: every occurrence of a recognized placeholder is replaced with
// the recipient's value (or an empty string when the optional field is
// absent), and unknown placeholders are left untouched so a template can
// carry literal braces without failing the run. Values are HTML-sanitized
// before injection; the custom_message field keeps basic user-generated
// formatting, everything else is reduced to plain text.
package mailer
