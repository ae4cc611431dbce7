// Package pipeline drives delivery for an ordered sequence of validated
// recipients under a single immutable run configuration.
//
// The pipeline guarantees:
//
//   - one recipient's failure never aborts the run; only a transport
//     session that cannot be opened at all, or a template broken for
//     every recipient identically, is fatal
//   - retry and rate-limit policy apply uniformly: up to max_retries+1
//     delivery attempts per recipient with eager stop on success, and a
//     fixed pause between recipients (never after the last)
//   - exactly one outcome per recipient, appended in input order, so the
//     report reproduces the source order for auditing even on partial
//     failure
//
// Per recipient the flow is Pending -> Rendering -> Sending(1..N) ->
// Succeeded|Failed; nothing is shared between recipients except the
// append-only report. Preview mode processes at most the first recipient
// and is otherwise identical to a full run.
package pipeline
