// Package pdf builds the per-recipient PDF attachment: an optional logo,
// a title, a details table (name, company, city, date), the recipient's
// custom message, and a generation footer.
//
// Generate is a plain function of the recipient record; it carries no
// retry policy of its own. If generation fails the caller decides what
// that means for the recipient.
package pdf
