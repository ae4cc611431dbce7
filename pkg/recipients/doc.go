// Package recipients loads and validates recipient records from tabular
// sources (CSV or XLSX).
//
// Rows missing a mandatory field or carrying a syntactically invalid email
// address never reach the send pipeline: they are filtered at this
// boundary and surfaced as rejections so the operator can see how many
// rows were dropped and why.
//
// Recognized columns: email, name (mandatory), company, city,
// custom_message, attachment_name (optional). Unknown columns are ignored.
package recipients
