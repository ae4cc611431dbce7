// Package report accumulates per-recipient send outcomes and persists them
// as an ordered CSV report.
//
// A Report is append-only: the pipeline adds one Outcome per processed
// recipient, in input order, and the summary counters are kept in sync.
// Persistence comes in two flavors:
//
//   - WriteCSV: write a finished report in one shot
//   - Writer: flush outcomes one at a time, so an interrupted run still
//     leaves a usable partial report on disk
//
// Column order and naming (email, name, status, timestamp, error) are part
// of the report contract and match the order outcomes were produced in.
package report
