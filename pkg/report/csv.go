package report

import (
	"io"

	"github.com/gocarina/gocsv"
)

// WriteCSV writes a complete report to w, one row per outcome in
// production order. An empty report yields only the header row.
func WriteCSV(w io.Writer, r *Report) error {
	return gocsv.Marshal(r.Outcomes, w)
}

// Writer flushes outcomes to an underlying stream one at a time, so a run
// interrupted mid-way still leaves every completed outcome on disk.
type Writer struct {
	out         io.Writer
	wroteHeader bool
}

// NewWriter creates an incremental report writer on top of out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Append writes a single outcome row, emitting the header first if this is
// the first row.
func (w *Writer) Append(o Outcome) error {
	row := []Outcome{o}
	if !w.wroteHeader {
		w.wroteHeader = true
		return gocsv.Marshal(row, w.out)
	}
	return gocsv.MarshalWithoutHeaders(row, w.out)
}
