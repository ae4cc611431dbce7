package recipients

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

// Load reads a recipient source file, dispatching on its extension.
// Supported formats: .csv, .xlsx. The returned result carries the
// validated records in source order plus one rejection per filtered row.
// An empty source yields an empty result, not an error.
func Load(path string) (*Result, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, path, err)
		}
		defer f.Close()
		res, err := LoadCSV(f)
		if err != nil {
			return nil, err
		}
		res.SourcePath = path
		return res, nil
	case ".xlsx":
		return loadXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadCSV reads recipients from CSV data with a header row.
func LoadCSV(r io.Reader) (*Result, error) {
	var rows []Record
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return &Result{}, nil
		}
		return nil, fmt.Errorf("recipients: parsing csv: %w", err)
	}
	return filter(rows), nil
}

func loadXLSX(path string) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("recipients: reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return &Result{SourcePath: path}, nil
	}

	cols := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	cell := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, Record{
			Email:          cell(row, "email"),
			Name:           cell(row, "name"),
			Company:        cell(row, "company"),
			City:           cell(row, "city"),
			CustomMessage:  cell(row, "custom_message"),
			AttachmentName: cell(row, "attachment_name"),
		})
	}
	res := filter(records)
	res.SourcePath = path
	return res, nil
}

// filter trims whitespace, validates every row, and splits the input into
// accepted records and rejections. Row numbers are 1-based data rows.
func filter(rows []Record) *Result {
	res := &Result{}
	for i, rec := range rows {
		rec = trimmed(rec)
		if rec == (Record{}) {
			continue // skip fully blank rows without counting them
		}
		if err := rec.Validate(); err != nil {
			res.Rejected = append(res.Rejected, Rejection{Line: i + 1, Email: rec.Email, Reason: err})
			continue
		}
		res.Records = append(res.Records, rec)
	}
	return res
}

func trimmed(r Record) Record {
	return Record{
		Email:          strings.TrimSpace(r.Email),
		Name:           strings.TrimSpace(r.Name),
		Company:        strings.TrimSpace(r.Company),
		City:           strings.TrimSpace(r.City),
		CustomMessage:  strings.TrimSpace(r.CustomMessage),
		AttachmentName: strings.TrimSpace(r.AttachmentName),
	}
}
