package recipients_test

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/antares2881/outlook-email-sender/pkg/recipients"
)

// writeWorkbook saves rows into a fresh .xlsx file and returns its path.
// A nil row leaves a gap in the sheet.
func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		if row == nil {
			continue
		}
		require.NoError(t, f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+1), &row))
	}

	path := filepath.Join(t.TempDir(), "contacts.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadCSV_ValidRows(t *testing.T) {
	t.Parallel()

	src := strings.Join([]string{
		"email,name,company,city,custom_message,attachment_name",
		"alice@example.com,Alice,Acme,Madrid,Welcome aboard,Offer Letter",
		"bob@example.com,Bob,,,,",
	}, "\n")

	res, err := recipients.LoadCSV(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, res.Records, 2)
	assert.Empty(t, res.Rejected)

	assert.Equal(t, "alice@example.com", res.Records[0].Email)
	assert.Equal(t, "Offer Letter", res.Records[0].AttachmentName)
	assert.Equal(t, "Bob", res.Records[1].Name)
	assert.Empty(t, res.Records[1].Company)
}

func TestLoadCSV_RejectsInvalidRows(t *testing.T) {
	t.Parallel()

	src := strings.Join([]string{
		"email,name",
		"good@example.com,Good",
		",Missing Email",
		"noname@example.com,",
		"not-an-address,Broken",
		"bare@localhost,NoTLD",
	}, "\n")

	res, err := recipients.LoadCSV(strings.NewReader(src))
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	assert.Equal(t, "good@example.com", res.Records[0].Email)

	require.Len(t, res.Rejected, 4)
	assert.ErrorIs(t, res.Rejected[0].Reason, recipients.ErrMissingEmail)
	assert.ErrorIs(t, res.Rejected[1].Reason, recipients.ErrMissingName)
	assert.ErrorIs(t, res.Rejected[2].Reason, recipients.ErrInvalidEmail)
	assert.ErrorIs(t, res.Rejected[3].Reason, recipients.ErrInvalidEmail)
	assert.Equal(t, 4, res.Rejected[2].Line)
}

func TestLoadCSV_PreservesSourceOrder(t *testing.T) {
	t.Parallel()

	src := strings.Join([]string{
		"email,name",
		"c@example.com,C",
		"a@example.com,A",
		"b@example.com,B",
	}, "\n")

	res, err := recipients.LoadCSV(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, res.Records, 3)
	assert.Equal(t, "c@example.com", res.Records[0].Email)
	assert.Equal(t, "a@example.com", res.Records[1].Email)
	assert.Equal(t, "b@example.com", res.Records[2].Email)
}

func TestLoadCSV_EmptySource(t *testing.T) {
	t.Parallel()

	res, err := recipients.LoadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, res.Records)
	assert.Empty(t, res.Rejected)
}

func TestLoadCSV_DuplicatesKept(t *testing.T) {
	t.Parallel()

	src := strings.Join([]string{
		"email,name",
		"dup@example.com,First",
		"DUP@example.com,Second",
	}, "\n")

	res, err := recipients.LoadCSV(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, res.Records, 2)
}

func TestLoadXLSX_MapsHeaderColumns(t *testing.T) {
	t.Parallel()

	// Header casing and padding must not matter, and columns may appear
	// in any order.
	path := writeWorkbook(t, [][]any{
		{" Email ", "NAME", "attachment_name", "City"},
		{"alice@example.com", "Alice", "Offer Letter", "Madrid"},
		{"bob@example.com", "Bob"},
	})

	res, err := recipients.Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, res.SourcePath)
	assert.Empty(t, res.Rejected)

	require.Len(t, res.Records, 2)
	assert.Equal(t, "alice@example.com", res.Records[0].Email)
	assert.Equal(t, "Offer Letter", res.Records[0].AttachmentName)
	assert.Equal(t, "Madrid", res.Records[0].City)

	// Bob's row stops after the name column; the remaining recognized
	// columns read as empty.
	assert.Equal(t, "Bob", res.Records[1].Name)
	assert.Empty(t, res.Records[1].City)
	assert.Empty(t, res.Records[1].AttachmentName)
}

func TestLoadXLSX_RejectsAndSkipsRows(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, [][]any{
		{"email", "name", "company"},
		{"good@example.com", "Good", "Acme"},
		{"not-an-address", "Broken"},
		nil, // blank sheet row, skipped without counting
		{"late@example.com", "Late"},
	})

	res, err := recipients.Load(path)
	require.NoError(t, err)

	require.Len(t, res.Records, 2)
	assert.Equal(t, "good@example.com", res.Records[0].Email)
	assert.Equal(t, "late@example.com", res.Records[1].Email)

	require.Len(t, res.Rejected, 1)
	assert.ErrorIs(t, res.Rejected[0].Reason, recipients.ErrInvalidEmail)
	assert.Equal(t, "not-an-address", res.Rejected[0].Email)
	assert.Equal(t, 2, res.Rejected[0].Line)
}

func TestLoadXLSX_EmptyWorkbook(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, nil)

	res, err := recipients.Load(path)
	require.NoError(t, err)
	assert.Empty(t, res.Records)
	assert.Empty(t, res.Rejected)
}

func TestLoad_UnknownExtension(t *testing.T) {
	t.Parallel()

	_, err := recipients.Load("destinations.txt")
	assert.ErrorIs(t, err, recipients.ErrUnsupportedFormat)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := recipients.Load("no-such-file.csv")
	assert.ErrorIs(t, err, recipients.ErrSourceNotFound)
}

func TestRecord_Fields(t *testing.T) {
	t.Parallel()

	rec := recipients.Record{Email: "x@example.com", Name: "X", City: "Lima"}
	fields := rec.Fields()
	assert.Equal(t, "X", fields["name"])
	assert.Equal(t, "Lima", fields["city"])
	assert.Equal(t, "", fields["company"])
	assert.Equal(t, "", fields["custom_message"])
}
