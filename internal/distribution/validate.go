package distribution

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Mukeshpandey0286/agent-management-backend/internal/model"
)

// RawRow is one decoded line of the uploaded file: normalized column name
// to raw cell value. The upload glue owns file decoding; this package only
// sees rows.
type RawRow map[string]string

// Canonical column keys after NormalizeColumn.
const (
	colFirstName = "firstname"
	colPhone     = "phone"
	colNotes     = "notes"
)

const (
	maxFirstNameLen = 100
	maxNotesLen     = 500
)

// phonePattern accepts an optional leading + and then digits, spaces,
// parentheses and hyphens in any arrangement. At least one digit is
// required, but formatting characters may come first, as in "(555) 123".
var phonePattern = regexp.MustCompile(`^\+?[0-9\s()\-]*[0-9][0-9\s()\-]*$`)

// NormalizeColumn maps a raw header cell to its canonical key: trimmed,
// lower-cased, with inner spaces and underscores removed, so "First Name",
// "first_name" and "FIRSTNAME" all land on "firstname".
func NormalizeColumn(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "")
	name = strings.ReplaceAll(name, "_", "")
	return strings.ReplaceAll(name, `"`, "")
}

// CheckHeader verifies the required columns exist before any row is
// processed. Missing first-name or phone is fatal for the whole upload.
func CheckHeader(columns []string) error {
	seen := make(map[string]bool, len(columns))
	for _, c := range columns {
		seen[NormalizeColumn(c)] = true
	}

	var missing []string
	if !seen[colFirstName] {
		missing = append(missing, "first name")
	}
	if !seen[colPhone] {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

// isBlankRow reports whether every cell of the row is empty after trimming.
// Blank lines in the file are skipped, not rejected.
func isBlankRow(row RawRow) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// validateRow turns one raw row into a Contact or a rejection reason.
// rowNumber is the 1-based file line (header = 1).
func validateRow(row RawRow, rowNumber int) (model.Contact, *RowError) {
	firstName := strings.TrimSpace(row[colFirstName])
	phone := strings.TrimSpace(row[colPhone])
	notes := strings.TrimSpace(row[colNotes])

	if firstName == "" {
		return model.Contact{}, &RowError{RowNumber: rowNumber, Reason: "first name is required"}
	}
	if utf8.RuneCountInString(firstName) > maxFirstNameLen {
		return model.Contact{}, &RowError{RowNumber: rowNumber, Reason: "first name exceeds 100 characters"}
	}
	if phone == "" {
		return model.Contact{}, &RowError{RowNumber: rowNumber, Reason: "phone is required"}
	}
	if !phonePattern.MatchString(phone) {
		return model.Contact{}, &RowError{RowNumber: rowNumber, Reason: "invalid phone format"}
	}
	// Limits count runes, not bytes, so multi-byte names are not penalized
	// and truncation cannot split a character.
	if runes := []rune(notes); len(runes) > maxNotesLen {
		notes = string(runes[:maxNotesLen])
	}

	return model.Contact{FirstName: firstName, Phone: phone, Notes: notes}, nil
}

// ValidateRows validates the whole upload before anything is allocated.
// Either every surviving row is valid and the contacts come back in file
// order, or the call fails with every offending row listed. Zero surviving
// rows is ErrEmptyUpload.
func ValidateRows(rows []RawRow) ([]model.Contact, error) {
	contacts := make([]model.Contact, 0, len(rows))
	var rowErrs []RowError

	for i, row := range rows {
		if isBlankRow(row) {
			continue
		}
		// First data row is line 2, after the header.
		contact, rerr := validateRow(row, i+2)
		if rerr != nil {
			rowErrs = append(rowErrs, *rerr)
			continue
		}
		contacts = append(contacts, contact)
	}

	if len(rowErrs) > 0 {
		return nil, &RowValidationError{Rows: rowErrs}
	}
	if len(contacts) == 0 {
		return nil, ErrEmptyUpload
	}
	return contacts, nil
}
