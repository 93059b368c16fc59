package distribution

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckHeader(t *testing.T) {
	t.Run("accepts spelling variants", func(t *testing.T) {
		assert.NoError(t, CheckHeader([]string{"FirstName", "Phone", "Notes"}))
		assert.NoError(t, CheckHeader([]string{" first name ", "PHONE"}))
		assert.NoError(t, CheckHeader([]string{"first_name", "phone", "extra"}))
	})

	t.Run("missing columns are fatal", func(t *testing.T) {
		err := CheckHeader([]string{"Notes"})
		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, []string{"first name", "phone"}, schemaErr.Missing)
	})
}

func TestValidateRows(t *testing.T) {
	t.Run("valid rows come back in order", func(t *testing.T) {
		contacts, err := ValidateRows([]RawRow{
			{"firstname": " Alice ", "phone": "+1 (555) 123-4567", "notes": " call after 5 "},
			{"firstname": "Bob", "phone": "555-0000"},
		})
		require.NoError(t, err)
		require.Len(t, contacts, 2)
		assert.Equal(t, "Alice", contacts[0].FirstName)
		assert.Equal(t, "+1 (555) 123-4567", contacts[0].Phone)
		assert.Equal(t, "call after 5", contacts[0].Notes)
		assert.Equal(t, "Bob", contacts[1].FirstName)
	})

	t.Run("invalid phone cites row 2 for the first data row", func(t *testing.T) {
		_, err := ValidateRows([]RawRow{
			{"firstname": "Alice", "phone": "abc"},
		})
		var rowErr *RowValidationError
		require.ErrorAs(t, err, &rowErr)
		require.Len(t, rowErr.Rows, 1)
		assert.Equal(t, 2, rowErr.Rows[0].RowNumber)
		assert.Contains(t, rowErr.Rows[0].Reason, "invalid phone format")
	})

	t.Run("one bad row fails the whole upload", func(t *testing.T) {
		_, err := ValidateRows([]RawRow{
			{"firstname": "Alice", "phone": "555-1234"},
			{"firstname": "", "phone": "555-5678"},
			{"firstname": "Carol", "phone": "12ab34"},
		})
		var rowErr *RowValidationError
		require.ErrorAs(t, err, &rowErr)
		require.Len(t, rowErr.Rows, 2)
		assert.Equal(t, 3, rowErr.Rows[0].RowNumber)
		assert.Equal(t, "first name is required", rowErr.Rows[0].Reason)
		assert.Equal(t, 4, rowErr.Rows[1].RowNumber)
	})

	t.Run("blank rows are skipped, not rejected", func(t *testing.T) {
		contacts, err := ValidateRows([]RawRow{
			{"firstname": "", "phone": "", "notes": "  "},
			{"firstname": "Alice", "phone": "555-1234"},
		})
		require.NoError(t, err)
		assert.Len(t, contacts, 1)
	})

	t.Run("zero surviving rows is an empty upload", func(t *testing.T) {
		_, err := ValidateRows(nil)
		assert.ErrorIs(t, err, ErrEmptyUpload)

		_, err = ValidateRows([]RawRow{{"firstname": "", "phone": ""}})
		assert.ErrorIs(t, err, ErrEmptyUpload)
	})

	t.Run("phone character set", func(t *testing.T) {
		valid := []string{
			"5551234",
			"+15551234",
			"(555) 123-4567",
			"555 123 4567",
			// Formatting characters may open the number.
			"(555)1234",
			"+(1) 555-0100",
			"-555-0100",
		}
		for _, p := range valid {
			_, err := ValidateRows([]RawRow{{"firstname": "A", "phone": p}})
			assert.NoError(t, err, "phone %q should be valid", p)
		}

		invalid := []string{"abc", "555+1234", "++5551234", "555.1234", "+", "()", "( ) -"}
		for _, p := range invalid {
			_, err := ValidateRows([]RawRow{{"firstname": "A", "phone": p}})
			assert.Error(t, err, "phone %q should be invalid", p)
		}
	})

	t.Run("notes truncate at 500, long names reject", func(t *testing.T) {
		contacts, err := ValidateRows([]RawRow{
			{"firstname": "Alice", "phone": "555", "notes": strings.Repeat("x", 600)},
		})
		require.NoError(t, err)
		assert.Len(t, contacts[0].Notes, 500)

		_, err = ValidateRows([]RawRow{
			{"firstname": strings.Repeat("y", 101), "phone": "555"},
		})
		var rowErr *RowValidationError
		require.ErrorAs(t, err, &rowErr)
		assert.Contains(t, rowErr.Rows[0].Reason, "100 characters")
	})

	t.Run("length limits count runes, not bytes", func(t *testing.T) {
		// 100 two-byte runes is 200 bytes but still a legal name.
		contacts, err := ValidateRows([]RawRow{
			{"firstname": strings.Repeat("é", 100), "phone": "555"},
		})
		require.NoError(t, err)
		assert.Equal(t, 100, utf8.RuneCountInString(contacts[0].FirstName))

		_, err = ValidateRows([]RawRow{
			{"firstname": strings.Repeat("é", 101), "phone": "555"},
		})
		assert.Error(t, err)

		// Truncating multi-byte notes must not split a rune.
		contacts, err = ValidateRows([]RawRow{
			{"firstname": "A", "phone": "555", "notes": strings.Repeat("日", 600)},
		})
		require.NoError(t, err)
		assert.Equal(t, 500, utf8.RuneCountInString(contacts[0].Notes))
		assert.True(t, utf8.ValidString(contacts[0].Notes))
	})
}
