package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("12345678"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("1234a678"))
	assert.False(t, IsNumeric("12 34"))
}

func TestIsValidEmployeeID(t *testing.T) {
	assert.True(t, IsValidEmployeeID("00012345"))
	assert.False(t, IsValidEmployeeID("1234567"))
	assert.False(t, IsValidEmployeeID("123456789"))
	assert.False(t, IsValidEmployeeID("1234567a"))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-09-10")
	require.True(t, ok)
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, 10, date.Day())

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("250910")
	assert.False(t, ok)
}

func TestStruct(t *testing.T) {
	type form struct {
		Name string `validate:"required"`
		Date string `validate:"required,datetime=2006-01-02"`
	}

	err := Struct(&form{Name: "x", Date: "2025-09-10"})
	assert.NoError(t, err)

	err = Struct(&form{Date: "bad"})
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	m := verrs.ToMap()
	assert.Contains(t, m, "Name")
	assert.Contains(t, m, "Date")
}
