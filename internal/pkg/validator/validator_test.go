package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty("  a  "))
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("0123456789"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("12a"))
	assert.False(t, IsNumeric("-1"))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2026-01-10")
	assert.True(t, ok)
	assert.Equal(t, 2026, date.Year())

	_, ok = IsValidDate("10-01-2026")
	assert.False(t, ok)

	_, ok = IsValidDate("2026-02-30")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	values := []string{"regular", "off", "sick"}
	assert.True(t, IsInSlice("off", values))
	assert.False(t, IsInSlice("annual", values))
	assert.False(t, IsInSlice("", values))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "start_date is required"},
		{Field: "leave_type", Message: "invalid leave_type"},
	}

	assert.Contains(t, errs.Error(), "start_date: start_date is required")
	assert.Contains(t, errs.Error(), "leave_type: invalid leave_type")

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "invalid leave_type", m["leave_type"])
}
