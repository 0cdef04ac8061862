package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty("  x  "))
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("john.doe"))
	assert.True(t, IsValidUsername("user_01"))
	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername("has spaces"))
	assert.False(t, IsValidUsername("bad!chars"))
}

func TestIsValidDateTime(t *testing.T) {
	_, ok := IsValidDateTime("2024-09-15T08:45:00Z")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2024-09-15T08:45:00+07:00")
	assert.True(t, ok)

	_, ok = IsValidDateTime("September 15, 2024")
	assert.False(t, ok)

	_, ok = IsValidDateTime("")
	assert.False(t, ok)
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2024-09-15")
	assert.True(t, ok)

	_, ok = IsValidDate("15-09-2024")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "employeeId", Message: "employeeId is required"},
		{Field: "timeStamp", Message: "timeStamp must be a valid timestamp"},
	}

	assert.Contains(t, errs.Error(), "employeeId is required")
	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "timeStamp must be a valid timestamp", m["timeStamp"])
}
