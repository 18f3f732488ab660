package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmployee(t *testing.T) {
	companyID := uuid.New()

	t.Run("creates employee with normalized email", func(t *testing.T) {
		employee, err := NewEmployee(companyID, "  Alice@Example.COM ", "hash", "Accountant", false)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", employee.Email)
		assert.Equal(t, companyID, employee.CompanyID)
		assert.False(t, employee.IsManager)
	})

	t.Run("first employee can be manager", func(t *testing.T) {
		employee, err := NewEmployee(companyID, "owner@example.com", "hash", "", true)
		require.NoError(t, err)
		assert.True(t, employee.IsManager)
	})

	t.Run("fails with empty email", func(t *testing.T) {
		_, err := NewEmployee(companyID, "   ", "hash", "", false)
		require.Error(t, err)
	})

	t.Run("fails with empty password hash", func(t *testing.T) {
		_, err := NewEmployee(companyID, "bob@example.com", "", "", false)
		require.Error(t, err)
	})
}

func TestEmployeeMerge(t *testing.T) {
	companyID := uuid.New()
	employee, err := NewEmployee(companyID, "carol@example.com", "hash", "Junior Accountant", false)
	require.NoError(t, err)

	merged := employee.Merge(EmployeePatch{Position: strPtr("Senior Accountant")})
	assert.Equal(t, "Senior Accountant", merged.Position)
	assert.Equal(t, employee.Email, merged.Email)

	// nil patch keeps current value
	same := employee.Merge(EmployeePatch{})
	assert.Equal(t, "Junior Accountant", same.Position)
}

func TestEmployeeBelongsTo(t *testing.T) {
	companyID := uuid.New()
	employee, err := NewEmployee(companyID, "dave@example.com", "hash", "", false)
	require.NoError(t, err)

	assert.True(t, employee.BelongsTo(companyID))
	assert.False(t, employee.BelongsTo(uuid.New()))
}
