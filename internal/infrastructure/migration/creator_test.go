package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add invoice notes", "add_invoice_notes"},
		{"Add-Invoice-Notes", "add_invoice_notes"},
		{"ADD_INVOICE_NOTES", "add_invoice_notes"},
		{"add__invoice__notes", "add_invoice_notes"},
		{"Add Invoices 123", "add_invoices_123"},
		{"   spaces   ", "spaces"},
		{"special!@#$chars", "specialchars"},
		{"trailing_", "trailing"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestCreateMigration(t *testing.T) {
	tmpDir := t.TempDir()

	mf, err := CreateMigration(tmpDir, "add invoice notes")
	require.NoError(t, err)
	require.NotNil(t, mf)

	// Version is a YYYYMMDDHHMMSS timestamp
	assert.Len(t, mf.Version, 14)

	assert.True(t, strings.HasSuffix(mf.UpPath, ".up.sql"))
	assert.True(t, strings.HasSuffix(mf.DownPath, ".down.sql"))

	upBase := strings.TrimSuffix(filepath.Base(mf.UpPath), ".up.sql")
	downBase := strings.TrimSuffix(filepath.Base(mf.DownPath), ".down.sql")
	assert.Equal(t, upBase, downBase)
	assert.Contains(t, upBase, "add_invoice_notes")

	upContent, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(upContent), "add invoice notes")

	_, err = os.Stat(mf.DownPath)
	assert.NoError(t, err)
}

func TestCreateMigrationCreatesDirectory(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "nested", "migrations")

	mf, err := CreateMigration(nested, "initial")
	require.NoError(t, err)
	require.NotNil(t, mf)

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestListMigrations(t *testing.T) {
	t.Run("empty for missing directory", func(t *testing.T) {
		migrations, err := ListMigrations(filepath.Join(t.TempDir(), "does-not-exist"))
		require.NoError(t, err)
		assert.Empty(t, migrations)
	})

	t.Run("lists migration pairs", func(t *testing.T) {
		tmpDir := t.TempDir()
		_, err := CreateMigration(tmpDir, "first migration")
		require.NoError(t, err)

		migrations, err := ListMigrations(tmpDir)
		require.NoError(t, err)
		require.Len(t, migrations, 1)
		assert.Contains(t, migrations[0], "first_migration")
	})

	t.Run("ignores stray files", func(t *testing.T) {
		tmpDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "README.md"), []byte("notes"), 0644))

		migrations, err := ListMigrations(tmpDir)
		require.NoError(t, err)
		assert.Empty(t, migrations)
	})
}
