package pgsql

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tax record figures are stored exactly as computed.
func TestTaxRecordMigration_AmountsAreUnconstrainedNumeric(t *testing.T) {
	sql, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "migrations", "000002_create_tax_records.up.sql"))
	require.NoError(t, err)

	for _, column := range []string{"total_income", "deductions", "taxable_income", "tax_liability"} {
		assert.Regexp(t, regexp.MustCompile(`(?m)^\s*`+column+`\s+NUMERIC\s+NOT NULL,`), string(sql), "column %s", column)
	}
	assert.NotRegexp(t, regexp.MustCompile(`NUMERIC\s*\(`), string(sql))
}
