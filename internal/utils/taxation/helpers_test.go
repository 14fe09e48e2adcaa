package taxation_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func nullDec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(s))
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msg ...string) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s %s", want, got.String(), strings.Join(msg, " "))
}
