package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"whole", "250", "250.00"},
		{"fraction", "99.99", "99.99"},
		{"negative", "-5", "-5.00"},
		{"explicit plus", "+12.5", "12.50"},
		{"leading dot", ".5", "0.50"},
		{"trailing dot", "7.", "7.00"},
		{"surrounding spaces", "  42 \t", "42.00"},
		{"thousands", "1,250.75", "1250.75"},
		{"zero", "0", "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestParseRejects(t *testing.T) {
	for _, input := range []string{"", " ", "abc", "12abc", "1e3", "NaN", "Inf", "1.2.3", "--5", "1,25", "12,34,567", ".", "+", "$10"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		})
	}
}

func TestParseKeepsPrecision(t *testing.T) {
	a, err := Parse("0.105")
	require.NoError(t, err)
	assert.Equal(t, "0.105", a.Decimal().String())
	assert.Equal(t, "0.11", a.String(), "display rounds half away from zero")
}

func TestArithmetic(t *testing.T) {
	assert := assert.New(t)

	balance := Must("1000.00")
	balance = balance.Add(Must("250"))
	assert.Equal("1250.00", balance.String())

	// 0.1 + 0.2 is exact with decimals
	sum := Must("0.1").Add(Must("0.2"))
	assert.True(sum.Equal(Must("0.3")))

	diff := Must("1250").Sub(Must("2000"))
	assert.True(diff.IsNegative())
	assert.Equal("-750.00", diff.String())

	_, err := Must("10").SubNonNegative(Must("10.01"))
	assert.ErrorIs(err, ErrNegativeAmount)

	rest, err := Must("10").SubNonNegative(Must("10"))
	assert.NoError(err)
	assert.True(rest.IsZero())
}

func TestCompare(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(-1, Must("1").Cmp(Must("2")))
	assert.Equal(0, Must("1.5").Cmp(Must("1.50")))
	assert.True(Must("2").GreaterThan(Must("1.99")))
	assert.True(Must("0.01").IsPositive())
	assert.False(Zero.IsPositive())
	assert.True(Zero.IsZero())
	assert.True(NewFromInt(3).Equal(Must("3.00")))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$1250.00", Must("1250").Format())
	assert.Equal(t, "$750.00", Must("750").Format())
	assert.Equal(t, "$3.10", USD.Format(Must("3.1")))
	assert.Equal(t, "$0.13", USD.Format(Must("0.125")))
}

func TestMustPanics(t *testing.T) {
	assert.Panics(t, func() { Must("abc") })
}
