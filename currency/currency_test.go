package currency

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v79"
	"golang.org/x/text/language"
)

func newTestFormatter() *Formatter {
	return NewFormatter(DefaultRates(), language.English)
}

func TestFormat(t *testing.T) {
	f := newTestFormatter()

	tests := []struct {
		name   string
		amount float64
		code   string
		want   string
	}{
		{"base currency has no fraction digits", 100, "DZD", "100 DA"},
		{"DA alias", 100, "DA", "100 DA"},
		{"lower case code", 100, "dzd", "100 DA"},
		{"euro conversion", 100, "EUR", "0.68 €"},
		{"dollar conversion", 100, "USD", "0.74 $"},
		{"grouping", 1234, "DZD", "1,234 DA"},
		{"base rounds half away from zero", 1234.5, "DZD", "1,235 DA"},
		{"zero", 0, "EUR", "0.00 €"},
		{"unknown code", 100, "GBP", ""},
		{"empty code", 100, "", ""},
		{"missing amount", math.NaN(), "DZD", ""},
		{"infinite amount", math.Inf(1), "EUR", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(tt.amount, tt.code))
		})
	}
}

func TestFormatPtr(t *testing.T) {
	f := newTestFormatter()
	assert.Equal(t, "", f.FormatPtr(nil, "DZD"))

	v := 80.0
	assert.Equal(t, "80 DA", f.FormatPtr(&v, "DZD"))
}

func TestConvert(t *testing.T) {
	f := newTestFormatter()

	v, ok := f.Convert(530, "EUR")
	assert.True(t, ok)
	assert.Equal(t, "3.60", v.StringFixed(2))

	_, ok = f.Convert(530, "JPY")
	assert.False(t, ok)
}

func TestFormatter_CustomRates(t *testing.T) {
	f := NewFormatter(Rates{stripe.CurrencyDZD: DefaultRates()[stripe.CurrencyDZD]}, language.English)

	assert.Equal(t, "10 DA", f.Format(10, "DZD"))
	// supported but not priced
	assert.Equal(t, "", f.Format(10, "EUR"))
}

func TestParse(t *testing.T) {
	cur, ok := Parse(" Da ")
	assert.True(t, ok)
	assert.Equal(t, stripe.CurrencyDZD, cur)

	cur, ok = Parse("EUR")
	assert.True(t, ok)
	assert.Equal(t, stripe.CurrencyEUR, cur)

	_, ok = Parse("btc")
	assert.False(t, ok)
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "DA", Symbol(stripe.CurrencyDZD))
	assert.Equal(t, "€", Symbol(stripe.CurrencyEUR))
	assert.Equal(t, "", Symbol(stripe.CurrencyJPY))
	assert.Len(t, Supported(), 3)
}
