// Package currency renders catalog amounts in the shopper's currency.
package currency

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Base is the catalog currency.
const Base = stripe.CurrencyDZD

// Default is the currency shown before the shopper picks one.
const Default = Base

type unit struct {
	symbol   string
	fraction int32
}

var units = map[stripe.Currency]unit{
	stripe.CurrencyDZD: {symbol: "DA", fraction: 0},
	stripe.CurrencyEUR: {symbol: "€", fraction: 2},
	stripe.CurrencyUSD: {symbol: "$", fraction: 2},
}

// Supported lists the selectable currencies, base first.
func Supported() []stripe.Currency {
	return []stripe.Currency{stripe.CurrencyDZD, stripe.CurrencyEUR, stripe.CurrencyUSD}
}

// Parse normalises a user supplied code. "DA" is accepted for the dinar and
// codes are case-insensitive. ok is false for unsupported codes.
func Parse(code string) (stripe.Currency, bool) {
	c := strings.ToLower(strings.TrimSpace(code))
	if c == "da" {
		c = string(stripe.CurrencyDZD)
	}
	cur := stripe.Currency(c)
	_, ok := units[cur]
	return cur, ok
}

// Symbol returns the display symbol of code, or "" when unsupported.
func Symbol(code stripe.Currency) string {
	u, ok := units[code]
	if !ok {
		return ""
	}
	return u.symbol
}

// Rates maps a currency to the number of its units per base unit.
type Rates map[stripe.Currency]decimal.Decimal

// DefaultRates is the fixed conversion table used when none is configured.
func DefaultRates() Rates {
	return Rates{
		stripe.CurrencyDZD: decimal.NewFromInt(1),
		stripe.CurrencyEUR: decimal.RequireFromString("0.0068"),
		stripe.CurrencyUSD: decimal.RequireFromString("0.0074"),
	}
}

// Formatter converts base amounts with a fixed rate table and renders them
// for a locale. It holds no mutable state.
type Formatter struct {
	rates   Rates
	printer *message.Printer
}

func NewFormatter(rates Rates, tag language.Tag) *Formatter {
	if rates == nil {
		rates = DefaultRates()
	}
	return &Formatter{
		rates:   rates,
		printer: message.NewPrinter(tag),
	}
}

// Convert turns a base amount into code, rounded to the currency's fraction
// digits. ok is false when code has no rate.
func (f *Formatter) Convert(amount float64, code string) (decimal.Decimal, bool) {
	cur, ok := Parse(code)
	if !ok {
		return decimal.Zero, false
	}
	rate, ok := f.rates[cur]
	if !ok {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(amount).Mul(rate).Round(units[cur].fraction), true
}

// Format renders amount, given in the base currency, as a display string in
// code: grouped digits, 0 fraction digits for the base currency and 2 for
// the others, followed by the symbol. A missing amount (NaN or ±Inf) or an
// unsupported code yields "".
func (f *Formatter) Format(amount float64, code string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ""
	}
	converted, ok := f.Convert(amount, code)
	if !ok {
		return ""
	}
	cur, _ := Parse(code)
	u := units[cur]

	v, _ := converted.Float64()
	return f.printer.Sprint(number.Decimal(v, number.Scale(int(u.fraction)))) + " " + u.symbol
}

// FormatPtr is Format for an optional amount; nil yields "".
func (f *Formatter) FormatPtr(amount *float64, code string) string {
	if amount == nil {
		return ""
	}
	return f.Format(*amount, code)
}
