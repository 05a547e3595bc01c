package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedCurrency is returned by [ParseCurrency] for codes outside the
// supported set.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// Currency is an ISO 4217 code from the fixed set the converter supports.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	INR Currency = "INR"
	AUD Currency = "AUD"
	CAD Currency = "CAD"
	CHF Currency = "CHF"
	CNY Currency = "CNY"
)

// SupportedCurrencies lists every selectable currency in display order.
var SupportedCurrencies = []Currency{USD, EUR, GBP, JPY, INR, AUD, CAD, CHF, CNY}

// ParseCurrency normalises s (trimmed, upper-cased) and returns the matching
// [Currency]. Codes outside [SupportedCurrencies] yield [ErrUnsupportedCurrency].
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsSupported() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, s)
	}
	return c, nil
}

// IsSupported reports whether c belongs to [SupportedCurrencies].
func (c Currency) IsSupported() bool {
	return c.Index() >= 0
}

// Index returns the position of c in [SupportedCurrencies], or -1.
func (c Currency) Index() int {
	for i, s := range SupportedCurrencies {
		if s == c {
			return i
		}
	}
	return -1
}

// Next returns the currency that follows c in display order, wrapping around.
func (c Currency) Next() Currency {
	return c.shift(1)
}

// Prev returns the currency that precedes c in display order, wrapping around.
func (c Currency) Prev() Currency {
	return c.shift(-1)
}

func (c Currency) shift(step int) Currency {
	n := len(SupportedCurrencies)
	idx := c.Index()
	if idx < 0 {
		return SupportedCurrencies[0]
	}
	return SupportedCurrencies[((idx+step)%n+n)%n]
}

func (c Currency) String() string {
	return string(c)
}

// JoinCurrencies renders the supported set as "USD, EUR, ...".
func JoinCurrencies() string {
	codes := make([]string, len(SupportedCurrencies))
	for i, c := range SupportedCurrencies {
		codes[i] = string(c)
	}
	return strings.Join(codes, ", ")
}
