package domain

import (
	"fmt"
	"strings"
)

type Currency string

const (
	CurrencyPKR Currency = "PKR"
	CurrencyUSD Currency = "USD"
	CurrencySAR Currency = "SAR"
)

// BaseCurrency is the currency every listing price is quoted in.
const BaseCurrency = CurrencyPKR

// ExchangeRates maps a display currency to its multiplier against PKR.
var ExchangeRates = map[Currency]float64{
	CurrencyPKR: 1,
	CurrencyUSD: 0.0036,
	CurrencySAR: 0.0135,
}

// Rate returns the multiplier for c. Unknown currencies fall back to 1.
func (c Currency) Rate() float64 {
	if r, ok := ExchangeRates[c]; ok {
		return r
	}
	return 1
}

// Convert converts an amount in the base currency to c.
func (c Currency) Convert(amount float64) float64 {
	return amount * c.Rate()
}

func ParseCurrency(s string) (Currency, error) {
	if s == "" {
		return BaseCurrency, nil
	}
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := ExchangeRates[c]; !ok {
		return "", &ValidationError{Field: "currency", Message: fmt.Sprintf("Unsupported currency %q.", s)}
	}
	return c, nil
}
