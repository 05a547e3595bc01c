package models

import "github.com/shopspring/decimal"

// DefaultAmount is the amount shown when the converter opens.
const DefaultAmount = "100"

// NotANumber is rendered in place of a converted amount that cannot be
// computed (non-numeric amount or missing rate).
const NotANumber = "NaN"

// ConversionStatus is the lifecycle state of a [ConversionResult].
type ConversionStatus int

const (
	StatusIdle ConversionStatus = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s ConversionStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// ConversionRequest is the user's current amount and currency pair.
// Amount is kept as typed; nothing guarantees it is numeric.
type ConversionRequest struct {
	Amount string
	From   Currency
	To     Currency
}

// DefaultConversionRequest returns the pair the converter starts with.
func DefaultConversionRequest() ConversionRequest {
	return ConversionRequest{Amount: DefaultAmount, From: USD, To: EUR}
}

// ConversionResult is derived from a [ConversionRequest] and the latest rate
// lookup. It is replaced, never edited, whenever the request changes.
type ConversionResult struct {
	// Rate is invalid when the provider table had no entry for the target
	// currency or no lookup has completed yet.
	Rate decimal.NullDecimal
	// ConvertedAmount is amount*rate rounded half-to-even to two places,
	// [NotANumber], or empty before the first lookup.
	ConvertedAmount string
	Status          ConversionStatus
	// Err holds the last lookup failure while Status is StatusFailed.
	Err error
	// Request is the input Rate and ConvertedAmount were computed for. It
	// lags behind the current request while a newer lookup is loading or
	// after one failed.
	Request ConversionRequest
}

// RateTable is the rate-provider response for one base currency.
type RateTable struct {
	Base  string             `json:"base"`
	Date  string             `json:"date,omitempty"`
	Rates map[string]float64 `json:"rates"`
}

// Rate returns the rate for to, reporting whether the table carries it.
func (t RateTable) Rate(to Currency) (float64, bool) {
	r, ok := t.Rates[string(to)]
	return r, ok
}
