package money

// Currency describes how amounts are displayed.
type Currency struct {
	Code     string // 3-letter ISO 4217 code
	Symbol   string // printed before the amount
	Decimals int32  // fractional digits shown
}

// USD is the US dollar, the currency of every teller balance.
var USD = Currency{Code: "USD", Symbol: "$", Decimals: 2}

// DefaultCurrency is used by Amount.Format and Amount.String.
var DefaultCurrency = USD

// Format renders a with the currency symbol and exactly c.Decimals fractional
// digits, rounding half away from zero.
func (c Currency) Format(a Amount) string {
	return c.Symbol + a.d.StringFixed(c.Decimals)
}
