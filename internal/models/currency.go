package models

import "github.com/shopspring/decimal"

// Currency describes one supported ISO 4217 currency. The table drives
// formatting and rail selection only; amounts are never converted.
type Currency struct {
	Code     string `json:"code"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals int32  `json:"decimals"`
}

// currencies lists every currency a group can be denominated in, matching
// the markets covered by the rails catalog.
var currencies = []Currency{
	{Code: "BRL", Symbol: "R$", Name: "Brazilian Real", Decimals: 2},
	{Code: "USD", Symbol: "$", Name: "US Dollar", Decimals: 2},
	{Code: "EUR", Symbol: "€", Name: "Euro", Decimals: 2},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar", Decimals: 2},
	{Code: "CLP", Symbol: "$", Name: "Chilean Peso", Decimals: 0},
	{Code: "GBP", Symbol: "£", Name: "Pound Sterling", Decimals: 2},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee", Decimals: 2},
	{Code: "SGD", Symbol: "S$", Name: "Singapore Dollar", Decimals: 2},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar", Decimals: 2},
	{Code: "THB", Symbol: "฿", Name: "Thai Baht", Decimals: 2},
	{Code: "SEK", Symbol: "kr", Name: "Swedish Krona", Decimals: 2},
	{Code: "PLN", Symbol: "zł", Name: "Polish Złoty", Decimals: 2},
	{Code: "MXN", Symbol: "$", Name: "Mexican Peso", Decimals: 2},
	{Code: "PEN", Symbol: "S/", Name: "Peruvian Sol", Decimals: 2},
	{Code: "COP", Symbol: "$", Name: "Colombian Peso", Decimals: 0},
}

var currencyByCode = func() map[string]Currency {
	m := make(map[string]Currency, len(currencies))
	for _, c := range currencies {
		m[c.Code] = c
	}
	return m
}()

// GetCurrency looks up a currency by its alphabetic code.
func GetCurrency(code string) (Currency, bool) {
	c, ok := currencyByCode[code]
	return c, ok
}

// Currencies returns the supported currencies in catalog order.
func Currencies() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}

// FormatCurrency renders an amount with the currency's symbol and its
// ISO 4217 minor-unit count. Unknown codes fall back to the bare code and
// two decimals.
func FormatCurrency(amount decimal.Decimal, code string) string {
	c, ok := currencyByCode[code]
	if !ok {
		return code + " " + amount.StringFixed(2)
	}
	return c.Symbol + " " + amount.StringFixed(c.Decimals)
}
