package models

import "github.com/shopspring/decimal"

// Debt is a directed payment instruction derived from a group's expense
// list: From owes To the given positive amount. Debts are ephemeral and
// recomputed on demand; they are never stored.
type Debt struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}
