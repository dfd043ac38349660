package models

import "github.com/shopspring/decimal"

// SplitMode is the policy used to divide an expense among participants.
type SplitMode string

const (
	SplitEqual      SplitMode = "equal"
	SplitExact      SplitMode = "exact"
	SplitPercentage SplitMode = "percentage"
	SplitShares     SplitMode = "shares"
	SplitItemized   SplitMode = "itemized"
)

// ExpenseKind distinguishes ordinary expenses from settlement payments.
type ExpenseKind string

const (
	KindExpense    ExpenseKind = "expense"
	KindSettlement ExpenseKind = "settlement"
)

// ExpenseStatus tracks settlement confirmation. It is only meaningful for
// settlement-kind expenses: a pending settlement is a claim, not yet a
// netting fact.
type ExpenseStatus string

const (
	StatusPending   ExpenseStatus = "pending"
	StatusConfirmed ExpenseStatus = "confirmed"
)

// ExpenseCategory is a display label for an expense.
type ExpenseCategory string

const (
	CategoryFood          ExpenseCategory = "food"
	CategoryTransport     ExpenseCategory = "transport"
	CategoryAccommodation ExpenseCategory = "accommodation"
	CategoryEntertainment ExpenseCategory = "entertainment"
	CategoryUtilities     ExpenseCategory = "utilities"
	CategoryOther         ExpenseCategory = "other"
)

// Payment records who fronted money for an expense and how much.
type Payment struct {
	UserID string          `json:"userId"`
	Amount decimal.Decimal `json:"amount"`
}

// Split records who owes part of an expense and how much. Amounts are
// never negative; the debit direction is implied by the role.
type Split struct {
	UserID string          `json:"userId"`
	Amount decimal.Decimal `json:"amount"`

	// ManualValue keeps the raw policy input (a weight, a percentage or an
	// exact value, depending on the split mode) so the edit screens can
	// re-render what the user typed.
	ManualValue decimal.Decimal `json:"manualValue,omitempty"`
}

// ReceiptItem is one line of an itemized receipt.
type ReceiptItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`

	// AssignedTo lists the user ids sharing this item. The item's cost
	// (price x quantity) is divided evenly among them.
	AssignedTo []string `json:"assignedTo"`
}

// Cost returns price x quantity.
func (it ReceiptItem) Cost() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Expense is an amount spent on behalf of a group, or a settlement payment
// between two members. The caller keeps sum(Payments) and sum(Splits) each
// within 0.05 of Amount; the calculator computes from whatever it is given
// and never rejects inconsistent input.
type Expense struct {
	ID          string          `json:"id"`
	GroupID     string          `json:"groupId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date,omitempty"`
	Category    ExpenseCategory `json:"category,omitempty"`
	Kind        ExpenseKind     `json:"kind"`

	Payments  []Payment `json:"payments"`
	SplitMode SplitMode `json:"splitMode"`
	Splits    []Split   `json:"splits"`

	// Items is set only when SplitMode is itemized.
	Items []ReceiptItem `json:"items,omitempty"`

	Status ExpenseStatus `json:"status,omitempty"`

	// DeletedAt is an RFC 3339 timestamp set by the persistence layer on
	// soft deletion. A non-empty value excludes the expense from every
	// computation.
	DeletedAt string `json:"deletedAt,omitempty"`
}

// Deleted reports whether the expense was soft-deleted.
func (e Expense) Deleted() bool { return e.DeletedAt != "" }

// CountsTowardBalances reports whether the expense participates in debt
// netting. Soft-deleted expenses never do; settlements only once confirmed.
func (e Expense) CountsTowardBalances() bool {
	if e.Deleted() {
		return false
	}
	if e.Kind == KindSettlement && e.Status == StatusPending {
		return false
	}
	return true
}
