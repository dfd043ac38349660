package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dividi/dividi/internal/models"
	"github.com/dividi/dividi/internal/money"
)

// memberBalance is one accumulator slot. Slots are kept in a slice, seeded
// in group-member order, so the debtor/creditor ordering below is a pure
// function of the input and never depends on map iteration.
type memberBalance struct {
	id     string
	amount decimal.Decimal
}

// ComputeDebts derives the minimal settlement plan for a group: every
// member's net balance over the expense list, reduced to at most
// len(members)-1 directed debts by greedy matching.
//
// Soft-deleted expenses and pending settlements are skipped. Payments
// credit the payer, splits debit the splitter. Participant ids that are
// not group members are accumulated anyway rather than rejected; the
// expense list is the source of truth.
//
// The result is net settlement, not a transaction ledger: emitted debts
// need not match the original pairwise flows, only the net balances.
func ComputeDebts(group models.Group, expenses []models.Expense) []models.Debt {
	balances := make([]memberBalance, 0, len(group.Members))
	index := make(map[string]int, len(group.Members))

	slot := func(id string) *memberBalance {
		if i, ok := index[id]; ok {
			return &balances[i]
		}
		index[id] = len(balances)
		balances = append(balances, memberBalance{id: id})
		return &balances[len(balances)-1]
	}

	for _, m := range group.Members {
		slot(m.ID)
	}

	for _, expense := range expenses {
		if !expense.CountsTowardBalances() {
			continue
		}
		for _, payment := range expense.Payments {
			s := slot(payment.UserID)
			s.amount = s.amount.Add(payment.Amount)
		}
		for _, split := range expense.Splits {
			s := slot(split.UserID)
			s.amount = s.amount.Sub(split.Amount)
		}
	}

	var debtors, creditors []memberBalance
	for _, b := range balances {
		b.amount = money.RoundCents(b.amount)
		switch {
		case b.amount.LessThan(money.Cent.Neg()):
			debtors = append(debtors, b)
		case b.amount.GreaterThan(money.Cent):
			creditors = append(creditors, b)
		}
		// Anyone within a cent of zero is settled and drops out here.
	}

	// Most negative debtor first, most positive creditor first. Stable
	// sorts keep the member-order tie-break deterministic.
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].amount.LessThan(debtors[j].amount)
	})
	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].amount.GreaterThan(creditors[j].amount)
	})

	var debts []models.Debt
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		amount := money.Min(debtor.amount.Abs(), creditor.amount)
		if amount.IsPositive() {
			debts = append(debts, models.Debt{
				From:   debtor.id,
				To:     creditor.id,
				Amount: money.RoundCents(amount),
			})
		}

		debtor.amount = debtor.amount.Add(amount)
		creditor.amount = creditor.amount.Sub(amount)

		if money.WithinCent(debtor.amount) {
			i++
		}
		if money.WithinCent(creditor.amount) {
			j++
		}
	}

	return debts
}
