package calculator

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dividi/dividi/internal/models"
)

func group(memberIDs ...string) models.Group {
	return models.Group{
		ID:       "g1",
		Name:     "Trip",
		Members:  users(memberIDs...),
		Currency: "BRL",
	}
}

func equalExpense(payer string, total string, splitAmong ...string) models.Expense {
	totalDec := dec(total)
	splits := BuildSplits(SplitInput{
		Total:          totalDec,
		Users:          users(splitAmong...),
		ParticipantIDs: splitAmong,
		Mode:           models.SplitEqual,
	})
	return models.Expense{
		ID:        "e-" + payer + total,
		GroupID:   "g1",
		Amount:    totalDec,
		Kind:      models.KindExpense,
		Payments:  []models.Payment{{UserID: payer, Amount: totalDec}},
		SplitMode: models.SplitEqual,
		Splits:    splits,
	}
}

func findDebt(t *testing.T, debts []models.Debt, from, to string) models.Debt {
	t.Helper()
	for _, d := range debts {
		if d.From == from && d.To == to {
			return d
		}
	}
	t.Fatalf("no debt %s -> %s in %+v", from, to, debts)
	return models.Debt{}
}

func TestComputeDebts(t *testing.T) {
	t.Run("single payer equal split", func(t *testing.T) {
		// A fronts 90 split equally three ways: A is +60, B and C are -30.
		g := group("a", "b", "c")
		debts := ComputeDebts(g, []models.Expense{equalExpense("a", "90.00", "a", "b", "c")})

		if len(debts) != 2 {
			t.Fatalf("got %d debts, want 2: %+v", len(debts), debts)
		}
		for _, from := range []string{"b", "c"} {
			d := findDebt(t, debts, from, "a")
			if got := d.Amount.StringFixed(2); got != "30.00" {
				t.Errorf("%s -> a = %s, want 30.00", from, got)
			}
		}
	})

	t.Run("empty group and no expenses settle to nothing", func(t *testing.T) {
		if debts := ComputeDebts(models.Group{}, nil); len(debts) != 0 {
			t.Errorf("empty group: got %+v, want none", debts)
		}
		if debts := ComputeDebts(group("a", "b"), nil); len(debts) != 0 {
			t.Errorf("no expenses: got %+v, want none", debts)
		}
	})

	t.Run("soft-deleted expenses are skipped", func(t *testing.T) {
		g := group("a", "b")
		e := equalExpense("a", "50.00", "a", "b")
		e.DeletedAt = "2026-08-01T12:00:00Z"
		if debts := ComputeDebts(g, []models.Expense{e}); len(debts) != 0 {
			t.Errorf("got %+v, want none", debts)
		}
	})

	t.Run("pending settlements are claims, not netting facts", func(t *testing.T) {
		g := group("a", "b")
		expense := equalExpense("a", "50.00", "a", "b")

		settlement := models.Expense{
			ID:        "s1",
			GroupID:   "g1",
			Amount:    dec("25.00"),
			Kind:      models.KindSettlement,
			Status:    models.StatusPending,
			Payments:  []models.Payment{{UserID: "b", Amount: dec("25.00")}},
			SplitMode: models.SplitExact,
			Splits:    []models.Split{{UserID: "a", Amount: dec("25.00")}},
		}

		debts := ComputeDebts(g, []models.Expense{expense, settlement})
		if len(debts) != 1 {
			t.Fatalf("pending settlement should not clear the debt: %+v", debts)
		}
		if got := findDebt(t, debts, "b", "a").Amount.StringFixed(2); got != "25.00" {
			t.Errorf("b -> a = %s, want 25.00", got)
		}

		settlement.Status = models.StatusConfirmed
		if debts := ComputeDebts(g, []models.Expense{expense, settlement}); len(debts) != 0 {
			t.Errorf("confirmed settlement should clear the debt: %+v", debts)
		}
	})

	t.Run("unknown participant ids are accumulated, not rejected", func(t *testing.T) {
		g := group("a")
		e := models.Expense{
			ID:        "e1",
			GroupID:   "g1",
			Amount:    dec("40.00"),
			Kind:      models.KindExpense,
			Payments:  []models.Payment{{UserID: "a", Amount: dec("40.00")}},
			SplitMode: models.SplitEqual,
			Splits: []models.Split{
				{UserID: "a", Amount: dec("20.00")},
				{UserID: "stranger", Amount: dec("20.00")},
			},
		}

		debts := ComputeDebts(g, []models.Expense{e})
		if len(debts) != 1 {
			t.Fatalf("got %d debts, want 1: %+v", len(debts), debts)
		}
		if got := findDebt(t, debts, "stranger", "a").Amount.StringFixed(2); got != "20.00" {
			t.Errorf("stranger -> a = %s, want 20.00", got)
		}
	})

	t.Run("members within a cent of zero are settled", func(t *testing.T) {
		g := group("a", "b")
		e := models.Expense{
			ID:        "e1",
			GroupID:   "g1",
			Amount:    dec("0.01"),
			Kind:      models.KindExpense,
			Payments:  []models.Payment{{UserID: "a", Amount: dec("0.01")}},
			SplitMode: models.SplitExact,
			Splits:    []models.Split{{UserID: "b", Amount: dec("0.01")}},
		}
		if debts := ComputeDebts(g, []models.Expense{e}); len(debts) != 0 {
			t.Errorf("one-cent imbalance should be absorbed: %+v", debts)
		}
	})

	t.Run("greedy matching pairs largest debtor with largest creditor", func(t *testing.T) {
		g := group("a", "b", "c", "d")
		expenses := []models.Expense{
			equalExpense("a", "100.00", "a", "b", "c", "d"), // a +75, others -25
			equalExpense("b", "40.00", "a", "b", "c", "d"),  // b +30-10 net
		}

		debts := ComputeDebts(g, expenses)
		// Balances: a +65, b +5, c -35, d -35. Minimal plan is 3 debts.
		if len(debts) != 3 {
			t.Fatalf("got %d debts, want 3: %+v", len(debts), debts)
		}
		if d := debts[0]; d.From != "c" || d.To != "a" || d.Amount.StringFixed(2) != "35.00" {
			t.Errorf("first debt = %+v, want c -> a 35.00", d)
		}
	})
}

func TestComputeDebtsConservation(t *testing.T) {
	// Sum of debts received by each creditor equals their net positive
	// balance, and symmetrically for debtors.
	g := group("a", "b", "c", "d", "e")
	expenses := []models.Expense{
		equalExpense("a", "123.45", "a", "b", "c"),
		equalExpense("b", "67.89", "b", "c", "d", "e"),
		equalExpense("c", "10.01", "a", "e"),
		equalExpense("e", "55.55", "a", "b", "c", "d", "e"),
	}

	balances := map[string]decimal.Decimal{}
	for _, e := range expenses {
		for _, p := range e.Payments {
			balances[p.UserID] = balances[p.UserID].Add(p.Amount)
		}
		for _, s := range e.Splits {
			balances[s.UserID] = balances[s.UserID].Sub(s.Amount)
		}
	}

	flows := map[string]decimal.Decimal{}
	for _, d := range ComputeDebts(g, expenses) {
		flows[d.From] = flows[d.From].Sub(d.Amount)
		flows[d.To] = flows[d.To].Add(d.Amount)
	}

	tolerance := dec("0.01")
	for id, bal := range balances {
		if bal.Sub(flows[id]).Abs().GreaterThan(tolerance) {
			t.Errorf("%s: balance %s but settled flow %s", id, bal, flows[id])
		}
	}
}

func TestComputeDebtsDeterministic(t *testing.T) {
	g := group("a", "b", "c", "d")
	expenses := []models.Expense{
		equalExpense("a", "60.00", "a", "b", "c", "d"),
		equalExpense("b", "60.00", "a", "b", "c", "d"),
	}

	// a and b tie at +30, c and d tie at -30; the member order breaks both
	// ties the same way on every run.
	first := ComputeDebts(g, expenses)
	for run := 0; run < 10; run++ {
		again := ComputeDebts(g, expenses)
		if len(again) != len(first) {
			t.Fatalf("run %d: %d debts vs %d", run, len(again), len(first))
		}
		for i := range first {
			if first[i].From != again[i].From || first[i].To != again[i].To || !first[i].Amount.Equal(again[i].Amount) {
				t.Fatalf("run %d: debt[%d] %+v vs %+v", run, i, first[i], again[i])
			}
		}
	}
}

func TestComputeDebtsDoesNotMutateInputs(t *testing.T) {
	g := group("a", "b")
	e := equalExpense("a", "50.00", "a", "b")
	before := e.Splits[0].Amount.String()

	_ = ComputeDebts(g, []models.Expense{e})

	if e.Splits[0].Amount.String() != before {
		t.Errorf("input split mutated: %s -> %s", before, e.Splits[0].Amount)
	}
}
