package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/dividi/dividi/internal/models"
	"github.com/dividi/dividi/internal/money"
)

// correctionEpsilon is the threshold below which a rounding residual is
// considered noise and left uncorrected.
var correctionEpsilon = decimal.New(1, -3) // 0.001

// SplitInput carries everything a split policy may need. Values maps a
// user id to that user's raw policy input: a percentage for the percentage
// mode, a weight for shares, an exact amount for exact. Items and
// ServiceFeePercent are only read in itemized mode.
type SplitInput struct {
	Total             decimal.Decimal
	Users             []models.User
	ParticipantIDs    []string
	Mode              models.SplitMode
	Values            map[string]decimal.Decimal
	Items             []models.ReceiptItem
	ServiceFeePercent decimal.Decimal
}

// BuildSplits divides an expense total into per-participant shares under
// the requested policy. For every mode except exact and itemized the
// returned amounts sum to Total exactly, to the cent: shares are floored
// and the residual cents are placed deterministically, so identical inputs
// always produce identical outputs.
//
// A non-positive total or an empty participant list yields an empty result,
// not an error; the function is called continuously from interactive
// editing and must degrade quietly.
func BuildSplits(in SplitInput) []models.Split {
	if in.Mode == models.SplitItemized && len(in.Items) > 0 {
		return buildItemizedSplits(in)
	}

	if !in.Total.IsPositive() || len(in.ParticipantIDs) == 0 {
		return nil
	}

	wanted := make(map[string]bool, len(in.ParticipantIDs))
	for _, id := range in.ParticipantIDs {
		wanted[id] = true
	}

	// Participants keep the Users order, which fixes where residual cents
	// land.
	var splits []models.Split
	for _, u := range in.Users {
		if !wanted[u.ID] {
			continue
		}
		splits = append(splits, models.Split{
			UserID:      u.ID,
			ManualValue: in.Values[u.ID],
		})
	}
	if len(splits) == 0 {
		return nil
	}

	switch in.Mode {
	case models.SplitEqual:
		applyEqual(splits, in.Total)
	case models.SplitPercentage:
		applyPercentage(splits, in.Total, in.Values)
	case models.SplitShares:
		applyShares(splits, in.Total, in.Values)
	case models.SplitExact:
		for i := range splits {
			splits[i].Amount = in.Values[splits[i].UserID]
		}
	}

	for i := range splits {
		splits[i].Amount = money.RoundCents(splits[i].Amount)
	}
	return splits
}

// applyEqual gives everyone the floored per-head share, then hands the
// leftover cents out one at a time in participant order.
func applyEqual(splits []models.Split, total decimal.Decimal) {
	n := decimal.NewFromInt(int64(len(splits)))
	base := money.FloorCents(total.Div(n))
	remainder := total.Sub(base.Mul(n))

	for i := range splits {
		splits[i].Amount = base
		if remainder.GreaterThanOrEqual(money.Cent) {
			splits[i].Amount = splits[i].Amount.Add(money.Cent)
			remainder = remainder.Sub(money.Cent)
		}
	}
}

// applyPercentage floors each percentage share, then adds the entire
// residual to the first participant. The single-correction behavior is the
// contract; it is deliberately not the cent-by-cent loop the other modes
// use.
func applyPercentage(splits []models.Split, total decimal.Decimal, values map[string]decimal.Decimal) {
	hundred := decimal.NewFromInt(100)
	allocated := decimal.Zero
	for i := range splits {
		percent := values[splits[i].UserID]
		amount := money.FloorCents(total.Mul(percent).Div(hundred))
		splits[i].Amount = amount
		allocated = allocated.Add(amount)
	}

	if diff := total.Sub(allocated); diff.Abs().GreaterThan(correctionEpsilon) {
		splits[0].Amount = splits[0].Amount.Add(diff)
	}
}

// applyShares weights the total by each participant's share count
// (defaulting to 1 when no value was supplied) and distributes residual
// cents in participant order. A zero total weight leaves every amount at
// zero.
func applyShares(splits []models.Split, total decimal.Decimal, values map[string]decimal.Decimal) {
	one := decimal.NewFromInt(1)
	weight := func(id string) decimal.Decimal {
		if w, ok := values[id]; ok {
			return w
		}
		return one
	}

	totalShares := decimal.Zero
	for i := range splits {
		totalShares = totalShares.Add(weight(splits[i].UserID))
	}
	if totalShares.IsZero() {
		return
	}

	unit := total.Div(totalShares)
	allocated := decimal.Zero
	for i := range splits {
		w := weight(splits[i].UserID)
		amount := money.FloorCents(unit.Mul(w))
		splits[i].Amount = amount
		splits[i].ManualValue = w
		allocated = allocated.Add(amount)
	}

	diff := total.Sub(allocated)
	for i := 0; diff.GreaterThanOrEqual(money.Cent) && i < len(splits); i++ {
		splits[i].Amount = splits[i].Amount.Add(money.Cent)
		diff = diff.Sub(money.Cent)
	}
}

// buildItemizedSplits walks the receipt instead of dividing an external
// total: each item's cost is shared at full precision among its assignees,
// the service fee scales every accumulated amount, and only participants
// who owe something appear in the output. The expense amount is therefore
// derived from the items, not supplied by the caller.
func buildItemizedSplits(in SplitInput) []models.Split {
	totals := make(map[string]decimal.Decimal, len(in.Users))
	for _, u := range in.Users {
		totals[u.ID] = decimal.Zero
	}

	for _, item := range in.Items {
		if len(item.AssignedTo) == 0 {
			continue
		}
		perPerson := item.Cost().Div(decimal.NewFromInt(int64(len(item.AssignedTo))))
		for _, id := range item.AssignedTo {
			if current, ok := totals[id]; ok {
				totals[id] = current.Add(perPerson)
			}
		}
	}

	feeMultiplier := decimal.NewFromInt(1)
	if in.ServiceFeePercent.IsPositive() {
		feeMultiplier = feeMultiplier.Add(in.ServiceFeePercent.Div(decimal.NewFromInt(100)))
	}

	var splits []models.Split
	for _, u := range in.Users {
		amount := money.RoundCents(totals[u.ID].Mul(feeMultiplier))
		if !amount.IsPositive() {
			continue
		}
		splits = append(splits, models.Split{UserID: u.ID, Amount: amount})
	}
	return splits
}
