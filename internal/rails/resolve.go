package rails

import (
	"sort"

	"github.com/dividi/dividi/internal/models"
)

// Resolved pairs the chosen rail with the user's registered value for it.
type Resolved struct {
	Rail  Rail
	Value string
}

// ResolveHandle picks the best way to pay a user in the given currency:
// the highest-priority catalog rail that both supports the currency and
// has a handle registered by the user. Handles referencing rails missing
// from the catalog are ignored rather than failing the resolution.
//
// Ties on priority go to the rail declared first in the catalog. The
// second return value is false when the user has no usable handle.
func ResolveHandle(user models.User, currency string) (Resolved, bool) {
	if len(user.PaymentHandles) == 0 {
		return Resolved{}, false
	}

	type candidate struct {
		rail  Rail
		value string
		order int
	}

	var candidates []candidate
	for order, rail := range catalog {
		if !rail.Supports(currency) {
			continue
		}
		for _, h := range user.PaymentHandles {
			if h.RailID == rail.ID {
				candidates = append(candidates, candidate{rail: rail, value: h.Value, order: order})
				break
			}
		}
	}
	if len(candidates) == 0 {
		return Resolved{}, false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].rail.Priority < candidates[j].rail.Priority
	})

	best := candidates[0]
	return Resolved{Rail: best.rail, Value: best.value}, true
}
