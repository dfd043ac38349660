package models

// GroupType categorizes a group for display purposes only.
type GroupType string

const (
	GroupTrip   GroupType = "trip"
	GroupHome   GroupType = "home"
	GroupEvent  GroupType = "event"
	GroupCouple GroupType = "couple"
	GroupOther  GroupType = "other"
)

// Group represents a set of people sharing expenses in one currency.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string `json:"id"`

	// Name is the display name of the group (e.g. "Roommates", "Lisbon Trip").
	Name string `json:"name"`

	// Type is a display hint, never used in computation.
	Type GroupType `json:"type,omitempty"`

	// Members are the users participating in this group. Member order is
	// significant: it seeds the deterministic ordering of debt netting.
	Members []User `json:"members"`

	// Currency is the ISO 4217 alphabetic code all amounts are in.
	// It never converts anything; it only drives formatting and rail
	// selection.
	Currency string `json:"currency"`
}

// MemberIDs returns the member ids in declaration order.
func (g Group) MemberIDs() []string {
	ids := make([]string, len(g.Members))
	for i, m := range g.Members {
		ids[i] = m.ID
	}
	return ids
}

// Member returns the member with the given id, if present.
func (g Group) Member(id string) (User, bool) {
	for _, m := range g.Members {
		if m.ID == id {
			return m, true
		}
	}
	return User{}, false
}
