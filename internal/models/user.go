package models

// PaymentHandle is a user's registered identifier for one payment rail,
// e.g. a Pix key, a UPI VPA or a Swish phone number. The value is free
// text; whether it is actually valid for the rail is not checked here.
type PaymentHandle struct {
	// RailID references an entry in the rails catalog.
	RailID string `json:"railId"`

	// Value is the raw identifier as the user typed it.
	Value string `json:"value"`

	// Primary marks the preferred handle when a user registers more than
	// one for the same rail.
	Primary bool `json:"isPrimary,omitempty"`
}

// User represents a group member.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is optional and only used by the surrounding system.
	Email string `json:"email,omitempty"`

	// Avatar is an optional picture URL.
	Avatar string `json:"avatar,omitempty"`

	// DefaultCurrency is the ISO 4217 alphabetic code the user prefers.
	DefaultCurrency string `json:"defaultCurrency,omitempty"`

	// PaymentHandles lists every rail identifier the user registered.
	// There is no flat per-rail field on the user; handles are the only
	// payment identity model.
	PaymentHandles []PaymentHandle `json:"paymentHandles,omitempty"`
}
