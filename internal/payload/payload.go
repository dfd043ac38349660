// Package payload encodes rail-specific payment strings: the text a QR
// renderer turns into a scannable code, or the copy-paste fallback for
// rails without a machine-readable scheme.
//
// Rails fall into four families. EMV rails (Pix, PayNow, PromptPay) emit
// Tag-Length-Value payloads closed by a CRC16 checksum. Link rails (UPI,
// Venmo) emit percent-encoded deep links. Text rails (Swish, Yape) emit
// delimited positional fields. Everything else falls back to the raw
// handle value. Adding a rail scheme means writing one encode function and
// registering it in the schemes table.
package payload

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dividi/dividi/internal/rails"
)

// ErrUnknownRail reports an encode request for a rail id that is not in
// the catalog.
var ErrUnknownRail = errors.New("unknown payment rail")

// Request carries the payee side of a payment instruction. Amount is
// optional: a non-positive amount produces a static payload the payer
// completes in their app. Memo becomes the transaction reference or note
// where the rail has room for one.
type Request struct {
	Key    string
	Name   string
	City   string
	Amount decimal.Decimal
	Memo   string
}

// Family groups rails by payload shape.
type Family int

const (
	// FamilyPlain rails have no payload scheme; the handle value itself
	// is the instruction.
	FamilyPlain Family = iota
	// FamilyEMV rails use TLV payloads with a CRC16 trailer.
	FamilyEMV
	// FamilyLink rails use URL deep links.
	FamilyLink
	// FamilyText rails use delimited positional text.
	FamilyText
)

type scheme struct {
	family Family
	encode func(Request) string
}

var schemes = map[string]scheme{
	"br_pix":       {FamilyEMV, encodePix},
	"sg_paynow":    {FamilyEMV, encodePayNow},
	"th_promptpay": {FamilyEMV, encodePromptPay},
	"in_upi":       {FamilyLink, encodeUPI},
	"us_venmo":     {FamilyLink, encodeVenmo},
	"se_swish":     {FamilyText, encodeSwish},
	"pe_yape":      {FamilyText, encodeYape},
}

// FamilyOf reports which payload family a rail belongs to. Rails without a
// registered scheme are FamilyPlain.
func FamilyOf(railID string) Family {
	if s, ok := schemes[railID]; ok {
		return s.family
	}
	return FamilyPlain
}

// Encode produces the payment string for the given rail. Rails absent from
// the catalog return ErrUnknownRail; catalog rails without a payload
// scheme return the key unchanged for manual copy.
func Encode(railID string, req Request) (string, error) {
	if _, ok := rails.GetRail(railID); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRail, railID)
	}
	s, ok := schemes[railID]
	if !ok {
		return req.Key, nil
	}
	return s.encode(req), nil
}
