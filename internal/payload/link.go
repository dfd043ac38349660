package payload

import (
	"net/url"
	"strings"

	"github.com/dividi/dividi/internal/money"
)

// escapeQuery percent-encodes a query value. QueryEscape's "+" for spaces
// confuses some wallet apps, so spaces become %20.
func escapeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// encodeUPI builds an upi://pay deep link. Parameter order matters to some
// Indian banking apps, so the URL is assembled by hand instead of through
// url.Values (which sorts keys).
func encodeUPI(req Request) string {
	vpa := strings.TrimSpace(req.Key)
	name := orDefault(truncate(req.Name, 50), "User")

	var sb strings.Builder
	sb.WriteString("upi://pay?pa=")
	sb.WriteString(escapeQuery(vpa))
	sb.WriteString("&pn=")
	sb.WriteString(escapeQuery(name))
	if req.Amount.IsPositive() {
		sb.WriteString("&am=")
		sb.WriteString(money.FormatAmount(req.Amount))
	}
	sb.WriteString("&cu=INR")
	if req.Memo != "" {
		sb.WriteString("&tn=")
		sb.WriteString(escapeQuery(truncate(req.Memo, 50)))
	}
	return sb.String()
}

// encodeVenmo builds a venmo://paycharge deep link against the user's
// @username handle.
func encodeVenmo(req Request) string {
	username := strings.TrimPrefix(req.Key, "@")

	var sb strings.Builder
	sb.WriteString("venmo://paycharge?txn=pay&recipients=")
	sb.WriteString(escapeQuery(username))
	if req.Amount.IsPositive() {
		sb.WriteString("&amount=")
		sb.WriteString(money.FormatAmount(req.Amount))
	}
	if req.Memo != "" {
		sb.WriteString("&note=")
		sb.WriteString(escapeQuery(truncate(req.Memo, 280)))
	}
	return sb.String()
}
