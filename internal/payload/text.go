package payload

import (
	"strings"

	"github.com/dividi/dividi/internal/money"
)

// encodeSwish builds the "C:" prefixed Swish QR string:
// C:<467XXXXXXXX>;<amount>;<message>. A zero in the amount slot leaves it
// editable in the Swish app.
func encodeSwish(req Request) string {
	phone := stripPhoneSeparators(req.Key)
	switch {
	case strings.HasPrefix(phone, "0"):
		phone = "46" + phone[1:]
	case strings.HasPrefix(phone, "+"):
		phone = phone[1:]
	}

	var sb strings.Builder
	sb.WriteString("C:")
	sb.WriteString(phone)
	if req.Amount.IsPositive() {
		sb.WriteString(";")
		sb.WriteString(money.FormatAmount(req.Amount))
	} else {
		sb.WriteString(";0")
	}
	if req.Memo != "" {
		sb.WriteString(";")
		sb.WriteString(truncate(req.Memo, 50))
	}
	return sb.String()
}

// encodeYape builds a readable YAPE:<phone>:<name>:<amount> string. Yape
// has no public QR standard; the payer reads the fields and enters them in
// the app by hand.
func encodeYape(req Request) string {
	phone := stripPhoneSeparators(req.Key)
	switch {
	case len(phone) == 9 && strings.HasPrefix(phone, "9"):
		phone = "51" + phone
	case strings.HasPrefix(phone, "0"):
		phone = "51" + phone[1:]
	}

	var sb strings.Builder
	sb.WriteString("YAPE:")
	sb.WriteString(phone)
	if req.Name != "" {
		sb.WriteString(":")
		sb.WriteString(truncate(req.Name, 30))
	}
	if req.Amount.IsPositive() {
		sb.WriteString(":")
		sb.WriteString(money.FormatAmount(req.Amount))
	}
	return sb.String()
}
