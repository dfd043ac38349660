package payload

import (
	"regexp"
	"strings"

	"github.com/dividi/dividi/internal/money"
)

// EMV tag numbers shared by every BR-Code-style payload.
const (
	tagPayloadFormat    = "00"
	tagInitiationMethod = "01"
	tagMerchantCategory = "52"
	tagCurrency         = "53"
	tagAmount           = "54"
	tagCountry          = "58"
	tagMerchantName     = "59"
	tagMerchantCity     = "60"
	tagAdditionalData   = "62"
)

// encodePix builds the official Pix BR Code. Without an amount the result
// is a static QR the payer fills in; with one it is a one-shot charge.
func encodePix(req Request) string {
	key := strings.TrimSpace(req.Key)
	name := orDefault(truncate(stripDiacritics(req.Name), 25), "DIVIDI USER")
	city := orDefault(truncate(stripDiacritics(req.City), 15), "BRASILIA")
	txID := orDefault(truncate(alphanumeric(stripDiacritics(req.Memo)), 25), "***")

	var b tlvBuilder
	b.add(tagPayloadFormat, "01")

	merchant := field("00", "BR.GOV.BCB.PIX") + field("01", key)
	b.add("26", merchant)

	b.add(tagMerchantCategory, "0000")
	b.add(tagCurrency, "986") // BRL
	if req.Amount.IsPositive() {
		b.add(tagAmount, money.FormatAmount(req.Amount))
	}
	b.add(tagCountry, "BR")
	b.add(tagMerchantName, name)
	b.add(tagMerchantCity, city)
	b.add(tagAdditionalData, field("05", txID))

	return b.finish()
}

var (
	payNowUEN    = regexp.MustCompile(`(?i)^[A-Z0-9]{9,10}$`)
	payNowMobile = regexp.MustCompile(`^(\+65)?[89]\d{7}$`)
)

// payNowProxyType classifies the key the way the PayNow scheme expects:
// "0" mobile, "1" NRIC, "2" UEN. Shape detection runs on the raw key.
func payNowProxyType(key string) string {
	switch {
	case payNowUEN.MatchString(key):
		return "2"
	case payNowMobile.MatchString(key):
		return "0"
	default:
		return "1"
	}
}

// encodePayNow builds the Singapore PayNow EMV payload.
func encodePayNow(req Request) string {
	proxyType := payNowProxyType(req.Key)
	value := strings.ReplaceAll(req.Key, " ", "")
	name := orDefault(truncate(strings.ToUpper(stripDiacritics(req.Name)), 25), "USER")
	ref := truncate(alphanumeric(strings.ToUpper(stripDiacritics(req.Memo))), 25)

	var b tlvBuilder
	b.add(tagPayloadFormat, "01")
	b.add(tagInitiationMethod, initiationMethod(req))

	merchant := field("00", "SG.PAYNOW") +
		field("01", proxyType) +
		field("02", value) +
		field("03", "1") // amount stays editable in the payer's app
	b.add("26", merchant)

	b.add(tagMerchantCategory, "0000")
	b.add(tagCurrency, "702") // SGD
	if req.Amount.IsPositive() {
		b.add(tagAmount, money.FormatAmount(req.Amount))
	}
	b.add(tagCountry, "SG")
	b.add(tagMerchantName, name)
	b.add(tagMerchantCity, "SINGAPORE")
	if ref != "" {
		b.add(tagAdditionalData, field("01", ref))
	}

	return b.finish()
}

// encodePromptPay builds the Thai PromptPay EMV payload. PromptPay carries
// its merchant account information under tag 29 rather than 26.
func encodePromptPay(req Request) string {
	id := stripPhoneSeparators(req.Key)
	if strings.HasPrefix(id, "0") {
		id = "66" + id[1:]
	}
	// A 10-digit mobile pads to 13; a citizen ID is already 13 digits.
	if len(id) == 10 {
		id = strings.Repeat("0", 3) + id
	}

	name := orDefault(truncate(strings.ToUpper(stripDiacritics(req.Name)), 25), "USER")

	var b tlvBuilder
	b.add(tagPayloadFormat, "01")
	b.add(tagInitiationMethod, initiationMethod(req))

	merchant := field("00", "A000000677010111") + field("01", id)
	b.add("29", merchant)

	b.add(tagMerchantCategory, "0000")
	b.add(tagCurrency, "764") // THB
	if req.Amount.IsPositive() {
		b.add(tagAmount, money.FormatAmount(req.Amount))
	}
	b.add(tagCountry, "TH")
	b.add(tagMerchantName, name)
	b.add(tagMerchantCity, "BANGKOK")

	return b.finish()
}

// initiationMethod is "12" (one-shot, amount fixed) when an amount is
// present, "11" (static, reusable) otherwise.
func initiationMethod(req Request) string {
	if req.Amount.IsPositive() {
		return "12"
	}
	return "11"
}
