// Package rails holds the static catalog of payment rails and the logic
// that picks the best rail for a user in a given currency.
//
// The catalog is process-wide read-only configuration: it is declared once,
// in priority-meaningful order, and exposes no mutation API.
package rails

// InputType describes the shape of the identifier a rail expects.
type InputType string

const (
	InputPhone        InputType = "phone"
	InputEmail        InputType = "email"
	InputIBAN         InputType = "iban"
	InputAlphanumeric InputType = "alphanumeric"
	InputBankDetails  InputType = "bank_details"
)

// Rail is one catalog entry: a regional instant-payment or transfer method.
type Rail struct {
	ID          string
	Name        string
	CountryCode string // ISO 3166-1 alpha-2 ("EU" for the SEPA zone)
	Flag        string
	Currencies  []string // ISO 4217 alphabetic codes
	InputType   InputType
	Placeholder string

	// Priority orders resolution: 1 is a fast local instant-payment
	// method, 10+ a generic fallback such as an international wire.
	Priority int

	SupportsQR bool
}

// Supports reports whether the rail can receive the given currency.
func (r Rail) Supports(currency string) bool {
	for _, c := range r.Currencies {
		if c == currency {
			return true
		}
	}
	return false
}

// catalog declaration order is the resolution tie-break, so entries are
// grouped core markets first, expansion markets after.
var catalog = []Rail{
	{
		ID:          "br_pix",
		Name:        "Pix",
		CountryCode: "BR",
		Flag:        "🇧🇷",
		Currencies:  []string{"BRL"},
		InputType:   InputAlphanumeric,
		Placeholder: "Chave CPF, Email, Telefone ou Aleatória",
		Priority:    1,
		SupportsQR:  true,
	},
	{
		ID:          "us_zelle",
		Name:        "Zelle",
		CountryCode: "US",
		Flag:        "🇺🇸",
		Currencies:  []string{"USD"},
		InputType:   InputEmail,
		Placeholder: "Email ou Mobile Number",
		Priority:    1,
	},
	{
		ID:          "us_venmo",
		Name:        "Venmo",
		CountryCode: "US",
		Flag:        "🇺🇸",
		Currencies:  []string{"USD"},
		InputType:   InputAlphanumeric,
		Placeholder: "Username (@user)",
		Priority:    2,
		SupportsQR:  true,
	},
	{
		ID:          "eu_sepa",
		Name:        "IBAN (SEPA)",
		CountryCode: "EU",
		Flag:        "🇪🇺",
		Currencies:  []string{"EUR"},
		InputType:   InputIBAN,
		Placeholder: "IBAN (Ex: IE12 BOFI...)",
		Priority:    10, // generic euro fallback
	},
	{
		ID:          "es_bizum",
		Name:        "Bizum",
		CountryCode: "ES",
		Flag:        "🇪🇸",
		Currencies:  []string{"EUR"},
		InputType:   InputPhone,
		Placeholder: "Número de Móvil",
		Priority:    1,
	},
	{
		ID:          "pt_mbway",
		Name:        "MB WAY",
		CountryCode: "PT",
		Flag:        "🇵🇹",
		Currencies:  []string{"EUR"},
		InputType:   InputPhone,
		Placeholder: "Número de Telemóvel",
		Priority:    1,
	},
	{
		ID:          "gb_faster",
		Name:        "Faster Payments",
		CountryCode: "GB",
		Flag:        "🇬🇧",
		Currencies:  []string{"GBP"},
		InputType:   InputBankDetails,
		Placeholder: "Sort Code + Account Number",
		Priority:    1,
	},
	{
		ID:          "ca_interac",
		Name:        "Interac e-Transfer",
		CountryCode: "CA",
		Flag:        "🇨🇦",
		Currencies:  []string{"CAD"},
		InputType:   InputEmail,
		Placeholder: "Email address",
		Priority:    1,
	},
	{
		ID:          "cl_rut",
		Name:        "Transferencia (RUT)",
		CountryCode: "CL",
		Flag:        "🇨🇱",
		Currencies:  []string{"CLP"},
		InputType:   InputBankDetails,
		Placeholder: "Banco, Tipo, Conta, RUT, Email",
		Priority:    1,
	},
	{
		ID:          "au_payid",
		Name:        "PayID",
		CountryCode: "AU",
		Flag:        "🇦🇺",
		Currencies:  []string{"AUD"},
		InputType:   InputAlphanumeric,
		Placeholder: "Phone, Email or ABN",
		Priority:    1,
	},
	{
		ID:          "in_upi",
		Name:        "UPI",
		CountryCode: "IN",
		Flag:        "🇮🇳",
		Currencies:  []string{"INR"},
		InputType:   InputAlphanumeric,
		Placeholder: "VPA (ex: name@bank)",
		Priority:    1,
		SupportsQR:  true,
	},
	{
		ID:          "sg_paynow",
		Name:        "PayNow",
		CountryCode: "SG",
		Flag:        "🇸🇬",
		Currencies:  []string{"SGD"},
		InputType:   InputAlphanumeric,
		Placeholder: "Mobile or UEN/NRIC",
		Priority:    1,
		SupportsQR:  true,
	},
	{
		ID:          "th_promptpay",
		Name:        "PromptPay",
		CountryCode: "TH",
		Flag:        "🇹🇭",
		Currencies:  []string{"THB"},
		InputType:   InputPhone,
		Placeholder: "Mobile Number or ID",
		Priority:    1,
		SupportsQR:  true,
	},
	{
		ID:          "se_swish",
		Name:        "Swish",
		CountryCode: "SE",
		Flag:        "🇸🇪",
		Currencies:  []string{"SEK"},
		InputType:   InputPhone,
		Placeholder: "Mobile Number",
		Priority:    1,
		SupportsQR:  true,
	},
	{
		ID:          "pl_blik",
		Name:        "BLIK",
		CountryCode: "PL",
		Flag:        "🇵🇱",
		Currencies:  []string{"PLN"},
		InputType:   InputPhone,
		Placeholder: "Phone Number",
		Priority:    1,
	},
	{
		ID:          "mx_spei",
		Name:        "SPEI (CLABE)",
		CountryCode: "MX",
		Flag:        "🇲🇽",
		Currencies:  []string{"MXN"},
		InputType:   InputBankDetails,
		Placeholder: "CLABE (18 dígitos)",
		Priority:    1,
	},
	{
		ID:          "pe_yape",
		Name:        "Yape / Plin",
		CountryCode: "PE",
		Flag:        "🇵🇪",
		Currencies:  []string{"PEN"},
		InputType:   InputPhone,
		Placeholder: "Número de Celular",
		Priority:    1,
		SupportsQR:  true,
	},
	{
		ID:          "co_transfiya",
		Name:        "Transfiya",
		CountryCode: "CO",
		Flag:        "🇨🇴",
		Currencies:  []string{"COP"},
		InputType:   InputPhone,
		Placeholder: "Número de Celular",
		Priority:    1,
	},
}

var catalogByID = func() map[string]int {
	m := make(map[string]int, len(catalog))
	for i, r := range catalog {
		m[r.ID] = i
	}
	return m
}()

// GetRail looks a rail up by id. There is no fallback: an unknown id
// reports false.
func GetRail(id string) (Rail, bool) {
	i, ok := catalogByID[id]
	if !ok {
		return Rail{}, false
	}
	return catalog[i], true
}

// All returns the catalog in declaration order.
func All() []Rail {
	out := make([]Rail, len(catalog))
	copy(out, catalog)
	return out
}
