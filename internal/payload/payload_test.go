package payload

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestChecksumKnownVector(t *testing.T) {
	// The CRC-16/CCITT-FALSE check value for "123456789".
	assert.Equal(t, "29B1", checksum("123456789"))
}

func TestField(t *testing.T) {
	assert.Equal(t, "000201", field("00", "01"))
	assert.Equal(t, "0014BR.GOV.BCB.PIX", field("00", "BR.GOV.BCB.PIX"))
	assert.Equal(t, "5802BR", field("58", "BR"))
}

// crcRoundTrip asserts the payload's trailing four hex digits reproduce
// when recomputed over everything before them.
func crcRoundTrip(t *testing.T, p string) {
	t.Helper()
	require.Greater(t, len(p), 8)
	body, crc := p[:len(p)-4], p[len(p)-4:]
	assert.True(t, strings.HasSuffix(body, "6304"), "payload must end in the CRC field header")
	assert.Equal(t, checksum(body), crc)
}

func TestEncodePix(t *testing.T) {
	t.Run("static payload without amount", func(t *testing.T) {
		got, err := Encode("br_pix", Request{Key: "chave@pix.com", Name: "Ana"})
		require.NoError(t, err)

		body := "000201" +
			"26350014BR.GOV.BCB.PIX0113chave@pix.com" +
			"52040000" +
			"5303986" +
			"5802BR" +
			"5903Ana" +
			"6008BRASILIA" +
			"62070503***" +
			"6304"
		assert.Equal(t, body+checksum(body), got)
	})

	t.Run("one-shot payload carries the amount", func(t *testing.T) {
		got, err := Encode("br_pix", Request{
			Key:    "chave@pix.com",
			Name:   "Ana",
			Amount: dec("42.50"),
		})
		require.NoError(t, err)
		assert.Contains(t, got, "540542.50")
		crcRoundTrip(t, got)
	})

	t.Run("strips accents, keeps case, truncates and defaults", func(t *testing.T) {
		got, err := Encode("br_pix", Request{
			Key:  " chave@pix.com ",
			Name: "José da Silva Albuquerque Neto",
			City: "São João del-Rei",
			Memo: "Viagem à Chapada #42",
		})
		require.NoError(t, err)
		assert.Contains(t, got, "5925Jose da Silva Albuquerque")
		assert.Contains(t, got, "6015Sao Joao del-Re")
		assert.Contains(t, got, "0516ViagemaChapada42")
		assert.Contains(t, got, "0113chave@pix.com")
		crcRoundTrip(t, got)
	})

	t.Run("empty name and city fall back to placeholders", func(t *testing.T) {
		got, err := Encode("br_pix", Request{Key: "k"})
		require.NoError(t, err)
		assert.Contains(t, got, "5911DIVIDI USER")
		assert.Contains(t, got, "6008BRASILIA")
		crcRoundTrip(t, got)
	})
}

func TestEncodePayNow(t *testing.T) {
	t.Run("mobile proxy", func(t *testing.T) {
		got, err := Encode("sg_paynow", Request{
			Key:    "91234567",
			Name:   "Mei Ling",
			Amount: dec("18.00"),
			Memo:   "dinner",
		})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "000201"))
		assert.Contains(t, got, "010212")              // one-shot
		assert.Contains(t, got, "0009SG.PAYNOW")       // scheme GUI
		assert.Contains(t, got, "01010")               // proxy type mobile
		assert.Contains(t, got, "020891234567")        // proxy value
		assert.Contains(t, got, "5303702540518.00") // SGD then the amount
		assert.Contains(t, got, "5908MEI LING")        // upper-cased name
		assert.Contains(t, got, "6009SINGAPORE")
		assert.Contains(t, got, "62100106DINNER")      // reference
		crcRoundTrip(t, got)
	})

	t.Run("UEN proxy and static amount", func(t *testing.T) {
		got, err := Encode("sg_paynow", Request{Key: "202012345A", Name: "Shop"})
		require.NoError(t, err)
		assert.Contains(t, got, "010211")          // static
		assert.Contains(t, got, "01012")           // proxy type UEN
		assert.Contains(t, got, "53037025802SG")   // country follows currency, no amount field
		crcRoundTrip(t, got)
	})
}

func TestEncodePromptPay(t *testing.T) {
	got, err := Encode("th_promptpay", Request{
		Key:    "081-234-5678",
		Name:   "Somchai",
		Amount: dec("250.00"),
	})
	require.NoError(t, err)
	assert.Contains(t, got, "0016A000000677010111")
	assert.Contains(t, got, "011166812345678") // 0 replaced by 66 country code
	assert.Contains(t, got, "5303764")         // THB
	assert.Contains(t, got, "5907SOMCHAI")
	assert.Contains(t, got, "6007BANGKOK")
	crcRoundTrip(t, got)
}

func TestEncodeUPI(t *testing.T) {
	got, err := Encode("in_upi", Request{
		Key:    "priya@okbank",
		Name:   "Priya Sharma",
		Amount: dec("150.00"),
		Memo:   "movie night",
	})
	require.NoError(t, err)
	assert.Equal(t, "upi://pay?pa=priya%40okbank&pn=Priya%20Sharma&am=150.00&cu=INR&tn=movie%20night", got)

	got, err = Encode("in_upi", Request{Key: "priya@okbank"})
	require.NoError(t, err)
	assert.Equal(t, "upi://pay?pa=priya%40okbank&pn=User&cu=INR", got)
}

func TestEncodeVenmo(t *testing.T) {
	got, err := Encode("us_venmo", Request{
		Key:    "@sam-jones",
		Amount: dec("12.34"),
		Memo:   "tacos",
	})
	require.NoError(t, err)
	assert.Equal(t, "venmo://paycharge?txn=pay&recipients=sam-jones&amount=12.34&note=tacos", got)
}

func TestEncodeSwish(t *testing.T) {
	got, err := Encode("se_swish", Request{
		Key:    "070-123 45 67",
		Amount: dec("99.00"),
		Memo:   "fika",
	})
	require.NoError(t, err)
	assert.Equal(t, "C:46701234567;99.00;fika", got)

	got, err = Encode("se_swish", Request{Key: "+46701234567"})
	require.NoError(t, err)
	assert.Equal(t, "C:46701234567;0", got)
}

func TestEncodeYape(t *testing.T) {
	got, err := Encode("pe_yape", Request{
		Key:    "987 654 321",
		Name:   "Lucía",
		Amount: dec("35.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, "YAPE:51987654321:Lucía:35.50", got)
}

func TestEncodeFallbackAndErrors(t *testing.T) {
	t.Run("catalog rail without a scheme returns the key", func(t *testing.T) {
		got, err := Encode("es_bizum", Request{Key: "+34611222333"})
		require.NoError(t, err)
		assert.Equal(t, "+34611222333", got)
	})

	t.Run("unknown rail id is an error", func(t *testing.T) {
		_, err := Encode("xx_nothing", Request{Key: "k"})
		require.ErrorIs(t, err, ErrUnknownRail)
	})
}

func TestFamilyOf(t *testing.T) {
	assert.Equal(t, FamilyEMV, FamilyOf("br_pix"))
	assert.Equal(t, FamilyLink, FamilyOf("us_venmo"))
	assert.Equal(t, FamilyText, FamilyOf("se_swish"))
	assert.Equal(t, FamilyPlain, FamilyOf("eu_sepa"))
	assert.Equal(t, FamilyPlain, FamilyOf("never_registered"))
}
