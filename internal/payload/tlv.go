package payload

import (
	"fmt"
	"strings"
)

// field serializes one EMV TLV element: a two-digit tag, a two-digit value
// length, then the value. Nested templates are built by passing an already
// serialized field sequence as the value.
func field(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, len(value), value)
}

// tlvBuilder accumulates an EMV payload field by field.
type tlvBuilder struct {
	sb strings.Builder
}

func (b *tlvBuilder) add(tag, value string) {
	b.sb.WriteString(field(tag, value))
}

// finish appends the checksum tag with its fixed "04" length, computes
// CRC16 over everything written so far including that "6304" prefix, and
// returns the completed payload.
func (b *tlvBuilder) finish() string {
	b.sb.WriteString(crcTag + "04")
	return b.sb.String() + checksum(b.sb.String())
}

// crcTag is the EMV tag of the trailing checksum field.
const crcTag = "63"

// checksum computes CRC-16/CCITT-FALSE over the payload bytes: polynomial
// 0x1021, initial value 0xFFFF, no input or output reflection, MSB first.
// The result is four uppercase hex digits.
func checksum(payload string) string {
	crc := uint16(0xFFFF)
	for i := 0; i < len(payload); i++ {
		crc ^= uint16(payload[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return fmt.Sprintf("%04X", crc)
}
