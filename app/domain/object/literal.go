package object

import (
	"bytes"
	"strings"
)

const hexDigits = "0123456789abcdef"

// BytesLiteral renders payload as a byte-string literal such as b'{"a":1}'.
// Printable ASCII is kept as is; everything else is escaped, so the result is
// not a decoded form of the payload.
func BytesLiteral(payload []byte) string {
	quote := byte('\'')
	if bytes.IndexByte(payload, '\'') >= 0 && bytes.IndexByte(payload, '"') < 0 {
		quote = '"'
	}

	var sb strings.Builder
	sb.Grow(len(payload) + 3)
	sb.WriteByte('b')
	sb.WriteByte(quote)
	for _, c := range payload {
		switch {
		case c == quote || c == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c == '\t':
			sb.WriteString(`\t`)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c < ' ' || c >= 0x7f:
			sb.WriteString(`\x`)
			sb.WriteByte(hexDigits[c>>4])
			sb.WriteByte(hexDigits[c&0x0f])
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte(quote)
	return sb.String()
}
