package attrs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// MarshalJSON encodes lists as arrays (empty lists included) and null as null.
// Floats always carry a fraction or an exponent with a fraction, e.g. 1.0 or 1.0e+21.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case Null:
		return []byte("null"), nil
	case List:
		items := v.items
		if items == nil {
			items = []Value{}
		}

		return json.Marshal(items)
	default:
		data, err := json.Marshal(v.raw)
		if err != nil {
			return nil, err
		}

		if _, ok := v.raw.(float64); ok {
			data = floatFraction(data)
		}

		return data, nil
	}
}

func floatFraction(data []byte) []byte {
	if bytes.IndexByte(data, '.') >= 0 {
		return data
	}

	if i := bytes.IndexAny(data, "eE"); i >= 0 {
		return append(append(data[:i:i], ".0"...), data[i:]...)
	}

	return append(data, ".0"...)
}

func (v Value) json() (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	return hexJSON(data), nil
}

// hexJSON rewrites string literals of a compact JSON document so that
// it can be embedded into HTML: <, >, ', " and & become upper-case
// \u00XX escapes, slashes are escaped and non-ASCII runes become \uXXXX
// (UTF-16 surrogate pairs outside the BMP).
func hexJSON(data []byte) string {
	sb := new(strings.Builder)
	sb.Grow(len(data))
	inString := false
	for i := 0; i < len(data); {
		c := data[i]
		if !inString {
			inString = c == '"'
			sb.WriteByte(c)
			i++
			continue
		}

		switch {
		case c == '"':
			inString = false
			sb.WriteByte(c)
			i++
		case c == '\\' && i+1 < len(data):
			switch data[i+1] {
			case '"':
				writeHex(sb, '"')
				i += 2
			case 'u':
				if i+6 <= len(data) {
					if r, err := strconv.ParseUint(string(data[i+2:i+6]), 16, 16); err == nil && isHexEscaped(rune(r)) {
						writeHex(sb, rune(r))
						i += 6
						continue
					}
				}

				sb.WriteString(`\u`)
				i += 2
			default:
				sb.Write(data[i : i+2])
				i += 2
			}
		case isHexEscaped(rune(c)):
			writeHex(sb, rune(c))
			i++
		case c == '/':
			sb.WriteString(`\/`)
			i++
		case c >= utf8.RuneSelf:
			r, size := utf8.DecodeRune(data[i:])
			if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
				fmt.Fprintf(sb, `\u%04x\u%04x`, r1, r2)
			} else {
				fmt.Fprintf(sb, `\u%04x`, r)
			}

			i += size
		default:
			sb.WriteByte(c)
			i++
		}
	}

	return sb.String()
}

func isHexEscaped(r rune) bool {
	switch r {
	case '<', '>', '\'', '"', '&':
		return true
	default:
		return false
	}
}

func writeHex(sb *strings.Builder, r rune) {
	fmt.Fprintf(sb, `\u%04X`, r)
}
