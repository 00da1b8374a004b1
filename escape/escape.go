// Package escape contains the escapers used for rendering HTML tag attributes.
package escape

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Func converts raw text into a form which is safe to embed into a given HTML context.
type Func func(string) string

// Identity returns the input unchanged.
func Identity(value string) string {
	return value
}

// HTML escapes HTML special characters. Used for element and attribute names.
func HTML(value string) string {
	return html.EscapeString(value)
}

var attrEntities = map[rune]string{
	'"': "&quot;",
	'&': "&amp;",
	'<': "&lt;",
	'>': "&gt;",
}

// HTMLAttr escapes everything but [A-Za-z0-9,._-] so that the result
// is safe inside a quoted (and even an unquoted) attribute value.
func HTMLAttr(value string) string {
	if value == "" {
		return value
	}

	sb := new(strings.Builder)
	sb.Grow(len(value))
	for _, r := range value {
		if isAttrSafe(r) {
			sb.WriteRune(r)
			continue
		}

		sb.WriteString(attrEntity(r))
	}

	return sb.String()
}

func isAttrSafe(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == ',', r == '.', r == '-', r == '_':
		return true
	default:
		return false
	}
}

func attrEntity(r rune) string {
	if r < 0x20 && r != '\t' && r != '\n' && r != '\r' || r >= 0x7f && r <= 0x9f {
		return "&#xFFFD;"
	}

	if entity, ok := attrEntities[r]; ok {
		return entity
	}

	if r > 0xff {
		return fmt.Sprintf("&#x%04X;", r)
	}

	return fmt.Sprintf("&#x%02X;", r)
}
