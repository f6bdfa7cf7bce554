package minihtml

import (
	"strconv"
	"strings"
)

// A TokenType is the type of a Token.
type TokenType uint32

const (
	// OpenBracketToken is a '[' starting a block of children.
	OpenBracketToken TokenType = iota
	// CloseBracketToken is a ']' ending a block of children.
	CloseBracketToken
	// TextToken is the literal content of a '{...}' span.
	TextToken
	// TagToken is a run of tag characters naming an element.
	TagToken
	// AttributeToken is the raw, unparsed content of a '(...)' span.
	AttributeToken
)

// String returns a string representation of the TokenType.
func (t TokenType) String() string {
	switch t {
	case OpenBracketToken:
		return "OpenBracket"
	case CloseBracketToken:
		return "CloseBracket"
	case TextToken:
		return "Text"
	case TagToken:
		return "Tag"
	case AttributeToken:
		return "Attribute"
	}
	return "Invalid(" + strconv.Itoa(int(t)) + ")"
}

// A Token consists of a TokenType and the raw Data scanned from the source.
// For brackets Data is the bracket itself, for text and attribute spans it is
// the inner text without the delimiters.
type Token struct {
	Type TokenType
	Data string
}

// String returns a string representation of the Token, suitable for debug logs.
func (t Token) String() string {
	return "Token(" + t.Type.String() + ", '" + t.Data + "')"
}

// TokensString renders a token sequence on a single line.
func TokensString(tokens []Token) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, t := range tokens {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(t.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
