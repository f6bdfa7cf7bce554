package minihtml

import (
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Tokenizer scans minihtml source into a flat sequence of tokens.
// It never fails: malformed input produces fewer or odd tokens, and the
// anomalies found are recorded as diagnostics.
type Tokenizer struct {
	src         string
	pos         int
	tokens      []Token
	diagnostics Diagnostics
	log         *zap.SugaredLogger
}

// NewTokenizer returns a tokenizer for src.
func NewTokenizer(src string) *Tokenizer {
	return &Tokenizer{
		src: src,
		log: zap.NewNop().Sugar(),
	}
}

// SetLogger sets the logger used for debug traces.
func (z *Tokenizer) SetLogger(logger *zap.SugaredLogger) {
	if logger != nil {
		z.log = logger
	}
}

// Diagnostics returns the anomalies found by the last call to Tokenize.
func (z *Tokenizer) Diagnostics() Diagnostics {
	return z.diagnostics
}

// Tokenize is a shortcut for NewTokenizer(src).Tokenize().
func Tokenize(src string) []Token {
	return NewTokenizer(src).Tokenize()
}

// isTagChar reports whether r may be part of a tag name.
func isTagChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.'
}

// Tokenize performs a single forward scan of the source.
func (z *Tokenizer) Tokenize() []Token {
	z.pos = 0
	z.tokens = nil
	z.diagnostics = nil

	for z.pos < len(z.src) {
		r, size := utf8.DecodeRuneInString(z.src[z.pos:])

		switch {
		case unicode.IsSpace(r):
			z.pos += size

		case r == '{':
			z.pos += size
			z.scanText()

		case r == '(':
			z.pos += size
			z.scanAttribute()

		case r == '[':
			z.pos += size
			z.emit(OpenBracketToken, "[")

		case r == ']':
			z.pos += size
			z.emit(CloseBracketToken, "]")

		case isTagChar(r):
			z.scanTag()

		default:
			// Anything else is dropped
			z.log.Debugw("dropped character", "char", string(r), "offset", z.pos)
			z.pos += size
		}
	}

	z.log.Debugw("tokenized", "tokens", len(z.tokens))
	return z.tokens
}

func (z *Tokenizer) emit(t TokenType, data string) {
	z.tokens = append(z.tokens, Token{Type: t, Data: data})
}

// scanText collects everything up to the next '}' verbatim.
// There is no nesting and no escaping of '}'.
func (z *Tokenizer) scanText() {
	start := z.pos
	for z.pos < len(z.src) && z.src[z.pos] != '}' {
		z.pos++
	}
	z.emit(TextToken, z.src[start:z.pos])

	if z.pos >= len(z.src) {
		z.diagnostics.add(StageTokenize, MsgUnterminatedText, z.src[start:])
		return
	}

	// Skip the closing '}'
	z.pos++
}

// scanAttribute collects everything up to the matching ')'. A ')' inside a
// double-quoted region does not end the span. The quotes are kept in the
// token data, they are consumed later by ParseAttributes.
func (z *Tokenizer) scanAttribute() {
	start := z.pos
	inQuotes := false
	for ; z.pos < len(z.src); z.pos++ {
		c := z.src[z.pos]
		if c == '"' {
			inQuotes = !inQuotes
		} else if c == ')' && !inQuotes {
			break
		}
	}
	z.emit(AttributeToken, z.src[start:z.pos])

	if z.pos >= len(z.src) {
		z.diagnostics.add(StageTokenize, MsgUnterminatedAttribute, z.src[start:])
		return
	}

	// Skip the closing ')'
	z.pos++
}

// scanTag emits the maximal run of tag characters starting at the current position.
func (z *Tokenizer) scanTag() {
	start := z.pos
	for z.pos < len(z.src) {
		r, size := utf8.DecodeRuneInString(z.src[z.pos:])
		if !isTagChar(r) {
			break
		}
		z.pos += size
	}
	z.emit(TagToken, z.src[start:z.pos])
}
