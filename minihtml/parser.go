package minihtml

import "go.uber.org/zap"

// Parser builds the document tree from a token sequence.
//
// It is a recursive descent parser with a single cursor that only moves
// forward. Tokens that do not fit where they appear are skipped one at a
// time, so parsing always completes and always returns a tree.
type Parser struct {
	tokens []Token

	// pos is the index of the next token to consume
	pos int

	// doc is the document root element.
	doc *Node

	diagnostics Diagnostics
	log         *zap.SugaredLogger
}

// NewParser returns a parser for tokens. The parser has an initial node
// representing the document.
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens: tokens,
		doc:    &Node{},
		log:    zap.NewNop().Sugar(),
	}
}

// SetLogger sets the logger used for debug traces.
func (p *Parser) SetLogger(logger *zap.SugaredLogger) {
	if logger != nil {
		p.log = logger
	}
}

// Diagnostics returns the anomalies the parser recovered from.
func (p *Parser) Diagnostics() Diagnostics {
	return p.diagnostics
}

// Parse is a shortcut for NewParser(tokens).Parse().
func Parse(tokens []Token) *Node {
	return NewParser(tokens).Parse()
}

func (p *Parser) atEOF() bool {
	return p.pos >= len(p.tokens)
}

// peek reports whether the next token is of type t.
func (p *Parser) peek(t TokenType) bool {
	return !p.atEOF() && p.tokens[p.pos].Type == t
}

func (p *Parser) skip() {
	tok := p.tokens[p.pos]
	p.log.Debugw("skipping unexpected token", "token", tok.String(), "index", p.pos)
	p.diagnostics.add(StageParse, MsgSkippedToken, tok.Data)
	p.pos++
}

// Parse consumes the document `[ Node* ]` and returns its root. The root's
// own brackets produce no node, only its children are attached to it.
func (p *Parser) Parse() *Node {
	if !p.peek(OpenBracketToken) {
		if !p.atEOF() {
			p.diagnostics.add(StageParse, MsgMissingRoot, p.tokens[p.pos].Data)
		}
		return p.doc
	}

	// Skip the root '['
	p.pos++
	p.parseChildren(p.doc)

	if !p.atEOF() {
		// Skip the root ']'
		p.pos++
	}

	if !p.atEOF() {
		p.diagnostics.add(StageParse, MsgTrailingTokens, TokensString(p.tokens[p.pos:]))
	}

	if p.log.Desugar().Core().Enabled(zap.DebugLevel) {
		p.log.Debugw("parsed document", "tree", p.doc.Dump())
	}
	return p.doc
}

// parseChildren parses nodes until a ']' or the end of the tokens, appending
// them to parent. The ']' itself is not consumed.
func (p *Parser) parseChildren(parent *Node) {
	for !p.atEOF() && !p.peek(CloseBracketToken) {
		if !p.peek(TagToken) {
			p.skip()
			continue
		}
		if child := p.parseNode(); child != nil {
			parent.AppendChild(child)
		}
	}

	if p.atEOF() {
		p.diagnostics.add(StageParse, MsgMissingCloseBracket, parent.Tag)
	}
}

// parseNode parses `Tag Attribute* Text? Attribute* ('[' Node* ']')?`.
// It returns nil when the next token is not a tag.
func (p *Parser) parseNode() *Node {
	if !p.peek(TagToken) {
		return nil
	}

	n := &Node{Tag: p.tokens[p.pos].Data}
	p.pos++

	// Attribute lists before the text
	p.parseAttributeLists(n)

	if p.peek(TextToken) {
		n.Content = p.tokens[p.pos].Data
		p.pos++
	}

	// Attribute lists after the text
	p.parseAttributeLists(n)

	if p.peek(OpenBracketToken) {
		p.pos++
		p.parseChildren(n)
		if p.peek(CloseBracketToken) {
			p.pos++
		}
	}

	return n
}

// parseAttributeLists merges every consecutive attribute span into n.
// Later spans overwrite the keys of earlier ones.
func (p *Parser) parseAttributeLists(n *Node) {
	for p.peek(AttributeToken) {
		n.Attr.Merge(ParseAttributes(p.tokens[p.pos].Data))
		p.pos++
	}
}
