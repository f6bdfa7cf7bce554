package minihtml

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "simple text node",
			input: "[ p{Test text} ]",
			want: []Token{
				{Type: OpenBracketToken, Data: "["},
				{Type: TagToken, Data: "p"},
				{Type: TextToken, Data: "Test text"},
				{Type: CloseBracketToken, Data: "]"},
			},
		},
		{
			name:  "whitespace between tokens is ignored",
			input: "[\n\td\n\t[\n\t\tp{a}\n\t]\n]",
			want: []Token{
				{Type: OpenBracketToken, Data: "["},
				{Type: TagToken, Data: "d"},
				{Type: OpenBracketToken, Data: "["},
				{Type: TagToken, Data: "p"},
				{Type: TextToken, Data: "a"},
				{Type: CloseBracketToken, Data: "]"},
				{Type: CloseBracketToken, Data: "]"},
			},
		},
		{
			name:  "attribute span keeps quotes and quoted parentheses",
			input: `i(src="hack.club",alt="Hack, Club (official)")`,
			want: []Token{
				{Type: TagToken, Data: "i"},
				{Type: AttributeToken, Data: `src="hack.club",alt="Hack, Club (official)"`},
			},
		},
		{
			name:  "text keeps brackets and parentheses verbatim",
			input: "p{a [b] (c)}",
			want: []Token{
				{Type: TagToken, Data: "p"},
				{Type: TextToken, Data: "a [b] (c)"},
			},
		},
		{
			name:  "tag characters",
			input: "s-join_text.v2 título",
			want: []Token{
				{Type: TagToken, Data: "s-join_text.v2"},
				{Type: TagToken, Data: "título"},
			},
		},
		{
			name:  "other characters are dropped",
			input: "p! <q> #",
			want: []Token{
				{Type: TagToken, Data: "p"},
				{Type: TagToken, Data: "q"},
			},
		},
		{
			name:  "empty spans",
			input: "br(){}",
			want: []Token{
				{Type: TagToken, Data: "br"},
				{Type: AttributeToken, Data: ""},
				{Type: TextToken, Data: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := NewTokenizer(tt.input)
			assert.Equal(t, tt.want, z.Tokenize())
			assert.Empty(t, z.Diagnostics())
		})
	}
}

func TestTokenize_Unterminated(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
		msg   string
	}{
		{
			name:  "text runs to end of input",
			input: "p{abc [d]",
			want: []Token{
				{Type: TagToken, Data: "p"},
				{Type: TextToken, Data: "abc [d]"},
			},
			msg: MsgUnterminatedText,
		},
		{
			name:  "attribute runs to end of input",
			input: `p(a="1"`,
			want: []Token{
				{Type: TagToken, Data: "p"},
				{Type: AttributeToken, Data: `a="1"`},
			},
			msg: MsgUnterminatedAttribute,
		},
		{
			name:  "quoted parenthesis does not close the span",
			input: `p(a=")"`,
			want: []Token{
				{Type: TagToken, Data: "p"},
				{Type: AttributeToken, Data: `a=")"`},
			},
			msg: MsgUnterminatedAttribute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := NewTokenizer(tt.input)
			assert.Equal(t, tt.want, z.Tokenize())
			require.Len(t, z.Diagnostics(), 1)
			assert.Equal(t, StageTokenize, z.Diagnostics()[0].Stage)
			assert.Equal(t, tt.msg, z.Diagnostics()[0].Message)
		})
	}
}

func removeSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func TestTokenize_PreservesCharacters(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			input: `[ d(a="1")[ p{x y} ] ]`,
			want:  `[da="1"[pxy]]`,
		},
		{
			input: `[ s-text(style="bold color(red)") p{Test text}(class="text") ]`,
			want:  `[s-textstyle="boldcolor(red)"pTesttextclass="text"]`,
		},
		{
			input: `[ i(src="hack.club", alt="Hack, Club (official)") l(href="x"){Join Hackclub.} ]`,
			want:  `[isrc="hack.club",alt="Hack,Club(official)"lhref="x"JoinHackclub.]`,
		},
	}

	for _, tt := range tests {
		var sb strings.Builder
		for _, tok := range Tokenize(tt.input) {
			sb.WriteString(tok.Data)
		}
		assert.Equal(t, tt.want, removeSpace(sb.String()), tt.input)
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Type: TagToken, Data: "p"}
	assert.Equal(t, "Token(Tag, 'p')", tok.String())
	assert.Equal(t, "Invalid(42)", TokenType(42).String())
	assert.Equal(t, "[Token(OpenBracket, '['), Token(Tag, 'p')]",
		TokensString([]Token{{Type: OpenBracketToken, Data: "["}, tok}))
}
