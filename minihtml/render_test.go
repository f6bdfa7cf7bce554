package minihtml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTables() Tables {
	return Tables{
		Translation: map[string]string{
			"p": "p",
			"d": "div",
		},
		Directives: map[string]string{
			"bold":  "font-weight: bold",
			"color": "color: {}",
			"size":  "font-size: {}",
		},
		StylePrefix: DefaultStylePrefix,
	}
}

func TestRenderHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty document",
			input: "",
			want:  "",
		},
		{
			name:  "simple text",
			input: "[\n    p{Test text}\n]",
			want:  "<p>Test text</p>",
		},
		{
			name:  "nested text",
			input: "[\n    d[\n        p{Test text}\n    ]\n]",
			want:  "<div><p>Test text</p></div>",
		},
		{
			name:  "style application",
			input: `[ s-text(style="bold color(red)") p{Test text}(class="text") ]`,
			want:  `<p class="text" style="font-weight: bold; color: red">Test text</p>`,
		},
		{
			name:  "multiple styles",
			input: `[ s-header(style="color(blue) size(24px)") p{Header}(class="header") ]`,
			want:  `<p class="header" style="color: blue; font-size: 24px">Header</p>`,
		},
		{
			name:  "class used before definition resolves to nothing",
			input: `[ p{T}(class="text") s-text(style="bold") p{U}(class="text") ]`,
			want:  `<p class="text">T</p><p class="text" style="font-weight: bold">U</p>`,
		},
		{
			name:  "class styles come before inline styles",
			input: `[ s-a(style="bold") p{x}(class="a", style="size(2em) color(red)") ]`,
			want:  `<p class="a" style="font-weight: bold; font-size: 2em; color: red">x</p>`,
		},
		{
			name:  "classes resolve in listed order",
			input: `[ s-a(style="bold") s-b(style="color(red)") p{x}(class="b a") ]`,
			want:  `<p class="b a" style="color: red; font-weight: bold">x</p>`,
		},
		{
			name:  "unknown tag is used verbatim",
			input: `[ custom{hi} ]`,
			want:  `<custom>hi</custom>`,
		},
		{
			name:  "style definitions never render",
			input: `[ d[ s-x(style="bold")[ p{hidden} ] p{shown}(class="x") ] ]`,
			want:  `<div><p class="x" style="font-weight: bold">shown</p></div>`,
		},
		{
			name:  "synthesized style is the last attribute",
			input: `[ a(href="x", style="bold", id="y"){t} ]`,
			want:  `<a href="x" id="y" style="font-weight: bold">t</a>`,
		},
		{
			name:  "empty style is omitted",
			input: `[ p{x}(style=" ") ]`,
			want:  `<p>x</p>`,
		},
		{
			name:  "unknown directive passes through",
			input: `[ p{x}(style="bold glow") ]`,
			want:  `<p style="font-weight: bold; glow">x</p>`,
		},
		{
			name:  "quoted attribute values are emitted verbatim",
			input: `[ img(src="hack.club",alt="Hack, Club (official)") ]`,
			want:  `<img src="hack.club" alt="Hack, Club (official)"></img>`,
		},
		{
			name:  "content is not escaped",
			input: `[ p{a < b & c} ]`,
			want:  `<p>a < b & c</p>`,
		},
		{
			name:  "content comes before children",
			input: `[ d{intro}[ p{x} ] ]`,
			want:  `<div>intro<p>x</p></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := Parse(Tokenize(tt.input))
			assert.Equal(t, tt.want, RenderHTML(root, testTables()))
		})
	}
}

func TestRender_DefaultTables(t *testing.T) {
	root := Parse(Tokenize(`[
		d[
			br()
			p{Hack Club!}
			i(src="hack.club",alt="Hackclub")
			hline()
		]
		l(href="hack.club"){Join Hackclub.}
	]`))

	want := `<div><br></br><p>Hack Club!</p><img src="hack.club" alt="Hackclub"></img><hr></hr></div>` +
		`<a href="hack.club">Join Hackclub.</a>`
	assert.Equal(t, want, RenderHTML(root, DefaultTables()))
}

func TestRender_Idempotent(t *testing.T) {
	root := Parse(Tokenize(`[ s-t(style="bold") d[ p{x}(class="t") ] p{y}(class="t", style="color(red)") ]`))
	r := NewRenderer(testTables())

	first := r.Render(root)
	second := r.Render(root)
	assert.Equal(t, first, second)
	assert.Equal(t, `<div><p class="t" style="font-weight: bold">x</p></div>`+
		`<p class="t" style="font-weight: bold; color: red">y</p>`, first)

	// The tree itself is left untouched
	style, ok := root.LastChild.Attr.Get("style")
	assert.True(t, ok)
	assert.Equal(t, "color(red)", style)
}

func TestRender_RegistryIsPerPass(t *testing.T) {
	r := NewRenderer(testTables())
	r.Render(Parse(Tokenize(`[ s-t(style="bold") ]`)))

	got := r.Render(Parse(Tokenize(`[ p{x}(class="t") ]`)))
	assert.Equal(t, `<p class="t">x</p>`, got)
	assert.Len(t, r.Diagnostics(), 1)
}

func TestRender_CustomStylePrefix(t *testing.T) {
	tables := testTables()
	tables.StylePrefix = "style."
	root := Parse(Tokenize(`[ style.t(style="bold") s-t{kept} p{x}(class="t") ]`))
	assert.Equal(t, `<s-t>kept</s-t><p class="t" style="font-weight: bold">x</p>`, RenderHTML(root, tables))
}

func TestByteRenderer(t *testing.T) {
	br := &ByteRenderer{}
	br.Render("a", []byte("b"), byte('c'), 'd', 1)
	br.Renderln("!")
	assert.Equal(t, "abcd1!\n", br.String())
	assert.Equal(t, []byte("abcd1!\n"), br.Bytes())
}
