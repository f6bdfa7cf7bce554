// Package minihtml compiles minihtml markup into HTML.
//
// A document is a bracket-delimited list of nodes. Each node is a tag name,
// optionally followed by '(...)' attribute lists, a '{...}' text and a
// '[...]' block of children:
//
//	[
//	    s-title(style="bold color(red)")
//	    d[
//	        p{Hello}(class="title")
//	        i(src="logo.png", alt="Logo")
//	    ]
//	]
//
// The pipeline is Tokenizer -> Parser -> Renderer. No stage ever fails:
// malformed input is recovered from and reported as Diagnostics.
package minihtml

import "go.uber.org/zap"

// Compiler runs the whole pipeline with a fixed set of tables.
// It keeps no state between calls and is safe for concurrent use.
type Compiler struct {
	tables Tables
	log    *zap.SugaredLogger
}

// NewCompiler returns a compiler using tables.
func NewCompiler(tables Tables) *Compiler {
	return &Compiler{
		tables: tables,
		log:    zap.NewNop().Sugar(),
	}
}

// SetLogger sets the logger passed down to every stage.
func (c *Compiler) SetLogger(logger *zap.SugaredLogger) {
	if logger != nil {
		c.log = logger
	}
}

// Compile converts src to HTML. The diagnostics of all stages are returned
// in pipeline order.
func (c *Compiler) Compile(src string) (string, Diagnostics) {
	var diags Diagnostics

	z := NewTokenizer(src)
	z.SetLogger(c.log)
	tokens := z.Tokenize()
	diags = append(diags, z.Diagnostics()...)

	p := NewParser(tokens)
	p.SetLogger(c.log)
	root := p.Parse()
	diags = append(diags, p.Diagnostics()...)

	r := NewRenderer(c.tables)
	r.SetLogger(c.log)
	html := r.Render(root)
	diags = append(diags, r.Diagnostics()...)

	return html, diags
}

// Compile converts src to HTML using tables.
func Compile(src string, tables Tables) (string, Diagnostics) {
	return NewCompiler(tables).Compile(src)
}

// CompileString converts src to HTML using the default tables.
func CompileString(src string) string {
	html, _ := Compile(src, DefaultTables())
	return html
}
