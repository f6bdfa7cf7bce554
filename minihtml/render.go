package minihtml

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ByteRenderer accumulates rendered output in a byte slice.
type ByteRenderer struct {
	buf []byte
}

// Render appends each of its arguments to the output.
func (br *ByteRenderer) Render(s ...any) {
	for _, v := range s {
		switch v := v.(type) {
		case string:
			br.buf = append(br.buf, v...)
		case []byte:
			br.buf = append(br.buf, v...)
		case byte:
			br.buf = append(br.buf, v)
		case rune:
			br.buf = append(br.buf, string(v)...)
		default:
			br.buf = fmt.Append(br.buf, v)
		}
	}
}

// Renderln is like Render but appends a newline at the end.
func (br *ByteRenderer) Renderln(s ...any) {
	br.Render(s...)
	br.buf = append(br.buf, '\n')
}

// Bytes returns the underlying byte slice.
func (br *ByteRenderer) Bytes() []byte {
	return br.buf
}

func (br *ByteRenderer) String() string {
	return string(br.buf)
}

// Renderer serializes a document tree to HTML.
//
// Every call to Render uses its own style registry, so a Renderer may be
// reused for several documents and produces the same output for the same tree.
type Renderer struct {
	tables      Tables
	diagnostics Diagnostics
	log         *zap.SugaredLogger
}

// NewRenderer returns a renderer using tables.
func NewRenderer(tables Tables) *Renderer {
	return &Renderer{
		tables: tables,
		log:    zap.NewNop().Sugar(),
	}
}

// SetLogger sets the logger used for debug traces.
func (r *Renderer) SetLogger(logger *zap.SugaredLogger) {
	if logger != nil {
		r.log = logger
	}
}

// Diagnostics returns the anomalies found by the last call to Render.
func (r *Renderer) Diagnostics() Diagnostics {
	return r.diagnostics
}

// renderPass holds the state of one Render call.
type renderPass struct {
	*Renderer
	registry *StyleRegistry
	styles   *StyleResolver
}

// Render renders the children of root, depth first. The root itself is not rendered.
func (r *Renderer) Render(root *Node) string {
	pass := &renderPass{
		Renderer: r,
		registry: NewStyleRegistry(),
		styles:   NewStyleResolver(r.tables.Directives),
	}
	pass.styles.SetLogger(r.log)

	br := &ByteRenderer{}
	for n := root.FirstChild; n != nil; n = n.NextSibling {
		pass.renderNode(br, n)
	}

	r.diagnostics = pass.styles.Diagnostics()
	r.log.Debugw("rendered document", "classes", pass.registry.Len(), "bytes", len(br.Bytes()))
	return br.String()
}

// RenderHTML renders root with the given tables.
func RenderHTML(root *Node, tables Tables) string {
	return NewRenderer(tables).Render(root)
}

func (pass *renderPass) renderNode(br *ByteRenderer, n *Node) {
	if n.IsRoot() {
		return
	}

	// Style definitions only feed the registry, they and their children produce no output
	if n.IsStyleDefinition(pass.tables.StylePrefix) {
		name := strings.TrimPrefix(n.Tag, pass.tables.StylePrefix)
		pass.registry.Define(name, n.Attr)
		pass.log.Debugw("style class defined", "class", name)
		return
	}

	tagName := pass.tables.Translate(n.Tag)
	attrs, styleAttr := pass.computeAttributes(n)

	br.Render("<", tagName)
	for _, a := range attrs {
		br.Render(" ", a.Key, `="`, a.Val, `"`)
	}
	if len(styleAttr) > 0 {
		br.Render(` style="`, styleAttr, `"`)
	}
	br.Render(">")

	br.Render(n.Content)

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		pass.renderNode(br, c)
	}

	br.Render("</", tagName, ">")
}

// computeAttributes returns the attributes to emit verbatim and the
// synthesized style value. Class styles come before inline styles.
// The node's own style attribute is never emitted as is.
func (pass *renderPass) computeAttributes(n *Node) (Attributes, string) {
	attrs := n.Attr.Clone()
	var decls []string

	if classes, ok := attrs.Get("class"); ok {
		decls = append(decls, pass.styles.ResolveClasses(strings.Fields(classes), pass.registry)...)
	}

	if style, ok := attrs.Get("style"); ok {
		attrs.Delete("style")
		decls = append(decls, pass.styles.ResolveInline(style)...)
	}

	return attrs, strings.Join(decls, "; ")
}
