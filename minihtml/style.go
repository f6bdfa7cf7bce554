package minihtml

import (
	"strings"

	"github.com/mazznoer/csscolorparser"
	"go.uber.org/zap"
)

const placeholder = "{}"

// StyleRegistry maps style class names to the attributes of the node that
// defined them. A registry belongs to a single render pass: classes must be
// defined before they are used, in document order.
type StyleRegistry struct {
	classes map[string]Attributes
}

// NewStyleRegistry returns an empty registry.
func NewStyleRegistry() *StyleRegistry {
	return &StyleRegistry{classes: make(map[string]Attributes)}
}

// Define registers a copy of attrs under name, replacing any previous definition.
func (r *StyleRegistry) Define(name string, attrs Attributes) {
	r.classes[name] = attrs.Clone()
}

// Lookup returns the attributes registered for name.
func (r *StyleRegistry) Lookup(name string) (Attributes, bool) {
	attrs, ok := r.classes[name]
	return attrs, ok
}

// Len returns the number of registered classes.
func (r *StyleRegistry) Len() int {
	return len(r.classes)
}

// StyleResolver expands style directives into CSS declarations using a
// directive table like {"bold": "font-weight: bold", "color": "color: {}"}.
type StyleResolver struct {
	directives  map[string]string
	diagnostics Diagnostics
	log         *zap.SugaredLogger
}

// NewStyleResolver returns a resolver for the given directive table.
func NewStyleResolver(directives map[string]string) *StyleResolver {
	return &StyleResolver{
		directives: directives,
		log:        zap.NewNop().Sugar(),
	}
}

// SetLogger sets the logger used for debug traces.
func (s *StyleResolver) SetLogger(logger *zap.SugaredLogger) {
	if logger != nil {
		s.log = logger
	}
}

// Diagnostics returns the anomalies found while resolving.
func (s *StyleResolver) Diagnostics() Diagnostics {
	return s.diagnostics
}

// ResolveInline expands every directive of a raw style value, in order.
func (s *StyleResolver) ResolveInline(raw string) []string {
	var decls []string
	for _, d := range SplitDirectives(raw) {
		decls = append(decls, s.resolveDirective(d))
	}
	return decls
}

// ResolveClasses resolves the style attribute of each class in classNames,
// in the order given. Classes not in the registry contribute nothing.
func (s *StyleResolver) ResolveClasses(classNames []string, registry *StyleRegistry) []string {
	var decls []string
	for _, name := range classNames {
		attrs, ok := registry.Lookup(name)
		if !ok {
			s.diagnostics.add(StageStyle, MsgUndefinedClass, name)
			continue
		}
		if style, ok := attrs.Get("style"); ok {
			decls = append(decls, s.ResolveInline(style)...)
		}
	}
	return decls
}

func isDirectiveSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// SplitDirectives splits a style value on whitespace, keeping a
// parenthesized argument list together with its directive name.
// "bold color(red) font(Times New Roman)" gives three directives.
func SplitDirectives(raw string) []string {
	var out []string
	depth := 0
	start := -1

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == '(':
			depth++
		case c == ')' && depth > 0:
			depth--
		case isDirectiveSpace(c) && depth == 0:
			if start >= 0 {
				out = append(out, raw[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, raw[start:])
	}

	return out
}

// splitArguments splits the argument list of a directive on top level commas.
// Commas nested in parentheses, like in rgb(1,2,3), do not split.
func splitArguments(list string) []string {
	var args []string
	depth := 0
	start := 0
	for i := 0; i < len(list); i++ {
		switch list[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(list[start:i]))
				start = i + 1
			}
		}
	}
	return append(args, strings.TrimSpace(list[start:]))
}

// resolveDirective turns one directive into a CSS declaration.
// Unknown directives are returned unchanged.
func (s *StyleResolver) resolveDirective(directive string) string {
	name, list, hasArgs := strings.Cut(directive, "(")

	template, ok := s.directives[name]
	if !ok {
		s.log.Debugw("unknown style directive", "directive", directive)
		s.diagnostics.add(StageStyle, MsgUnknownDirective, directive)
		return directive
	}

	if !hasArgs {
		return template
	}

	args := splitArguments(strings.TrimSuffix(list, ")"))
	s.checkArguments(directive, template, args)
	return substitute(template, args)
}

// substitute replaces the placeholders of template with args, positionally.
// Extra placeholders are left as they are and extra arguments are dropped.
func substitute(template string, args []string) string {
	var sb strings.Builder
	rest := template
	for _, arg := range args {
		i := strings.Index(rest, placeholder)
		if i < 0 {
			break
		}
		sb.WriteString(rest[:i])
		sb.WriteString(arg)
		rest = rest[i+len(placeholder):]
	}
	sb.WriteString(rest)
	return sb.String()
}

// placeholderProperties returns, for each placeholder of template, the name
// of the CSS property it belongs to.
func placeholderProperties(template string) []string {
	var props []string
	for _, decl := range strings.Split(template, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		for range strings.Count(value, placeholder) {
			props = append(props, name)
		}
	}
	return props
}

// checkArguments records diagnostics for argument count mismatches and for
// color arguments that are not valid CSS colors. It never changes the output.
func (s *StyleResolver) checkArguments(directive string, template string, args []string) {
	props := placeholderProperties(template)
	if len(props) != len(args) {
		s.diagnostics.add(StageStyle, MsgArgumentMismatch, directive)
	}

	for i, arg := range args {
		if i >= len(props) || !strings.HasSuffix(props[i], "color") {
			continue
		}
		if _, err := csscolorparser.Parse(arg); err != nil {
			s.diagnostics.add(StageStyle, MsgInvalidColor, arg)
		}
	}
}
