package minihtml

// DefaultStylePrefix is the tag prefix of style definition nodes.
const DefaultStylePrefix = "s-"

// Tables holds the static data consumed by the renderer.
type Tables struct {
	// Translation maps source tag names to output element names.
	// Tags not in the table are used verbatim.
	Translation map[string]string

	// Directives maps style directive names to CSS declaration templates,
	// with "{}" as positional placeholders.
	Directives map[string]string

	// StylePrefix marks the tags that define style classes.
	StylePrefix string
}

// DefaultTables returns a fresh copy of the built-in tables.
func DefaultTables() Tables {
	return Tables{
		Translation: map[string]string{
			"d":     "div",
			"p":     "p",
			"br":    "br",
			"i":     "img",
			"l":     "a",
			"hl":    "h1",
			"hm":    "h2",
			"hs":    "h3",
			"hss":   "h4",
			"hsss":  "h5",
			"hline": "hr",
		},
		Directives: map[string]string{
			"bold":         "font-weight: bold",
			"italic":       "font-style: italic",
			"underline":    "text-decoration: underline",
			"strike":       "text-decoration: line-through",
			"text-center":  "text-align: center",
			"text-right":   "text-align: right",
			"card":         "border: 1px solid #ddd; border-radius: 8px; padding: 15px; margin: 10px 0",
			"color":        "color: {}",
			"size":         "font-size: {}",
			"font":         "font-family: {}",
			"background":   "background-color: {}",
			"padding":      "padding: {}",
			"margin":       "margin: {}",
			"m":            "margin: {}",
			"p":            "padding: {}",
			"codeblock":    "background-color: #f4f4f4; padding: 10px; border-left: 3px solid #ccc",
			"width":        "width: {}",
			"height":       "height: {}",
			"width-height": "width: {}; height: {}",
		},
		StylePrefix: DefaultStylePrefix,
	}
}

// Translate returns the output element name for tag.
func (t Tables) Translate(tag string) string {
	if translated, ok := t.Translation[tag]; ok {
		return translated
	}
	return tag
}
