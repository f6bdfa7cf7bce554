package site

import (
	"os"

	"github.com/hesusruiz/minihtml/sliceedit"
)

// Placeholders recognized in a page template
const (
	TitlePlaceholder   = "{{title}}"
	ContentPlaceholder = "{{content}}"
)

// Template is an HTML page the compiled fragments are placed into.
type Template struct {
	src []byte
}

// NewTemplate returns a template for src.
func NewTemplate(src []byte) *Template {
	return &Template{src: src}
}

// LoadTemplate reads a template from fileName.
func LoadTemplate(fileName string) (*Template, error) {
	src, err := os.ReadFile(fileName)
	if err != nil {
		return nil, NewPathConfigError(err, ErrMsgTemplateRead, fileName)
	}
	return NewTemplate(src), nil
}

// Apply returns the page with every title placeholder replaced by title and
// every content placeholder replaced by content. The template is not modified.
func (t *Template) Apply(title string, content []byte) []byte {
	b := sliceedit.NewBuffer(t.src)
	b.ReplaceAllString(TitlePlaceholder, title)
	b.ReplaceAllString(ContentPlaceholder, string(content))
	return b.Bytes()
}
