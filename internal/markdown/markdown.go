// Package markdown converts note markup to HTML for page bodies and to styled
// text for terminal previews.
package markdown

import (
	"bytes"
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// DefaultStyle is the chroma style used for fenced code blocks.
const DefaultStyle = "monokai"

// Converter turns markdown into HTML. Fenced code blocks are highlighted with
// CSS classes, so a page needs the stylesheet from WriteStylesheet.
type Converter struct {
	md    goldmark.Markdown
	style *chroma.Style
}

// NewConverter returns a Converter using the named chroma style. Unknown
// names fall back to chroma's default style.
func NewConverter(styleName string) *Converter {
	if styleName == "" {
		styleName = DefaultStyle
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(styleName),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	return &Converter{md: md, style: styles.Get(styleName)}
}

// Convert renders src to an HTML fragment.
func (c *Converter) Convert(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}

// WriteStylesheet writes the CSS rules matching the classes emitted for
// highlighted code.
func (c *Converter) WriteStylesheet(w io.Writer) error {
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(w, c.style); err != nil {
		return fmt.Errorf("failed to write stylesheet: %w", err)
	}
	return nil
}

// StyleName is the name of the resolved chroma style.
func (c *Converter) StyleName() string {
	return c.style.Name
}
