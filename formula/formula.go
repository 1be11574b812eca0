// Package formula turns a formula element's raw math markup into MathML for
// live preview, and derives a plain-text label from that markup for
// accessibility. Export serializers never go through this package; they emit
// the raw source verbatim.
package formula

import (
	"bytes"
	"strings"

	treeblood "github.com/wyatt915/goldmark-treeblood"
	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
)

// Preview converts LaTeX math source to MathML markup.
func Preview(latex string) (string, error) {
	// Wrap in display math delimiters for goldmark processing.
	source := "$$" + latex + "$$"

	md := goldmark.New(
		goldmark.WithExtensions(
			treeblood.MathML(),
		),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// AltText extracts the readable text content of MathML/HTML markup, for use
// as a screen-reader label. Whitespace runs collapse to single spaces.
func AltText(markup string) (string, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.Join(strings.Fields(sb.String()), " "), nil
}
