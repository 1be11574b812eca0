// Package typst renders a poster snapshot to a single .typ source string.
// Unlike the LaTeX path it extracts no assets: image elements become labeled
// placeholder boxes. Geometry mirrors the LaTeX exporter millimeter for
// millimeter.
package typst

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"posterlib/document"
	"posterlib/export/latex"
)

// Export renders the poster. It never fails: every element variant has a
// textual rendering.
func Export(poster *document.Poster) string {
	var pages []string
	for i, page := range poster.Pages {
		var blocks []string
		for _, el := range page.Elements {
			blocks = append(blocks, renderElement(el))
		}
		body := strings.Join(blocks, "\n\n")
		if i > 0 {
			body = "#pagebreak()\n" + body
		}
		pages = append(pages, body)
	}

	return strings.Join([]string{
		"// Generated by posterlib",
		fmt.Sprintf(`#set page(width: %smm, height: %smm, margin: 0mm, fill: rgb("#%s"))`,
			mm(poster.WidthMm), mm(poster.HeightMm),
			latex.NormalizeHexColor(poster.BackgroundColor, "FFFFFF")),
		`#set text(font: "PT Sans")`,
		strings.Join(pages, "\n\n"),
	}, "\n")
}

// FileName derives the .typ file name from the poster title.
func FileName(poster *document.Poster) string {
	title := strings.TrimSpace(poster.Meta.Title)
	return latex.SanitizeFilename(title, "poster") + ".typ"
}

func renderElement(el document.Element) string {
	switch v := el.(type) {
	case *document.TextElement:
		return textBlock(v)
	case *document.ImageElement:
		return imageBlock(v)
	case *document.FormulaElement:
		return formulaBlock(v)
	default:
		return ""
	}
}

func textBlock(el *document.TextElement) string {
	size := int(math.Round(el.FontSizePt))
	if size < 8 {
		size = 8
	}
	return strings.Join([]string{
		place(&el.ElementBase),
		fmt.Sprintf("  #box(width: %smm, height: %smm, inset: 2pt)[", mm(el.WidthMm), mm(el.HeightMm)),
		fmt.Sprintf(`    #set text(size: %dpt, fill: rgb("#%s"))`, size, latex.NormalizeHexColor(el.Color, "000000")),
		"    " + strconv.Quote(el.Text),
		"  ]",
		"])",
	}, "\n")
}

func imageBlock(el *document.ImageElement) string {
	label := strconv.Quote("Image: " + el.Name)
	return strings.Join([]string{
		place(&el.ElementBase),
		fmt.Sprintf("  #rect(width: %smm, height: %smm, stroke: 1pt + gray)[%s]", mm(el.WidthMm), mm(el.HeightMm), label),
		"])",
	}, "\n")
}

func formulaBlock(el *document.FormulaElement) string {
	return strings.Join([]string{
		place(&el.ElementBase),
		fmt.Sprintf("  $%s$", el.LatexSource),
		"])",
	}, "\n")
}

func place(base *document.ElementBase) string {
	return fmt.Sprintf("#place(left + %smm, top + %smm, [", mm(base.XMm), mm(base.YMm))
}

func mm(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	return fmt.Sprintf("%.2f", value)
}
