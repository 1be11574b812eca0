package typst

import (
	"context"
	"strings"
	"testing"

	"posterlib/document"
	"posterlib/export/latex"
)

func samplePoster() *document.Poster {
	return &document.Poster{
		ID:       "poster-1",
		Format:   document.FormatA4,
		WidthMm:  210,
		HeightMm: 297,
		Meta:     document.Meta{Title: "Lab Results 2025"},
		Pages: []*document.Page{
			{
				ID: "p1",
				Elements: []document.Element{
					&document.TextElement{
						ElementBase: document.ElementBase{ID: "t1", XMm: 18, YMm: 20, WidthMm: 80, HeightMm: 22},
						Text:        "hello \"world\"",
						FontSizePt:  17,
						Color:       "#1f2937",
					},
					&document.FormulaElement{
						ElementBase: document.ElementBase{ID: "f1", XMm: 30, YMm: 60, WidthMm: 100, HeightMm: 25},
						LatexSource: `e^{i\pi}+1=0`,
					},
				},
			},
			{
				ID: "p2",
				Elements: []document.Element{
					&document.ImageElement{
						ElementBase: document.ElementBase{ID: "i1", Name: "Logo", XMm: 10, YMm: 10, WidthMm: 40, HeightMm: 30},
					},
				},
			},
		},
	}
}

func TestExport_Structure(t *testing.T) {
	doc := Export(samplePoster())

	for _, want := range []string{
		`#set page(width: 210.00mm, height: 297.00mm, margin: 0mm, fill: rgb("#FFFFFF"))`,
		`#set text(font: "PT Sans")`,

		"#place(left + 18.00mm, top + 20.00mm, [",
		"#box(width: 80.00mm, height: 22.00mm, inset: 2pt)[",
		// 17px rounds to 17pt here; the floor is 8.
		`#set text(size: 17pt, fill: rgb("#1F2937"))`,
		`"hello \"world\""`,

		`$e^{i\pi}+1=0$`,

		"#rect(width: 40.00mm, height: 30.00mm, stroke: 1pt + gray)[\"Image: Logo\"]",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}

	if got := strings.Count(doc, "#pagebreak()"); got != 1 {
		t.Errorf("pagebreak count = %d, want 1 (pages after the first only)", got)
	}
}

func TestExport_FontSizeFloor(t *testing.T) {
	poster := samplePoster()
	poster.Pages[0].Elements[0].(*document.TextElement).FontSizePt = 3

	doc := Export(poster)
	if !strings.Contains(doc, "#set text(size: 8pt,") {
		t.Error("sizes below 8 must clamp to 8pt")
	}
}

func TestFileName(t *testing.T) {
	poster := samplePoster()
	if got := FileName(poster); got != "Lab_Results_2025.typ" {
		t.Fatalf("FileName = %q", got)
	}
	poster.Meta.Title = ""
	if got := FileName(poster); got != "poster.typ" {
		t.Fatalf("FileName for empty title = %q", got)
	}
}

// Both serializers must place every element at identical millimeter
// coordinates; a reader diffing the two outputs should find the same geometry.
func TestExport_GeometryMatchesLatex(t *testing.T) {
	poster := samplePoster()

	typDoc := Export(poster)
	texBundle, err := (&latex.Exporter{}).Export(context.Background(), poster)
	if err != nil {
		t.Fatalf("latex export: %v", err)
	}

	pairs := []struct{ typ, tex string }{
		{"#place(left + 18.00mm, top + 20.00mm, [", "\\begin{textblock*}{80.00mm}(18.00mm,20.00mm)"},
		{"#place(left + 30.00mm, top + 60.00mm, [", "\\begin{textblock*}{100.00mm}(30.00mm,60.00mm)"},
		{"#place(left + 10.00mm, top + 10.00mm, [", "\\begin{textblock*}{40.00mm}(10.00mm,10.00mm)"},
	}
	for _, p := range pairs {
		if !strings.Contains(typDoc, p.typ) {
			t.Errorf("typst output missing %q", p.typ)
		}
		if !strings.Contains(texBundle.Document, p.tex) {
			t.Errorf("latex output missing %q", p.tex)
		}
	}
}
