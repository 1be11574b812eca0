package document

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPoster_SeedsTitleElement(t *testing.T) {
	p := NewPoster(FormatA4)

	if p.WidthMm != 210 || p.HeightMm != 297 {
		t.Fatalf("A4 dimensions = %gx%g, want 210x297", p.WidthMm, p.HeightMm)
	}
	if len(p.Pages) != 1 {
		t.Fatalf("expected one seeded page, got %d", len(p.Pages))
	}
	if len(p.Pages[0].Elements) != 1 {
		t.Fatalf("expected one seeded element, got %d", len(p.Pages[0].Elements))
	}
	title, ok := p.Pages[0].Elements[0].(*TextElement)
	if !ok {
		t.Fatalf("seeded element is %T, want *TextElement", p.Pages[0].Elements[0])
	}
	if title.XMm != 20 || title.YMm != 20 || title.WidthMm != 170 || title.HeightMm != 20 {
		t.Fatalf("title box = (%g,%g,%g,%g), want (20,20,170,20)",
			title.XMm, title.YMm, title.WidthMm, title.HeightMm)
	}
	if title.Align != AlignCenter || title.FontWeight != WeightBold {
		t.Fatalf("title styling = %s/%s, want center/bold", title.Align, title.FontWeight)
	}
	if title.ID == "" || p.ID == "" || p.Pages[0].ID == "" {
		t.Fatal("ids must be assigned on creation")
	}
}

func TestFormatDimensions(t *testing.T) {
	tests := []struct {
		format Format
		want   Dimensions
	}{
		{FormatA4, Dimensions{210, 297}},
		{FormatA4Landscape, Dimensions{297, 210}},
		{FormatA3, Dimensions{297, 420}},
		{FormatA2, Dimensions{420, 594}},
		{FormatFlyer, Dimensions{100, 210}},
		// Unknown formats silently fall back to A4.
		{Format("B1"), Dimensions{210, 297}},
		{Format(""), Dimensions{210, 297}},
	}
	for _, tt := range tests {
		if got := FormatDimensions(tt.format); got != tt.want {
			t.Errorf("FormatDimensions(%q) = %+v, want %+v", tt.format, got, tt.want)
		}
	}
}

func TestPosterClone_IsIndependent(t *testing.T) {
	p := NewPoster(FormatA3)
	clone := p.Clone()

	if diff := cmp.Diff(p, clone); diff != "" {
		t.Fatalf("clone differs from original (-want +got):\n%s", diff)
	}

	title := p.Pages[0].Elements[0].(*TextElement)
	title.Text = "changed after clone"
	title.XMm = 99

	cloned := clone.Pages[0].Elements[0].(*TextElement)
	if cloned.Text == "changed after clone" || cloned.XMm == 99 {
		t.Fatal("mutating the original reached the clone")
	}

	p.Pages = append(p.Pages, &Page{ID: NewID()})
	if len(clone.Pages) != 1 {
		t.Fatal("appending a page to the original reached the clone")
	}
}

func TestInstantiateTemplate_AssignsFreshIDs(t *testing.T) {
	tpl := &Template{
		ID:     NewID(),
		Name:   "Seminar",
		Format: FormatA2,
		Pages: []*Page{{
			ID: "tpl-page",
			Elements: []Element{
				&TextElement{ElementBase: ElementBase{ID: "tpl-text", WidthMm: 50, HeightMm: 10}, Text: "Headline"},
				&ImageElement{ElementBase: ElementBase{ID: "tpl-img", WidthMm: 40, HeightMm: 40}, Fit: FitContain},
			},
		}},
	}

	p := InstantiateTemplate(tpl)

	if p.TemplateID != tpl.ID {
		t.Fatalf("TemplateID = %q, want provenance %q", p.TemplateID, tpl.ID)
	}
	if p.WidthMm != 420 || p.HeightMm != 594 {
		t.Fatalf("instantiated dimensions = %gx%g, want A2", p.WidthMm, p.HeightMm)
	}
	if len(p.Pages) != 1 || len(p.Pages[0].Elements) != 2 {
		t.Fatalf("template pages not copied: %d pages", len(p.Pages))
	}
	if p.Pages[0].ID == "tpl-page" {
		t.Fatal("page id was not refreshed")
	}
	for i, el := range p.Pages[0].Elements {
		if id := el.Base().ID; id == "tpl-text" || id == "tpl-img" || id == "" {
			t.Fatalf("element %d id not refreshed: %q", i, id)
		}
	}
	// The template itself must stay untouched.
	if tpl.Pages[0].Elements[0].Base().ID != "tpl-text" {
		t.Fatal("instantiation mutated the template")
	}

	got := p.Pages[0].Elements[0].(*TextElement)
	if got.Text != "Headline" {
		t.Fatalf("element content lost in copy: %q", got.Text)
	}
}

func TestInstantiateTemplate_EmptyTemplateGetsOnePage(t *testing.T) {
	p := InstantiateTemplate(&Template{ID: NewID(), Format: FormatA4})
	if len(p.Pages) != 1 {
		t.Fatalf("expected a single empty page, got %d", len(p.Pages))
	}
}

func TestPageJSONRoundTrip(t *testing.T) {
	page := &Page{
		ID: "p1",
		Elements: []Element{
			&TextElement{
				ElementBase: ElementBase{ID: "e1", Name: "Body", XMm: 10, YMm: 12, WidthMm: 80, HeightMm: 30},
				Text:        "Hello\nWorld",
				Variant:     VariantBody,
				Align:       AlignLeft,
				FontSizePt:  17,
				FontFamily:  "PT Sans",
				Color:       "#112233",
				FontWeight:  WeightNormal,
				FontStyle:   StyleNormal,
				BackgroundColor: ColorTransparent,
			},
			&ImageElement{
				ElementBase: ElementBase{ID: "e2", Name: "Logo", XMm: 5, YMm: 5, WidthMm: 20, HeightMm: 20},
				AssetRef:    "asset-1",
				Fit:         FitCover,
			},
			&FormulaElement{
				ElementBase: ElementBase{ID: "e3", Name: "Euler", XMm: 40, YMm: 60, WidthMm: 60, HeightMm: 15},
				LatexSource: `e^{i\pi}+1=0`,
			},
		},
	}

	data, err := json.Marshal(page)
	if err != nil {
		t.Fatalf("marshal page: %v", err)
	}

	var decoded Page
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal page: %v", err)
	}
	if diff := cmp.Diff(page, &decoded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalElement_UnknownType(t *testing.T) {
	if _, err := UnmarshalElement([]byte(`{"type":"circle","id":"x"}`)); err == nil {
		t.Fatal("expected error for unknown discriminant")
	}
}

func TestParseSourcePlaceholders(t *testing.T) {
	content := `% format: A3
\documentclass{article}
{{text:title|Seminar Poster}}
{{ image : hero|Hero }}
{{latex:formula|\int_0^1 x^2 dx}}
{{text:footer}}`

	got := ParseSourcePlaceholders(content)
	want := []Placeholder{
		{Type: TypeText, Key: "title", Fallback: "Seminar Poster"},
		{Type: TypeImage, Key: "hero", Fallback: "Hero "},
		{Type: TypeFormula, Key: "formula", Fallback: `\int_0^1 x^2 dx`},
		{Type: TypeText, Key: "footer", Fallback: ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("placeholders mismatch (-want +got):\n%s", diff)
	}

	if f := SourceFormatHint(content); f != FormatA3 {
		t.Fatalf("format hint = %q, want A3", f)
	}
	if f := SourceFormatHint("no hint here"); f != FormatA4 {
		t.Fatalf("missing hint should default to A4, got %q", f)
	}
}
