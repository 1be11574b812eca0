package document

import "regexp"

// ZoneRole tags an allowed zone with its intended content.
type ZoneRole string

const (
	ZoneTitle ZoneRole = "title"
	ZoneText  ZoneRole = "text"
	ZoneImage ZoneRole = "image"
	ZoneLogo  ZoneRole = "logo"
)

// AllowedZone is a declarative region of a template. Advisory only; nothing in
// the core enforces it.
type AllowedZone struct {
	Role     ZoneRole `json:"role"`
	XMm      float64  `json:"xMm"`
	YMm      float64  `json:"yMm"`
	WidthMm  float64  `json:"widthMm"`
	HeightMm float64  `json:"heightMm"`
	Editable bool     `json:"editable"`
}

// SourceEngine tags the markup language a source template was derived from.
type SourceEngine string

const (
	EngineLaTeX SourceEngine = "latex"
	EngineTypst SourceEngine = "typst"
)

// TemplateSource keeps the raw uploaded document a template was derived from.
type TemplateSource struct {
	Engine   SourceEngine `json:"engine"`
	Content  string       `json:"content"`
	FileName string       `json:"fileName"`
}

// Template is a reusable page layout. Its element ids are placeholders; every
// instantiation copies pages and elements under fresh ids so the template
// stays reusable.
type Template struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Format       Format          `json:"format"`
	AllowedZones []AllowedZone   `json:"allowedZones"`
	Pages        []*Page         `json:"pages"`
	Source       *TemplateSource `json:"source,omitempty"`
	Thumbnail    string          `json:"thumbnail,omitempty"`
}

// InstantiateTemplate deep-copies a template into a fresh poster. Pages and
// elements all get new ids; TemplateID records provenance.
func InstantiateTemplate(tpl *Template) *Poster {
	dims := FormatDimensions(tpl.Format)
	poster := &Poster{
		ID:         NewID(),
		TemplateID: tpl.ID,
		Format:     tpl.Format,
		WidthMm:    dims.WidthMm,
		HeightMm:   dims.HeightMm,
		Meta:       Meta{Title: tpl.Name},
	}
	for _, page := range tpl.Pages {
		copied := &Page{ID: NewID(), Elements: make([]Element, len(page.Elements))}
		for i, el := range page.Elements {
			fresh := el.CloneElement()
			fresh.Base().ID = NewID()
			copied.Elements[i] = fresh
		}
		poster.Pages = append(poster.Pages, copied)
	}
	if len(poster.Pages) == 0 {
		poster.Pages = []*Page{{ID: NewID()}}
	}
	return poster
}

// Placeholder is one {{type:key|fallback}} token found in source-template
// content.
type Placeholder struct {
	Type     ElementType
	Key      string
	Fallback string
}

var (
	placeholderRe = regexp.MustCompile(`\{\{\s*(text|image|latex)\s*:\s*([a-zA-Z0-9_-]+)(?:\|([^}]*))?\s*\}\}`)
	formatHintRe  = regexp.MustCompile(`(?i)(?:format|poster[_ -]?format)\s*[:=]\s*(A4 Landscape|A4|A3|A2|Flyer)`)
)

// ParseSourcePlaceholders extracts placeholder tokens from raw LaTeX or Typst
// template content, in encounter order.
func ParseSourcePlaceholders(content string) []Placeholder {
	matches := placeholderRe.FindAllStringSubmatch(content, -1)
	out := make([]Placeholder, 0, len(matches))
	for _, m := range matches {
		typ := TypeText
		switch m[1] {
		case "image":
			typ = TypeImage
		case "latex":
			typ = TypeFormula
		}
		out = append(out, Placeholder{Type: typ, Key: m[2], Fallback: m[3]})
	}
	return out
}

// SourceFormatHint scans template content for a format annotation like
// "% format: A3". It returns A4 when no hint is present.
func SourceFormatHint(content string) Format {
	if m := formatHintRe.FindStringSubmatch(content); m != nil {
		return Format(m[1])
	}
	return FormatA4
}
