// Package document defines the poster data model: the sealed element union,
// pages, the poster aggregate, named formats, and templates. It carries no
// mutation logic beyond construction helpers and deep copies; all editing goes
// through the editor package.
package document

import "github.com/google/uuid"

// NewID returns a fresh opaque identifier for posters, pages and elements.
func NewID() string { return uuid.NewString() }

// Page is an ordered element container. Slice order is z-order: later entries
// render on top. Every mutation and every serializer preserves this order.
type Page struct {
	ID       string    `json:"id"`
	Elements []Element `json:"elements"`
}

// ClonePage deep-copies the page, keeping ids.
func (p *Page) ClonePage() *Page {
	c := &Page{ID: p.ID, Elements: make([]Element, len(p.Elements))}
	for i, el := range p.Elements {
		c.Elements[i] = el.CloneElement()
	}
	return c
}

// Meta holds poster identity metadata.
type Meta struct {
	Title   string `json:"title"`
	OwnerID string `json:"ownerId"`
}

// Poster is the root aggregate. Pages is never empty. WidthMm/HeightMm are
// authoritative; Format is a label that may diverge after a custom resize.
type Poster struct {
	ID              string  `json:"id"`
	TemplateID      string  `json:"templateId,omitempty"`
	Format          Format  `json:"format"`
	WidthMm         float64 `json:"widthMm"`
	HeightMm        float64 `json:"heightMm"`
	Pages           []*Page `json:"pages"`
	Meta            Meta    `json:"meta"`
	BackgroundColor string  `json:"backgroundColor,omitempty"`
}

// NewPoster creates a poster in the given format with one page seeded with a
// default title element.
func NewPoster(format Format) *Poster {
	dims := FormatDimensions(format)
	return &Poster{
		ID:       NewID(),
		Format:   format,
		WidthMm:  dims.WidthMm,
		HeightMm: dims.HeightMm,
		Pages: []*Page{{
			ID:       NewID(),
			Elements: []Element{defaultTitleElement(dims.WidthMm)},
		}},
		Meta: Meta{Title: "New Poster"},
	}
}

// Clone deep-copies the poster. Exporters serialize a clone so edits that land
// mid-export cannot reach the snapshot.
func (p *Poster) Clone() *Poster {
	c := *p
	c.Pages = make([]*Page, len(p.Pages))
	for i, page := range p.Pages {
		c.Pages[i] = page.ClonePage()
	}
	return &c
}

// PageByID returns the page with the given id, or nil.
func (p *Poster) PageByID(id string) *Page {
	for _, page := range p.Pages {
		if page.ID == id {
			return page
		}
	}
	return nil
}

// PageIndex reports the position of a page id in document order, or -1.
func (p *Poster) PageIndex(id string) int {
	for i, page := range p.Pages {
		if page.ID == id {
			return i
		}
	}
	return -1
}
