// Package editor is the sole gateway through which a poster is modified. Every
// state-changing operation flags the document dirty; not-found conditions are
// silent no-ops so an in-flight UI event racing a deletion cannot crash the
// session. The editor performs no permission checks; gating is layered on top
// by the caller (see the access package).
//
// An Editor is single-goroutine by contract: all operations run synchronously
// on the caller's event sequence. Exports read Poster() clones, never live
// state.
package editor

import (
	"posterlib/document"
	"posterlib/observability"
)

const (
	// Zoom bounds and step applied by ZoomIn, ZoomOut and SetZoom.
	MinZoom  = 0.2
	MaxZoom  = 3.0
	ZoomStep = 0.1
)

// AlignMode selects which axes AlignElement recenters.
type AlignMode string

const (
	AlignCenter  AlignMode = "center"
	AlignHCenter AlignMode = "h-center"
	AlignVCenter AlignMode = "v-center"
)

// Editor owns the active poster and its interaction state.
type Editor struct {
	log observability.Logger

	poster            *document.Poster
	activePageID      string
	selectedElementID string
	zoom              float64
	dirty             bool
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger attaches a logger. The default is a no-op logger.
func WithLogger(log observability.Logger) Option {
	return func(e *Editor) {
		if log != nil {
			e.log = log
		}
	}
}

// New returns an editor with no active poster and zoom 1.0.
func New(opts ...Option) *Editor {
	e := &Editor{log: observability.NopLogger{}, zoom: 1.0}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// InitPoster replaces the active poster with a fresh one in the given format.
// Selection is cleared, zoom resets to 1.0, and the new document is not dirty.
func (e *Editor) InitPoster(format document.Format) *document.Poster {
	e.adopt(document.NewPoster(format))
	e.log.Info("poster initialized", observability.String("format", string(format)))
	return e.poster
}

// InitFromTemplate replaces the active poster with a template instantiation.
// Same reset semantics as InitPoster.
func (e *Editor) InitFromTemplate(tpl *document.Template) *document.Poster {
	e.adopt(document.InstantiateTemplate(tpl))
	e.log.Info("poster created from template", observability.String("template", tpl.ID))
	return e.poster
}

func (e *Editor) adopt(p *document.Poster) {
	e.poster = p
	e.activePageID = p.Pages[0].ID
	e.selectedElementID = ""
	e.zoom = 1.0
	e.dirty = false
}

// Poster returns the live poster. Callers that need an export snapshot must
// Clone it.
func (e *Editor) Poster() *document.Poster { return e.poster }

// ActivePage returns the active page, or nil when no poster is loaded.
func (e *Editor) ActivePage() *document.Page {
	if e.poster == nil {
		return nil
	}
	return e.poster.PageByID(e.activePageID)
}

// ActivePageID returns the id of the active page.
func (e *Editor) ActivePageID() string { return e.activePageID }

// SelectedElementID returns the current selection, or "" when nothing is
// selected.
func (e *Editor) SelectedElementID() string { return e.selectedElementID }

// SelectedElement resolves the selection on the active page, or nil.
func (e *Editor) SelectedElement() document.Element {
	page := e.ActivePage()
	if page == nil || e.selectedElementID == "" {
		return nil
	}
	for _, el := range page.Elements {
		if el.Base().ID == e.selectedElementID {
			return el
		}
	}
	return nil
}

// SelectElement sets the selection. Selecting does not mark the document
// dirty.
func (e *Editor) SelectElement(id string) { e.selectedElementID = id }

// IsDirty reports whether the document has unsaved mutations.
func (e *Editor) IsDirty() bool { return e.dirty }

// MarkSaved clears the dirty flag after an external save acknowledgment.
func (e *Editor) MarkSaved() { e.dirty = false }

// Zoom returns the current zoom level.
func (e *Editor) Zoom() float64 { return e.zoom }

// ZoomIn raises the zoom one step, clamped to MaxZoom.
func (e *Editor) ZoomIn() { e.SetZoom(e.zoom + ZoomStep) }

// ZoomOut lowers the zoom one step, clamped to MinZoom.
func (e *Editor) ZoomOut() { e.SetZoom(e.zoom - ZoomStep) }

// SetZoom clamps level into [MinZoom, MaxZoom].
func (e *Editor) SetZoom(level float64) {
	switch {
	case level < MinZoom:
		e.zoom = MinZoom
	case level > MaxZoom:
		e.zoom = MaxZoom
	default:
		e.zoom = level
	}
}

// AddPage appends an empty page and makes it active.
func (e *Editor) AddPage() *document.Page {
	if e.poster == nil {
		return nil
	}
	page := &document.Page{ID: document.NewID()}
	e.poster.Pages = append(e.poster.Pages, page)
	e.activePageID = page.ID
	e.selectedElementID = ""
	e.dirty = true
	return page
}

// DeletePage removes a page. Deleting the last remaining page is refused.
// When the removed page was active, the page at max(0, removedIndex-1) becomes
// active.
func (e *Editor) DeletePage(id string) {
	if e.poster == nil || len(e.poster.Pages) <= 1 {
		return
	}
	idx := e.poster.PageIndex(id)
	if idx < 0 {
		return
	}
	wasActive := e.activePageID == id
	e.poster.Pages = append(e.poster.Pages[:idx], e.poster.Pages[idx+1:]...)
	if wasActive {
		next := idx - 1
		if next < 0 {
			next = 0
		}
		e.activePageID = e.poster.Pages[next].ID
		e.selectedElementID = ""
	}
	e.dirty = true
}

// SetActivePage switches the active page and clears the selection. Selection
// is page-scoped and never carries across a switch. Unknown ids are ignored.
func (e *Editor) SetActivePage(id string) {
	if e.poster == nil || e.poster.PageByID(id) == nil {
		return
	}
	e.activePageID = id
	e.selectedElementID = ""
}

// AddElement appends an element to the active page (top of z-order), selects
// it and marks the document dirty. Without an active page this is a no-op.
func (e *Editor) AddElement(el document.Element) {
	page := e.ActivePage()
	if page == nil {
		return
	}
	page.Elements = append(page.Elements, el)
	e.selectedElementID = el.Base().ID
	e.dirty = true
}

// UpdateElement applies a mutation to the element with the given id on the
// active page. Ids living on other pages are not reachable; mutation is always
// scoped to the active page.
func (e *Editor) UpdateElement(id string, apply func(document.Element)) {
	page := e.ActivePage()
	if page == nil {
		return
	}
	for _, el := range page.Elements {
		if el.Base().ID == id {
			apply(el)
			e.dirty = true
			return
		}
	}
}

// DeleteElement removes an element from the active page by identity and
// clears the selection if it was selected.
func (e *Editor) DeleteElement(id string) {
	page := e.ActivePage()
	if page == nil {
		return
	}
	for i, el := range page.Elements {
		if el.Base().ID == id {
			page.Elements = append(page.Elements[:i], page.Elements[i+1:]...)
			if e.selectedElementID == id {
				e.selectedElementID = ""
			}
			e.dirty = true
			return
		}
	}
}

// MoveElementUp swaps the element one step toward the top of the z-order
// (later in the slice). At the top it is a no-op.
func (e *Editor) MoveElementUp(id string) { e.moveElement(id, +1) }

// MoveElementDown swaps the element one step toward the bottom of the
// z-order. At the bottom it is a no-op.
func (e *Editor) MoveElementDown(id string) { e.moveElement(id, -1) }

func (e *Editor) moveElement(id string, dir int) {
	page := e.ActivePage()
	if page == nil {
		return
	}
	for i, el := range page.Elements {
		if el.Base().ID != id {
			continue
		}
		j := i + dir
		if j < 0 || j >= len(page.Elements) {
			return
		}
		page.Elements[i], page.Elements[j] = page.Elements[j], page.Elements[i]
		e.dirty = true
		return
	}
}

// AlignElement recenters an element's bounding box on the poster's
// authoritative dimensions. h-center touches only x, v-center only y, center
// both.
func (e *Editor) AlignElement(id string, mode AlignMode) {
	if e.poster == nil {
		return
	}
	width, height := e.poster.WidthMm, e.poster.HeightMm
	e.UpdateElement(id, func(el document.Element) {
		base := el.Base()
		if mode == AlignCenter || mode == AlignHCenter {
			base.XMm = (width - base.WidthMm) / 2
		}
		if mode == AlignCenter || mode == AlignVCenter {
			base.YMm = (height - base.HeightMm) / 2
		}
	})
}

// ResizePoster relabels the poster's format and overwrites its explicit
// dimensions with the format's nominal size, swapped for landscape. Element
// coordinates are deliberately left untouched; content may end up outside the
// new canvas.
func (e *Editor) ResizePoster(format document.Format, orientation document.Orientation) {
	if e.poster == nil {
		return
	}
	dims := document.FormatDimensions(format)
	if orientation == document.Landscape {
		dims.WidthMm, dims.HeightMm = dims.HeightMm, dims.WidthMm
	}
	e.poster.Format = format
	e.poster.WidthMm = dims.WidthMm
	e.poster.HeightMm = dims.HeightMm
	e.dirty = true
	e.log.Debug("poster resized",
		observability.String("format", string(format)),
		observability.String("orientation", string(orientation)))
}
