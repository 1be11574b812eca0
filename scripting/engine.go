// Package scripting runs user automation scripts against a poster editor
// through a small, safe DOM surface. Scripts go through the same mutation API
// as interactive edits; permission gating stays the caller's concern.
package scripting

import (
	"context"
)

// Engine represents a scripting engine (e.g., JavaScript).
type Engine interface {
	// Execute executes a script in the context of the editor.
	Execute(ctx context.Context, script string) (interface{}, error)

	// RegisterDOM registers the editor Document Object Model with the engine.
	RegisterDOM(dom EditorDOM) error
}

// EditorDOM exposes the poster document to scripts. It provides a controlled
// API; scripts never touch the document model directly.
type EditorDOM interface {
	// PageCount returns the number of pages of the active poster.
	PageCount() int

	// ActivePageIndex returns the zero-based index of the active page.
	ActivePageIndex() int

	// SetActivePage activates the page at a zero-based index. It reports
	// whether the index was valid.
	SetActivePage(index int) bool

	// AddText appends a body text element to the active page and returns its
	// id, or "" when no poster is loaded.
	AddText(text string, xMm, yMm, widthMm, heightMm float64) string

	// AddFormula appends a formula element to the active page and returns its
	// id, or "" when no poster is loaded.
	AddFormula(latex string, xMm, yMm, widthMm, heightMm float64) string

	// GetElement returns a proxy for an element on the active page, or nil.
	GetElement(id string) ElementProxy

	// Alert shows a message through the host UI (if supported by the runner).
	Alert(message string)
}

// ElementProxy represents one element exposed to scripts.
type ElementProxy interface {
	GetText() string
	SetText(text string)
	GetPosition() (xMm, yMm float64)
	SetPosition(xMm, yMm float64)
}
