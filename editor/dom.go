package editor

import (
	"posterlib/document"
	"posterlib/scripting"
)

// ScriptDOM adapts an Editor to the scripting package's EditorDOM interface.
// All script-driven changes flow through the regular mutation operations, so
// dirty tracking and selection semantics hold for automation too.
type ScriptDOM struct {
	editor *Editor
	// AlertFunc receives script alert messages; nil drops them.
	AlertFunc func(message string)
}

// NewScriptDOM wraps an editor for script access.
func NewScriptDOM(e *Editor) *ScriptDOM { return &ScriptDOM{editor: e} }

var _ scripting.EditorDOM = (*ScriptDOM)(nil)

func (d *ScriptDOM) PageCount() int {
	if d.editor.poster == nil {
		return 0
	}
	return len(d.editor.poster.Pages)
}

func (d *ScriptDOM) ActivePageIndex() int {
	if d.editor.poster == nil {
		return -1
	}
	return d.editor.poster.PageIndex(d.editor.activePageID)
}

func (d *ScriptDOM) SetActivePage(index int) bool {
	if d.editor.poster == nil || index < 0 || index >= len(d.editor.poster.Pages) {
		return false
	}
	d.editor.SetActivePage(d.editor.poster.Pages[index].ID)
	return true
}

func (d *ScriptDOM) AddText(text string, xMm, yMm, widthMm, heightMm float64) string {
	if d.editor.ActivePage() == nil {
		return ""
	}
	style := document.StyleForVariant(document.VariantBody)
	el := &document.TextElement{
		ElementBase: document.ElementBase{
			ID:       document.NewID(),
			Name:     "Text",
			XMm:      xMm,
			YMm:      yMm,
			WidthMm:  widthMm,
			HeightMm: heightMm,
		},
		Text:            text,
		Variant:         document.VariantBody,
		Align:           document.AlignLeft,
		FontSizePt:      style.FontSizePt,
		FontFamily:      style.FontFamily,
		Color:           style.Color,
		FontWeight:      style.FontWeight,
		FontStyle:       document.StyleNormal,
		BackgroundColor: document.ColorTransparent,
	}
	d.editor.AddElement(el)
	return el.ID
}

func (d *ScriptDOM) AddFormula(latex string, xMm, yMm, widthMm, heightMm float64) string {
	if d.editor.ActivePage() == nil {
		return ""
	}
	el := &document.FormulaElement{
		ElementBase: document.ElementBase{
			ID:       document.NewID(),
			Name:     "Formula",
			XMm:      xMm,
			YMm:      yMm,
			WidthMm:  widthMm,
			HeightMm: heightMm,
		},
		LatexSource: latex,
	}
	d.editor.AddElement(el)
	return el.ID
}

// elementProxy mutates through the editor so every change marks the document
// dirty.
type elementProxy struct {
	editor *Editor
	id     string
}

func (d *ScriptDOM) GetElement(id string) scripting.ElementProxy {
	page := d.editor.ActivePage()
	if page == nil {
		return nil
	}
	for _, el := range page.Elements {
		if el.Base().ID == id {
			return &elementProxy{editor: d.editor, id: id}
		}
	}
	return nil
}

func (d *ScriptDOM) Alert(message string) {
	if d.AlertFunc != nil {
		d.AlertFunc(message)
	}
}

func (p *elementProxy) GetText() string {
	page := p.editor.ActivePage()
	if page == nil {
		return ""
	}
	for _, el := range page.Elements {
		if el.Base().ID != p.id {
			continue
		}
		switch v := el.(type) {
		case *document.TextElement:
			return v.Text
		case *document.FormulaElement:
			return v.LatexSource
		}
	}
	return ""
}

func (p *elementProxy) SetText(text string) {
	p.editor.UpdateElement(p.id, func(el document.Element) {
		switch v := el.(type) {
		case *document.TextElement:
			v.Text = text
		case *document.FormulaElement:
			v.LatexSource = text
		}
	})
}

func (p *elementProxy) GetPosition() (float64, float64) {
	page := p.editor.ActivePage()
	if page == nil {
		return 0, 0
	}
	for _, el := range page.Elements {
		if el.Base().ID == p.id {
			return el.Base().XMm, el.Base().YMm
		}
	}
	return 0, 0
}

func (p *elementProxy) SetPosition(xMm, yMm float64) {
	p.editor.UpdateElement(p.id, func(el document.Element) {
		el.Base().XMm = xMm
		el.Base().YMm = yMm
	})
}
