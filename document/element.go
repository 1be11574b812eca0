package document

// ElementType discriminates the closed set of poster element variants.
type ElementType string

const (
	TypeText    ElementType = "text"
	TypeImage   ElementType = "image"
	TypeFormula ElementType = "latexFormula"
)

// TextVariant selects the default styling tier of a text element.
type TextVariant string

const (
	VariantTitle    TextVariant = "title"
	VariantSubtitle TextVariant = "subtitle"
	VariantBody     TextVariant = "body"
)

// Align is the horizontal text alignment within a text element's box.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// FontWeight and FontStyle carry the two binary typography flags.
type FontWeight string

const (
	WeightNormal FontWeight = "normal"
	WeightBold   FontWeight = "bold"
)

type FontStyle string

const (
	StyleNormal FontStyle = "normal"
	StyleItalic FontStyle = "italic"
)

// ImageFit controls how image content fills the element box.
type ImageFit string

const (
	FitContain ImageFit = "contain"
	FitCover   ImageFit = "cover"
)

// ColorTransparent is the sentinel for "no color" in color fields that
// otherwise hold a hex value.
const ColorTransparent = "transparent"

// ElementBase holds the fields common to every element variant. Positions and
// sizes are millimeters with a top-left origin; rotation is clockwise degrees.
type ElementBase struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	XMm         float64 `json:"xMm"`
	YMm         float64 `json:"yMm"`
	WidthMm     float64 `json:"widthMm"`
	HeightMm    float64 `json:"heightMm"`
	RotationDeg float64 `json:"rotationDeg"`
	Locked      bool    `json:"locked"`
}

// Element is the sealed union of poster element variants. Serializers switch
// on the concrete type; the compiler checks exhaustiveness through the three
// pointer variants below.
type Element interface {
	Type() ElementType
	Base() *ElementBase
	CloneElement() Element
}

// TextElement is a styled, possibly multi-line text box.
type TextElement struct {
	ElementBase
	Text            string      `json:"text"`
	Variant         TextVariant `json:"variant"`
	Align           Align       `json:"align"`
	FontSizePt      float64     `json:"fontSizePt"`
	FontFamily      string      `json:"fontFamily"`
	Color           string      `json:"color"`
	FontWeight      FontWeight  `json:"fontWeight"`
	FontStyle       FontStyle   `json:"fontStyle"`
	BackgroundColor string      `json:"backgroundColor"`
}

func (e *TextElement) Type() ElementType  { return TypeText }
func (e *TextElement) Base() *ElementBase { return &e.ElementBase }

func (e *TextElement) CloneElement() Element {
	c := *e
	return &c
}

// ImageElement references externally stored image data. PreviewSrc may hold a
// direct URL or data URI used before AssetRef resolves.
type ImageElement struct {
	ElementBase
	AssetRef   string   `json:"assetRef"`
	PreviewSrc string   `json:"previewSrc,omitempty"`
	Fit        ImageFit `json:"fit"`
}

func (e *ImageElement) Type() ElementType  { return TypeImage }
func (e *ImageElement) Base() *ElementBase { return &e.ElementBase }

func (e *ImageElement) CloneElement() Element {
	c := *e
	return &c
}

// FormulaElement carries raw math markup, rendered literally by serializers.
type FormulaElement struct {
	ElementBase
	LatexSource string `json:"latexSource"`
}

func (e *FormulaElement) Type() ElementType  { return TypeFormula }
func (e *FormulaElement) Base() *ElementBase { return &e.ElementBase }

func (e *FormulaElement) CloneElement() Element {
	c := *e
	return &c
}
