package document

// TextStyle is one row of the variant style table.
type TextStyle struct {
	FontFamily string
	FontSizePt float64
	FontWeight FontWeight
	Color      string
}

// Variant style table. Only defaults; elements carry their own resolved values
// after creation.
var TextVariantStyles = map[TextVariant]TextStyle{
	VariantTitle:    {FontFamily: "PT Sans", FontSizePt: 48, FontWeight: WeightBold, Color: "#000000"},
	VariantSubtitle: {FontFamily: "PT Sans", FontSizePt: 21, FontWeight: WeightBold, Color: "#000000"},
	VariantBody:     {FontFamily: "PT Sans", FontSizePt: 17, FontWeight: WeightNormal, Color: "#000000"},
}

// StyleForVariant returns the style row for a variant, defaulting to body.
func StyleForVariant(v TextVariant) TextStyle {
	if s, ok := TextVariantStyles[v]; ok {
		return s
	}
	return TextVariantStyles[VariantBody]
}

const titleMarginMm = 20

// defaultTitleElement builds the single seeded element of a fresh poster:
// a centered bold title spanning the page width minus margins.
func defaultTitleElement(pageWidthMm float64) *TextElement {
	style := StyleForVariant(VariantTitle)
	return &TextElement{
		ElementBase: ElementBase{
			ID:       NewID(),
			Name:     "Title",
			XMm:      titleMarginMm,
			YMm:      titleMarginMm,
			WidthMm:  pageWidthMm - 2*titleMarginMm,
			HeightMm: 20,
		},
		Text:            "Poster Title",
		Variant:         VariantTitle,
		Align:           AlignCenter,
		FontSizePt:      style.FontSizePt,
		FontFamily:      style.FontFamily,
		Color:           style.Color,
		FontWeight:      style.FontWeight,
		FontStyle:       StyleNormal,
		BackgroundColor: ColorTransparent,
	}
}
