package document

// Format names a paper or flyer size. The name is a label; a Poster's explicit
// WidthMm/HeightMm stay authoritative and may diverge after a custom resize.
type Format string

const (
	FormatA4          Format = "A4"
	FormatA4Landscape Format = "A4 Landscape"
	FormatA3          Format = "A3"
	FormatA2          Format = "A2"
	FormatFlyer       Format = "Flyer"
)

// Dimensions is a page size in millimeters.
type Dimensions struct {
	WidthMm  float64
	HeightMm float64
}

var formatDimensions = map[Format]Dimensions{
	FormatA4:          {WidthMm: 210, HeightMm: 297},
	FormatA4Landscape: {WidthMm: 297, HeightMm: 210},
	FormatA3:          {WidthMm: 297, HeightMm: 420},
	FormatA2:          {WidthMm: 420, HeightMm: 594},
	FormatFlyer:       {WidthMm: 100, HeightMm: 210},
}

// FormatDimensions returns the nominal size of a named format. Unknown formats
// fall back to A4 without error.
func FormatDimensions(f Format) Dimensions {
	if d, ok := formatDimensions[f]; ok {
		return d
	}
	return formatDimensions[FormatA4]
}

// Orientation selects which way the nominal dimensions are applied.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)
