package latex

import "testing"

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, fallback, want string
	}{
		{"My Poster", "poster", "My_Poster"},
		{"  spaced   name  ", "poster", "spaced_name"},
		{"Ümläut!?", "poster", "mlut"},
		{"§§§", "poster", "poster"},
		{"", "poster", "poster"},
		{"fig-1.final_v2", "poster", "fig-1.final_v2"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in, tt.fallback); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain text", "plain text"},
		{"100% sure", `100\% sure`},
		{"a & b", `a \& b`},
		{"under_score", `under\_score`},
		{"price $5", `price \$5`},
		{"x^2 #1", `x\^2 \#1`},
		{"{group}", `\{group\}`},
		{"home~dir", `home\textasciitilde{}dir`},
		// The backslash expansion runs first, so its braces get escaped too.
		{`a\b`, `a\textbackslash\{\}b`},
	}
	for _, tt := range tests {
		if got := EscapeText(tt.in); got != tt.want {
			t.Errorf("EscapeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeHexColor(t *testing.T) {
	tests := []struct {
		in, fallback, want string
	}{
		{"#abc", "000000", "AABBCC"},
		{"#A1b2C3", "000000", "A1B2C3"},
		{" #ff0000 ", "000000", "FF0000"},
		{"transparent", "000000", "transparent"},
		{"Transparent", "000000", "transparent"},
		{"red", "000000", "000000"},
		{"#12345", "FFFFFF", "FFFFFF"},
		{"", "FFFFFF", "FFFFFF"},
	}
	for _, tt := range tests {
		if got := NormalizeHexColor(tt.in, tt.fallback); got != tt.want {
			t.Errorf("NormalizeHexColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPtConversion(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{16, "12.0"},
		{17, "12.8"}, // 12.75 rounds up
		{8, "6.0"},
		{4, "6.0"}, // clamped to the 8px floor first
		{0, "6.0"},
	}
	for _, tt := range tests {
		if got := pt(tt.in); got != tt.want {
			t.Errorf("pt(%g) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrimaryFontFamily(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`'PT Sans', sans-serif`, "PT Sans"},
		{`"Fira Sans"`, "Fira Sans"},
		{"Helvetica", "Helvetica"},
		{"", "TeX Gyre Heros"},
		{"  , sans-serif", "TeX Gyre Heros"},
	}
	for _, tt := range tests {
		if got := primaryFontFamily(tt.in); got != tt.want {
			t.Errorf("primaryFontFamily(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
