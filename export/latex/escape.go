package latex

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"posterlib/document"
)

var (
	filenameSpaceRe = regexp.MustCompile(`\s+`)
	filenameBadRe   = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)
	shortHexRe      = regexp.MustCompile(`^#([a-fA-F0-9]{3})$`)
	fullHexRe       = regexp.MustCompile(`^#([a-fA-F0-9]{6})$`)
	specialRe       = regexp.MustCompile(`[{}$&#_^%]`)
)

// SanitizeFilename reduces a name to [A-Za-z0-9_.-], collapsing whitespace to
// underscores. Empty results fall back to the given default.
func SanitizeFilename(value, fallback string) string {
	normalized := filenameSpaceRe.ReplaceAllString(strings.TrimSpace(value), "_")
	normalized = filenameBadRe.ReplaceAllString(normalized, "")
	if normalized == "" {
		return fallback
	}
	return normalized
}

// EscapeText escapes the LaTeX special characters \ { } $ & # _ ^ % ~.
func EscapeText(value string) string {
	escaped := strings.ReplaceAll(value, `\`, `\textbackslash{}`)
	escaped = specialRe.ReplaceAllString(escaped, `\$0`)
	return strings.ReplaceAll(escaped, "~", `\textasciitilde{}`)
}

// NormalizeHexColor converts "#abc" or "#aabbcc" to uppercase "AABBCC" and
// passes the transparent sentinel through. Anything else becomes fallback.
func NormalizeHexColor(color, fallback string) string {
	candidate := strings.TrimSpace(color)
	if candidate == "" {
		return fallback
	}
	if strings.EqualFold(candidate, document.ColorTransparent) {
		return document.ColorTransparent
	}
	if m := shortHexRe.FindStringSubmatch(candidate); m != nil {
		var sb strings.Builder
		for _, r := range m[1] {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		return strings.ToUpper(sb.String())
	}
	if m := fullHexRe.FindStringSubmatch(candidate); m != nil {
		return strings.ToUpper(m[1])
	}
	return fallback
}

// mm formats a millimeter value with two decimals. Non-finite values collapse
// to zero.
func mm(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	return fmt.Sprintf("%.2f", value)
}

// pt converts a CSS-ish px font size to printer points, clamped to 8 px
// minimum.
func pt(fontSize float64) string {
	safe := fontSize
	if math.IsNaN(safe) || math.IsInf(safe, 0) {
		safe = 12
	}
	if safe < 8 {
		safe = 8
	}
	return fmt.Sprintf("%.1f", safe*0.75)
}

// primaryFontFamily picks the first entry of a CSS font-family list, without
// quotes. Empty input resolves to the bundled default.
func primaryFontFamily(fontFamily string) string {
	first := strings.TrimSpace(strings.Split(fontFamily, ",")[0])
	first = strings.Trim(first, `'"`)
	if first == "" {
		return "TeX Gyre Heros"
	}
	return first
}
