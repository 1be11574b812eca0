// Package latex renders a poster snapshot to a standalone .tex document plus
// extracted image asset files. Every element is placed on an absolute
// millimeter grid anchored at the page's top-left; the generated preamble
// works under both pdflatex and the fontspec engines.
package latex

import (
	"context"
	"fmt"
	"strings"
	"time"

	"posterlib/assets"
	"posterlib/document"
	"posterlib/observability"
)

// ImageAsset is one extracted image file of the export bundle.
type ImageAsset struct {
	ElementID string
	FileName  string
	Data      []byte
}

// Bundle is the full export artifact: the .tex source and the image files it
// references. The caller is responsible for offering all files for download.
type Bundle struct {
	Document    string
	ImageAssets []ImageAsset
}

// Exporter generates LaTeX bundles. The zero value works but resolves no
// remote images.
type Exporter struct {
	Fetcher assets.Fetcher
	Log     observability.Logger
	Tracer  observability.Tracer

	// ResolveAssetRef maps a stored asset reference to a fetchable source
	// (URL or data URI) for image elements that carry no preview source.
	// Optional; when nil such elements render as placeholders.
	ResolveAssetRef func(ctx context.Context, assetRef string) (string, error)
}

func (e *Exporter) log() observability.Logger {
	if e.Log != nil {
		return e.Log
	}
	return observability.NopLogger{}
}

func (e *Exporter) tracer() observability.Tracer {
	if e.Tracer != nil {
		return e.Tracer
	}
	return observability.NopTracer()
}

// Export walks a frozen poster snapshot and produces the bundle. A single
// unresolvable image degrades to a placeholder box; it never aborts the
// export. Only context cancellation or a poster without pages is an error.
func (e *Exporter) Export(ctx context.Context, poster *document.Poster) (*Bundle, error) {
	ctx, span := e.tracer().StartSpan(ctx, "export.latex")
	defer span.Finish()
	start := time.Now()

	if poster == nil || len(poster.Pages) == 0 {
		err := fmt.Errorf("latex export: poster has no pages")
		span.SetError(err)
		return nil, err
	}

	imageAssets, err := e.collectImageAssets(ctx, poster)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	byElementID := make(map[string]ImageAsset, len(imageAssets))
	for _, asset := range imageAssets {
		byElementID[asset.ElementID] = asset
	}

	var pages []string
	for i, page := range poster.Pages {
		var blocks []string
		for _, el := range page.Elements {
			blocks = append(blocks, e.renderElement(el, byElementID))
		}
		body := strings.Join(blocks, "\n\n")
		if i < len(poster.Pages)-1 {
			body += "\n\\newpage\n"
		}
		pages = append(pages, body)
	}

	doc := strings.Join([]string{
		"% !TEX program = pdflatex",
		"% Generated by posterlib",
		"\\documentclass{article}",
		"\\usepackage{iftex}",
		"\\ifPDFTeX",
		"\\usepackage[utf8]{inputenc}",
		"\\usepackage[T1]{fontenc}",
		"\\usepackage{helvet}",
		"\\renewcommand{\\familydefault}{\\sfdefault}",
		"\\newcommand{\\PosterSetFont}[1]{\\fontfamily{phv}\\selectfont}",
		"\\else",
		"\\usepackage{fontspec}",
		"\\newcommand{\\PosterSetFont}[1]{\\IfFontExistsTF{#1}{\\fontspec{#1}}{\\fontspec{TeX Gyre Heros}}}",
		"\\fi",
		"\\usepackage{xcolor}",
		"\\usepackage[absolute,overlay]{textpos}",
		"\\usepackage{graphicx}",
		fmt.Sprintf("\\usepackage[margin=0mm,paperwidth=%smm,paperheight=%smm]{geometry}", mm(poster.WidthMm), mm(poster.HeightMm)),
		"\\pagestyle{empty}",
		fmt.Sprintf("\\definecolor{PosterBg}{HTML}{%s}", NormalizeHexColor(poster.BackgroundColor, "FFFFFF")),
		fmt.Sprintf("\\title{%s}", EscapeText(posterTitle(poster))),
		"\\begin{document}",
		"\\TPGrid{1mm}{1mm}",
		"\\pagecolor{PosterBg}",
		strings.Join(pages, "\n"),
		"\\end{document}",
	}, "\n")

	assetBytes := 0
	for _, asset := range imageAssets {
		assetBytes += len(asset.Data)
	}
	span.SetTag(observability.MetricExportPageCount, len(poster.Pages))
	span.SetTag(observability.MetricExportAssetBytes, assetBytes)
	span.SetTag(observability.MetricExportDuration, time.Since(start))

	e.log().Info("latex export complete",
		observability.Int("pages", len(poster.Pages)),
		observability.Int("assets", len(imageAssets)))
	return &Bundle{Document: doc, ImageAssets: imageAssets}, nil
}

// FileName derives the .tex file name from the poster title. The file name
// fallback for a blank title is "poster", distinct from the \title fallback.
func FileName(poster *document.Poster) string {
	return SanitizeFilename(strings.TrimSpace(poster.Meta.Title), "poster") + ".tex"
}

func posterTitle(poster *document.Poster) string {
	if strings.TrimSpace(poster.Meta.Title) == "" {
		return "Poster Export"
	}
	return poster.Meta.Title
}

func (e *Exporter) renderElement(el document.Element, byElementID map[string]ImageAsset) string {
	switch v := el.(type) {
	case *document.TextElement:
		return textBlock(v)
	case *document.ImageElement:
		return imageBlock(v, byElementID)
	case *document.FormulaElement:
		return formulaBlock(v)
	default:
		return ""
	}
}

func textBlock(el *document.TextElement) string {
	payload := textPayload(el)
	background := NormalizeHexColor(el.BackgroundColor, "000000")

	var body string
	if background == document.ColorTransparent {
		body = fmt.Sprintf("\\parbox[t][%smm][t]{%smm}{\n%s\n}", mm(el.HeightMm), mm(el.WidthMm), payload)
	} else {
		body = strings.Join([]string{
			"\\setlength{\\fboxsep}{0mm}",
			fmt.Sprintf("\\colorbox[HTML]{%s}{\\parbox[t][%smm][t]{%smm}{", background, mm(el.HeightMm), mm(el.WidthMm)),
			payload,
			"}}",
		}, "\n")
	}
	return wrapTextblock(&el.ElementBase, body)
}

func textPayload(el *document.TextElement) string {
	text := strings.ReplaceAll(EscapeText(el.Text), "\n", " \\\\ ")

	align := "\\raggedright"
	switch el.Align {
	case document.AlignCenter:
		align = "\\centering"
	case document.AlignRight:
		align = "\\raggedleft"
	}

	var fontFlags []string
	if el.FontWeight == document.WeightBold {
		fontFlags = append(fontFlags, "\\bfseries")
	}
	if el.FontStyle == document.StyleItalic {
		fontFlags = append(fontFlags, "\\itshape")
	}

	lines := []string{
		fmt.Sprintf("\\PosterSetFont{%s}", EscapeText(primaryFontFamily(el.FontFamily))),
		fmt.Sprintf("\\fontsize{%spt}{%spt}\\selectfont", pt(el.FontSizePt), pt(el.FontSizePt*1.25)),
		fmt.Sprintf("\\color[HTML]{%s}", NormalizeHexColor(el.Color, "1F2937")),
		strings.Join(fontFlags, " "),
		align,
		text,
	}
	var kept []string
	for _, line := range lines {
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func imageBlock(el *document.ImageElement, byElementID map[string]ImageAsset) string {
	asset, ok := byElementID[el.ID]
	if !ok {
		body := fmt.Sprintf("\\fbox{\\parbox[c][%smm][c]{%smm}{\\centering Image not found: %s}}",
			mm(el.HeightMm), mm(el.WidthMm), EscapeText(el.Name))
		return wrapTextblock(&el.ElementBase, body)
	}
	// keepaspectratio makes the box an upper bound rather than an exact size.
	// Text boxes use exact dimensions; this asymmetry is part of the output
	// compatibility contract.
	body := fmt.Sprintf("\\includegraphics[width=%smm,height=%smm,keepaspectratio]{%s}",
		mm(el.WidthMm), mm(el.HeightMm), EscapeText(asset.FileName))
	return wrapTextblock(&el.ElementBase, body)
}

func formulaBlock(el *document.FormulaElement) string {
	body := strings.Join([]string{
		fmt.Sprintf("\\parbox[t][%smm][c]{%smm}{", mm(el.HeightMm), mm(el.WidthMm)),
		fmt.Sprintf("\\[%s\\]", el.LatexSource),
		"}",
	}, "\n")
	return wrapTextblock(&el.ElementBase, body)
}

func wrapTextblock(base *document.ElementBase, body string) string {
	return strings.Join([]string{
		fmt.Sprintf("\\begin{textblock*}{%smm}(%smm,%smm)", mm(base.WidthMm), mm(base.XMm), mm(base.YMm)),
		body,
		"\\end{textblock*}",
	}, "\n")
}

// collectImageAssets resolves every image element's source in document order
// and assigns deterministic file names. Elements whose source cannot be
// resolved are skipped; the renderer emits placeholders for them.
func (e *Exporter) collectImageAssets(ctx context.Context, poster *document.Poster) ([]ImageAsset, error) {
	var out []ImageAsset
	index := 1
	for _, page := range poster.Pages {
		for _, el := range page.Elements {
			img, ok := el.(*document.ImageElement)
			if !ok {
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			src := img.PreviewSrc
			if src == "" && img.AssetRef != "" && e.ResolveAssetRef != nil {
				resolved, err := e.ResolveAssetRef(ctx, img.AssetRef)
				if err != nil {
					e.log().Warn("asset reference unresolved, emitting placeholder",
						observability.String("element", img.ID),
						observability.String("ref", img.AssetRef),
						observability.Error("err", err))
					continue
				}
				src = resolved
			}
			if src == "" {
				continue
			}

			data, mimeType, err := e.resolve(ctx, src)
			if err != nil {
				e.log().Warn("image source unresolved, emitting placeholder",
					observability.String("element", img.ID),
					observability.Error("err", err))
				continue
			}

			name := img.Name
			if name == "" {
				name = fmt.Sprintf("image_%d", index)
			}
			fileName := fmt.Sprintf("%s_%d.%s",
				SanitizeFilename(name, fmt.Sprintf("image_%d", index)),
				index,
				assets.ExtensionForMIME(mimeType))
			out = append(out, ImageAsset{ElementID: img.ID, FileName: fileName, Data: data})
			index++
		}
	}
	return out, nil
}

func (e *Exporter) resolve(ctx context.Context, src string) ([]byte, string, error) {
	if assets.IsDataURI(src) {
		return assets.DecodeDataURI(src)
	}
	if e.Fetcher == nil {
		return nil, "", fmt.Errorf("no fetcher configured for %s", src)
	}
	return e.Fetcher.FetchBytes(ctx, src)
}
