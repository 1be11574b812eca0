// Package raster produces the captured-pixels PDF export: each poster page is
// rendered to an image by an external collaborator, then appended as one
// full-bleed PDF page sized exactly to the poster's millimeter dimensions.
// Unlike the LaTeX path there is no per-element degradation — a page that
// fails to render aborts the whole export.
package raster

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // register decoders for captured page images
	_ "image/png"
	"io"
	"strings"
	"time"

	_ "golang.org/x/image/webp"

	"posterlib/document"
	"posterlib/export/latex"
	"posterlib/observability"
	"posterlib/pdf"
)

// PageRenderer rasterizes one page's visible area at the given oversampling
// scale. Implementations live outside the core (a DOM capture, a canvas
// snapshot); the returned bytes must be an encoded PNG, JPEG or WebP image.
type PageRenderer interface {
	RenderPage(ctx context.Context, elements []document.Element, widthMm, heightMm float64, scale int) ([]byte, error)
}

// DefaultScale is the oversampling factor renderers are asked for.
const DefaultScale = 4

// Config tunes the export.
type Config struct {
	// Scale is the requested oversampling factor; zero means DefaultScale.
	Scale int
}

// Exporter writes raster PDF exports.
type Exporter struct {
	Renderer PageRenderer
	Config   Config
	Log      observability.Logger
	Tracer   observability.Tracer
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

// Scale returns the effective oversampling factor.
func (e *Exporter) Scale() int {
	if e.Config.Scale > 0 {
		return e.Config.Scale
	}
	return DefaultScale
}

// Export captures every page of a frozen poster snapshot in document order
// and writes a multi-page PDF.
func (e *Exporter) Export(ctx context.Context, poster *document.Poster, out io.Writer) error {
	ctx, span := e.tracer().StartSpan(ctx, "export.raster")
	defer span.Finish()
	start := time.Now()

	fail := func(err error) error {
		span.SetError(err)
		return err
	}
	if poster == nil || len(poster.Pages) == 0 {
		return fail(fmt.Errorf("raster export: poster has no pages"))
	}
	if e.Renderer == nil {
		return fail(fmt.Errorf("raster export: no page renderer configured"))
	}

	scale := e.Scale()
	doc := &pdf.ImageDocument{Pages: make([]pdf.ImagePage, 0, len(poster.Pages))}
	for i, page := range poster.Pages {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}
		encoded, err := e.Renderer.RenderPage(ctx, page.Elements, poster.WidthMm, poster.HeightMm, scale)
		if err != nil {
			return fail(fmt.Errorf("raster export: render page %d: %w", i+1, err))
		}
		img, _, err := image.Decode(bytes.NewReader(encoded))
		if err != nil {
			return fail(fmt.Errorf("raster export: decode page %d capture: %w", i+1, err))
		}
		w, h, rgb := flattenRGB(img)
		doc.Pages = append(doc.Pages, pdf.ImagePage{
			WidthMm:     poster.WidthMm,
			HeightMm:    poster.HeightMm,
			PixelWidth:  w,
			PixelHeight: h,
			RGB:         rgb,
		})
	}

	if err := pdf.WriteImageDocument(doc, out); err != nil {
		return fail(fmt.Errorf("raster export: %w", err))
	}
	span.SetTag(observability.MetricExportPageCount, len(doc.Pages))
	span.SetTag(observability.MetricExportDuration, time.Since(start))
	e.log().Info("raster export complete", observability.Int("pages", len(doc.Pages)))
	return nil
}

// FileName derives the .pdf file name from the poster title.
func FileName(poster *document.Poster) string {
	title := strings.TrimSpace(poster.Meta.Title)
	return latex.SanitizeFilename(title, "poster") + ".pdf"
}

// flattenRGB converts any decoded image to row-major 8-bit RGB, compositing
// alpha over white to match the capture collaborator's white page background.
func flattenRGB(src image.Image) (int, int, []byte) {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(nrgba, nrgba.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Over)

	rgb := make([]byte, 0, w*h*3)
	for i := 0; i < w*h; i++ {
		off := i * 4
		rgb = append(rgb, nrgba.Pix[off], nrgba.Pix[off+1], nrgba.Pix[off+2])
	}
	return w, h, rgb
}
