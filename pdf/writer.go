package pdf

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"sort"
)

// MmToPt converts millimeters to PDF user units (points).
func MmToPt(mm float64) float64 { return mm * 72.0 / 25.4 }

// ImagePage is one page of an image document: an RGB raster drawn full-bleed
// onto a page of the given size.
type ImagePage struct {
	WidthMm  float64
	HeightMm float64
	// Image raster: 8-bit RGB, row-major, 3 bytes per pixel.
	PixelWidth  int
	PixelHeight int
	RGB         []byte
}

// ImageDocument is a sequence of image pages.
type ImageDocument struct {
	Pages []ImagePage
}

// WriteImageDocument serializes the document: catalog, page tree, one page +
// image XObject + content stream per input page, classic xref table and
// trailer. Pages are emitted in input order.
func WriteImageDocument(doc *ImageDocument, out io.Writer) error {
	if len(doc.Pages) == 0 {
		return fmt.Errorf("pdf: document has no pages")
	}

	objects := make(map[ObjectRef]Object)
	objNum := 1
	next := func() ObjectRef {
		ref := ObjectRef{Num: objNum}
		objNum++
		return ref
	}

	catalogRef := next()
	pagesRef := next()

	pageRefs := make([]ObjectRef, 0, len(doc.Pages))
	for _, page := range doc.Pages {
		compressed, err := flateCompress(page.RGB)
		if err != nil {
			return fmt.Errorf("pdf: compress page image: %w", err)
		}
		imageRef := next()
		objects[imageRef] = &Stream{
			Dict: Dict{
				"Type":             Name("XObject"),
				"Subtype":          Name("Image"),
				"Width":            Integer(page.PixelWidth),
				"Height":           Integer(page.PixelHeight),
				"ColorSpace":       Name("DeviceRGB"),
				"BitsPerComponent": Integer(8),
				"Filter":           Name("FlateDecode"),
			},
			Data: compressed,
		}

		w := MmToPt(page.WidthMm)
		h := MmToPt(page.HeightMm)
		content := fmt.Sprintf("q\n%.4f 0 0 %.4f 0 0 cm\n/Im0 Do\nQ\n", w, h)
		contentRef := next()
		objects[contentRef] = &Stream{Dict: Dict{}, Data: []byte(content)}

		pageRef := next()
		objects[pageRef] = Dict{
			"Type":     Name("Page"),
			"Parent":   Ref(pagesRef),
			"MediaBox": Array{Integer(0), Integer(0), Real(w), Real(h)},
			"Resources": Dict{
				"XObject": Dict{"Im0": Ref(imageRef)},
			},
			"Contents": Ref(contentRef),
		}
		pageRefs = append(pageRefs, pageRef)
	}

	kids := make(Array, 0, len(pageRefs))
	for _, ref := range pageRefs {
		kids = append(kids, Ref(ref))
	}
	objects[pagesRef] = Dict{
		"Type":  Name("Pages"),
		"Count": Integer(len(pageRefs)),
		"Kids":  kids,
	}
	objects[catalogRef] = Dict{
		"Type":  Name("Catalog"),
		"Pages": Ref(pagesRef),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.7\n%\xE2\xE3\xCF\xD3\n")

	ordered := make([]ObjectRef, 0, len(objects))
	for ref := range objects {
		ordered = append(ordered, ref)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Num < ordered[j].Num })

	offsets := make(map[int]int64, len(ordered))
	for _, ref := range ordered {
		offsets[ref.Num] = int64(buf.Len())
		buf.Write(serializeObject(ref, objects[ref]))
	}

	xrefOffset := buf.Len()
	maxObjNum := ordered[len(ordered)-1].Num
	fmt.Fprintf(&buf, "xref\n0 %d\n", maxObjNum+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= maxObjNum; i++ {
		if off, ok := offsets[i]; ok {
			fmt.Fprintf(&buf, "%010d 00000 n \n", off)
		} else {
			buf.WriteString("0000000000 65535 f \n")
		}
	}
	fmt.Fprintf(&buf, "trailer\n<</Root %d 0 R /Size %d>>\nstartxref\n%d\n%%%%EOF\n",
		catalogRef.Num, maxObjNum+1, xrefOffset)

	_, err := out.Write(buf.Bytes())
	return err
}

func flateCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
