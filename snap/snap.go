// Package snap computes drag-snap corrections against canvas bounds and
// sibling element edges. It is a pure per-pointer-move computation; the caller
// applies the corrected position to the live transform and commits through the
// editor only on drag release.
package snap

import (
	"math"

	"posterlib/document"
)

// Threshold is the maximum distance, in canvas units, at which an edge snaps
// to a candidate.
const Threshold = 6

// Axis tags a guide line orientation.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Guide is an alignment line to render during a drag. Position is the matched
// candidate coordinate on the guide's axis.
type Guide struct {
	Axis     Axis
	Position float64
}

// Result carries the corrected position and at most one guide per axis.
type Result struct {
	X      float64
	Y      float64
	Guides []Guide
}

// box is an axis-aligned bounding box with its comparison triples.
type box struct {
	left, right, top, bottom float64
}

func (b box) centerX() float64 { return (b.left + b.right) / 2 }
func (b box) centerY() float64 { return (b.top + b.bottom) / 2 }

// Snap corrects a proposed top-left position for the dragged element.
// Candidates are the canvas left/center/right (and top/middle/bottom) plus the
// edge triple of every sibling. Per axis the single best match below Threshold
// wins; a later equally-good candidate does not replace an earlier strictly
// better one, and the kept guide is always the most recent best match.
func Snap(dragged document.Element, rawX, rawY float64, siblings []document.Element, canvasW, canvasH float64) Result {
	base := dragged.Base()
	w := base.WidthMm
	h := base.HeightMm

	d := box{left: rawX, right: rawX + w, top: rawY, bottom: rawY + h}

	candidatesX := []float64{0, canvasW / 2, canvasW}
	candidatesY := []float64{0, canvasH / 2, canvasH}
	for _, other := range siblings {
		ob := other.Base()
		if ob.ID == base.ID {
			continue
		}
		o := box{left: ob.XMm, right: ob.XMm + ob.WidthMm, top: ob.YMm, bottom: ob.YMm + ob.HeightMm}
		candidatesX = append(candidatesX, o.left, o.centerX(), o.right)
		candidatesY = append(candidatesY, o.top, o.centerY(), o.bottom)
	}

	edgesX := [3]float64{d.left, d.centerX(), d.right}
	edgesY := [3]float64{d.top, d.centerY(), d.bottom}
	// Offset of each edge from the element's stored x (resp. y).
	offsetsX := [3]float64{0, w / 2, w}
	offsetsY := [3]float64{0, h / 2, h}

	res := Result{X: rawX, Y: rawY}

	bestDx := float64(Threshold)
	var guideX *Guide
	for _, cx := range candidatesX {
		for i, ex := range edgesX {
			if dist := math.Abs(ex - cx); dist < bestDx {
				bestDx = dist
				res.X = cx - offsetsX[i]
				guideX = &Guide{Axis: AxisX, Position: cx}
			}
		}
	}

	bestDy := float64(Threshold)
	var guideY *Guide
	for _, cy := range candidatesY {
		for i, ey := range edgesY {
			if dist := math.Abs(ey - cy); dist < bestDy {
				bestDy = dist
				res.Y = cy - offsetsY[i]
				guideY = &Guide{Axis: AxisY, Position: cy}
			}
		}
	}

	if guideX != nil {
		res.Guides = append(res.Guides, *guideX)
	}
	if guideY != nil {
		res.Guides = append(res.Guides, *guideY)
	}
	return res
}
