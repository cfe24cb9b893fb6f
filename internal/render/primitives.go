package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Drawing primitives replace pixel values outright (draw.Src semantics).
// Translucent colors land in the canvas with their own alpha channel and
// are not blended with whatever was underneath.

// fillCircle sets every pixel within distance r of (cx, cy).
func fillCircle(img *image.NRGBA, cx, cy, r float64, c color.NRGBA) {
	x0, y0, x1, y1 := clampBox(img, cx-r, cy-r, cx+r, cy+r)
	rr := r * r
	for y := y0; y <= y1; y++ {
		dy := float64(y) - cy
		for x := x0; x <= x1; x++ {
			dx := float64(x) - cx
			if dx*dx+dy*dy <= rr {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

// strokeCircle draws a ring of the given width. The stroke grows inward
// from the nominal radius: pixels with r-width < dist <= r.
func strokeCircle(img *image.NRGBA, cx, cy, r float64, width int, c color.NRGBA) {
	inner := r - float64(width)
	if inner < 0 {
		inner = 0
	}
	x0, y0, x1, y1 := clampBox(img, cx-r, cy-r, cx+r, cy+r)
	rr, ii := r*r, inner*inner
	for y := y0; y <= y1; y++ {
		dy := float64(y) - cy
		for x := x0; x <= x1; x++ {
			dx := float64(x) - cx
			d2 := dx*dx + dy*dy
			if d2 <= rr && d2 > ii {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

// strokeArc draws the part of a strokeCircle ring whose angle lies in the
// sweep from..to, in degrees. 0 degrees points east and angles increase
// clockwise (screen coordinates, y grows downward). Both endpoints are
// included; from and to may be negative.
func strokeArc(img *image.NRGBA, cx, cy, r float64, width int, from, to float64, c color.NRGBA) {
	inner := r - float64(width)
	if inner < 0 {
		inner = 0
	}
	sweep := math.Mod(to-from+360, 360)
	x0, y0, x1, y1 := clampBox(img, cx-r, cy-r, cx+r, cy+r)
	rr, ii := r*r, inner*inner
	for y := y0; y <= y1; y++ {
		dy := float64(y) - cy
		for x := x0; x <= x1; x++ {
			dx := float64(x) - cx
			d2 := dx*dx + dy*dy
			if d2 > rr || d2 <= ii {
				continue
			}
			ang := math.Atan2(dy, dx) * 180 / math.Pi
			if math.Mod(ang-from+720, 360) <= sweep {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

// fillRect fills the box [x0,x1]x[y0,y1], inclusive on all four edges.
func fillRect(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	r := image.Rect(x0, y0, x1+1, y1+1).Intersect(img.Bounds())
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// clampBox converts a float bounding box to integer pixel coordinates
// clipped to the image bounds.
func clampBox(img *image.NRGBA, x0, y0, x1, y1 float64) (int, int, int, int) {
	b := img.Bounds()
	ix0 := int(math.Floor(x0))
	iy0 := int(math.Floor(y0))
	ix1 := int(math.Ceil(x1))
	iy1 := int(math.Ceil(y1))
	if ix0 < b.Min.X {
		ix0 = b.Min.X
	}
	if iy0 < b.Min.Y {
		iy0 = b.Min.Y
	}
	if ix1 > b.Max.X-1 {
		ix1 = b.Max.X - 1
	}
	if iy1 > b.Max.Y-1 {
		iy1 = b.Max.Y - 1
	}
	return ix0, iy0, ix1, iy1
}
