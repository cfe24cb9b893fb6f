// Package render draws the application badge: a radial gradient disc with a
// border ring, two scan arcs, three chart bars and an accent dot.
package render

import (
	"image"
	"image/color"
)

// Icon renders the badge at the given pixel size onto a transparent square
// canvas. The sequence is deterministic; rendering the same size twice
// produces identical pixels.
func Icon(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	gradientDisc(img, size)
	borderRing(img, size)
	scanArcs(img, size)
	chartBars(img, size)
	if size >= 48 {
		accentDot(img, size)
	}
	return img
}

// gradientDisc fills the badge disc, blue at the center shading to teal at
// the rim. Concentric circles are drawn largest first so each smaller
// radius overdraws the previous one; the visible color at distance d is
// that of the smallest radius still covering d.
func gradientDisc(img *image.NRGBA, size int) {
	half := size / 2
	c := float64(half)
	for r := half; r >= 1; r-- {
		fillCircle(img, c, c, float64(r), gradientAt(r, half))
	}
}

// gradientAt interpolates the disc color for radius r out of half.
func gradientAt(r, half int) color.NRGBA {
	t := float64(r) / float64(half)
	return color.NRGBA{
		R: lerp(BadgeBlue.R, BadgeTeal.R, t),
		G: lerp(BadgeBlue.G, BadgeTeal.G, t),
		B: lerp(BadgeBlue.B, BadgeTeal.B, t),
		A: 255,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a)*(1-t) + float64(b)*t)
}

// borderRing strokes a translucent ring inscribed 2px from the canvas edge.
func borderRing(img *image.NRGBA, size int) {
	c := float64(size / 2)
	strokeCircle(img, c, c, float64(size/2-2), max(1, size/32), BorderWhite)
}

// scanArcs strokes the two arcs above and below the center.
func scanArcs(img *image.NRGBA, size int) {
	c := float64(size / 2)
	w := max(2, size/20)
	strokeArc(img, c, c, float64(frac(size, 0.25)), w, -135, -45, ScanBlue)
	strokeArc(img, c, c, float64(frac(size, 0.35)), w, 45, 135, ScanBlue)
}

// chartBars fills three bars of ascending height on a shared baseline
// below the center.
func chartBars(img *image.NRGBA, size int) {
	c := size / 2
	barW := max(2, frac(size, 0.06))
	spacing := frac(size, 0.08)
	baseY := c + frac(size, 0.15)
	barX := c - frac(size, 0.12)
	for i, h := range []int{frac(size, 0.12), frac(size, 0.18), frac(size, 0.24)} {
		x := barX + i*spacing
		fillRect(img, x, baseY-h, x+barW, baseY, ChartGreen)
	}
}

// accentDot fills a small translucent dot up and right of center. Only
// drawn at 48px and above; smaller frames have no room for it.
func accentDot(img *image.NRGBA, size int) {
	c := size / 2
	d := max(2, frac(size, 0.06))
	x := float64(c+frac(size, 0.2)) + float64(d)/2
	y := float64(c-frac(size, 0.25)) + float64(d)/2
	fillCircle(img, x, y, float64(d)/2, DotWhite)
}

// frac truncates f*size to an integer pixel measure.
func frac(size int, f float64) int { return int(f * float64(size)) }
