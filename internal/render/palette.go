package render

import "image/color"

// Badge palette. The gradient runs from BadgeBlue at the disc center to
// BadgeTeal at the rim; the remaining colors are drawn on top of it.
var (
	BadgeBlue  = color.NRGBA{R: 20, G: 55, B: 90, A: 255}
	BadgeTeal  = color.NRGBA{R: 26, G: 82, B: 118, A: 255}
	ScanBlue   = color.NRGBA{R: 200, G: 230, B: 255, A: 255}
	ChartGreen = color.NRGBA{R: 100, G: 200, B: 150, A: 255}

	BorderWhite = color.NRGBA{R: 255, G: 255, B: 255, A: 100}
	DotWhite    = color.NRGBA{R: 255, G: 255, B: 255, A: 200}
)

// IconSizes are the frame sizes packed into the icon container, ascending.
var IconSizes = []int{16, 32, 48, 64, 128, 256}
