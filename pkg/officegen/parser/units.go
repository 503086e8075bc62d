// Package parser reads generated office documents back into models.
package parser

// EMUPerPixel is 914400 EMU per inch divided by 96 pixels per inch.
const EMUPerPixel = 9525

// EMUToPixels converts a DrawingML length to whole pixels at 96 DPI,
// truncating toward zero.
func EMUToPixels(emu int64) int {
	return int(emu / EMUPerPixel)
}
