package svp

import (
	"image"
	"image/color"
	"image/draw"

	ximage "golang.org/x/image/draw"
)

// RGB is an 8-bit-per-channel color with no alpha, matching the plain
// two-color fill callbacks of original_source/art_rgb_svp.c.
type RGB struct{ R, G, B uint8 }

// SolidFiller paints a single foreground color over a fixed background,
// lerping by coverage. Grounded on art_rgb_svp_callback/art_rgb_svp_aa:
// a precomputed 256-entry per-channel lerp table indexed by
// coverage>>16, avoiding a multiply per pixel.
type SolidFiller struct {
	Bg, Fg RGB
	table  [256][3]uint8
	built  bool
}

func (f *SolidFiller) build() {
	for c := 0; c < 256; c++ {
		f.table[c][0] = lerp8(f.Bg.R, f.Fg.R, c)
		f.table[c][1] = lerp8(f.Bg.G, f.Fg.G, c)
		f.table[c][2] = lerp8(f.Bg.B, f.Fg.B, c)
	}
	f.built = true
}

func lerp8(bg, fg uint8, coverage int) uint8 {
	return uint8((int(bg)*(255-coverage) + int(fg)*coverage) / 255)
}

// FillRow paints one scanline of an RGB row buffer (len(row) ==
// width*3) from a coverage step stream, starting from the row's
// pre-integrated coverage at column 0.
func (f *SolidFiller) FillRow(row []uint8, width, start int, steps []CoverageStep) {
	if !f.built {
		f.build()
	}
	running := int32(start)
	si := 0
	for x := 0; x < width; x++ {
		for si < len(steps) && steps[si].X <= x {
			running += steps[si].Delta
			si++
		}
		cov := clampCoverage(running)
		px := f.table[cov]
		row[x*3], row[x*3+1], row[x*3+2] = px[0], px[1], px[2]
	}
}

func clampCoverage(running int32) int {
	c := int(running >> 16)
	if c < 0 {
		c = 0
	} else if c > 255 {
		c = 255
	}
	return c
}

// AlphaFiller composites a straight (non-premultiplied) RGBA foreground
// over existing row content, its alpha scaled further by per-pixel AA
// coverage. Grounded on
// art_rgb_svp_alpha_callback/art_rgb_svp_alpha, including the opaque
// fast path (art_rgb_svp_alpha_opaque_callback): when the foreground's
// own alpha is already 255 and coverage saturates to full, skip
// blending and write the color directly.
type AlphaFiller struct {
	Fg    color.RGBA // straight alpha: R,G,B are not scaled by A
	table [256]uint16
	built bool
}

func (f *AlphaFiller) build() {
	for c := 0; c < 256; c++ {
		f.table[c] = uint16(int(f.Fg.A) * c / 255)
	}
	f.built = true
}

// FillRow alpha-composites one scanline into an RGBA row buffer
// (len(row) == width*4), starting from the row's pre-integrated
// coverage at column 0.
func (f *AlphaFiller) FillRow(row []uint8, width, start int, steps []CoverageStep) {
	if !f.built {
		f.build()
	}
	opaque := f.Fg.A == 255
	running := int32(start)
	si := 0
	for x := 0; x < width; x++ {
		for si < len(steps) && steps[si].X <= x {
			running += steps[si].Delta
			si++
		}
		cov := clampCoverage(running)
		if cov == 0 {
			continue
		}
		if opaque && cov == 255 {
			row[x*4], row[x*4+1], row[x*4+2], row[x*4+3] = f.Fg.R, f.Fg.G, f.Fg.B, 255
			continue
		}
		a := int(f.table[cov])
		inv := 255 - a
		row[x*4] = uint8((int(f.Fg.R)*a/255 + int(row[x*4])*inv/255))
		row[x*4+1] = uint8((int(f.Fg.G)*a/255 + int(row[x*4+1])*inv/255))
		row[x*4+2] = uint8((int(f.Fg.B)*a/255 + int(row[x*4+2])*inv/255))
		row[x*4+3] = uint8(a + int(row[x*4+3])*inv/255)
	}
}

// GrayFiller is the single-channel analogue of SolidFiller, used for
// mask/alpha-only renders (e.g. text glyph coverage).
type GrayFiller struct {
	Bg, Fg uint8
	table  [256]uint8
	built  bool
}

func (f *GrayFiller) build() {
	for c := 0; c < 256; c++ {
		f.table[c] = lerp8(f.Bg, f.Fg, c)
	}
	f.built = true
}

// FillRow paints one scanline of a single-channel row buffer,
// starting from the row's pre-integrated coverage at column 0.
func (f *GrayFiller) FillRow(row []uint8, width, start int, steps []CoverageStep) {
	if !f.built {
		f.build()
	}
	running := int32(start)
	si := 0
	for x := 0; x < width; x++ {
		for si < len(steps) && steps[si].X <= x {
			running += steps[si].Delta
			si++
		}
		row[x] = f.table[clampCoverage(running)]
	}
}

// FillImage paints one scanline's worth of src, masked by the row's
// AA coverage, into dst at row y. This is a feature not present in
// original_source (libart's callbacks only ever fill flat colors);
// it is grounded instead on the supplemented domain stack's use of
// golang.org/x/image/draw, whose Scaler.Scale accepts a source mask
// image — exactly the shape needed to apply a coverage-step row as a
// per-pixel alpha mask over an arbitrary image.Image rather than a
// solid color.
func FillImage(dst draw.Image, y, width, start int, steps []CoverageStep, src image.Image) {
	mask := image.NewAlpha(image.Rect(0, 0, width, 1))
	running := int32(start)
	si := 0
	for x := 0; x < width; x++ {
		for si < len(steps) && steps[si].X <= x {
			running += steps[si].Delta
			si++
		}
		mask.SetAlpha(x, 0, color.Alpha{A: uint8(clampCoverage(running))})
	}
	dstRect := image.Rect(0, y, width, y+1)
	srcRect := image.Rect(0, y, width, y+1)
	ximage.BiLinear.Scale(dst, dstRect, src, srcRect, draw.Over, &ximage.Options{
		SrcMask: mask,
	})
}
