package svp

import (
	"image"
	"image/color"
	"testing"
)

func TestSolidFillerFullCoverageYieldsForeground(t *testing.T) {
	f := &SolidFiller{Bg: RGB{0, 0, 0}, Fg: RGB{255, 128, 0}}
	row := make([]uint8, 12)
	steps := []CoverageStep{{X: 0, Delta: FullCoverage}}
	f.FillRow(row, 4, 0, steps)
	if row[0] != 255 || row[1] != 128 || row[2] != 0 {
		t.Errorf("pixel 0 = %v,%v,%v, want 255,128,0", row[0], row[1], row[2])
	}
	if row[9] != 255 || row[10] != 128 || row[11] != 0 {
		t.Errorf("pixel 3 should still carry full coverage, got %v,%v,%v", row[9], row[10], row[11])
	}
}

func TestSolidFillerZeroCoverageYieldsBackground(t *testing.T) {
	f := &SolidFiller{Bg: RGB{10, 20, 30}, Fg: RGB{255, 255, 255}}
	row := make([]uint8, 3)
	f.FillRow(row, 1, 0, nil)
	if row[0] != 10 || row[1] != 20 || row[2] != 30 {
		t.Errorf("pixel = %v,%v,%v, want background 10,20,30", row[0], row[1], row[2])
	}
}

func TestAlphaFillerOpaqueFastPath(t *testing.T) {
	f := &AlphaFiller{Fg: color.RGBA{R: 200, G: 0, B: 0, A: 255}}
	row := []uint8{1, 2, 3, 4}
	f.FillRow(row, 1, 0, []CoverageStep{{X: 0, Delta: FullCoverage}})
	if row[0] != 200 || row[3] != 255 {
		t.Errorf("row = %v, want opaque fg written directly", row)
	}
}

func TestGrayFillerLerps(t *testing.T) {
	f := &GrayFiller{Bg: 0, Fg: 255}
	row := make([]uint8, 1)
	f.FillRow(row, 1, 0, []CoverageStep{{X: 0, Delta: FullCoverage / 2}})
	if row[0] < 100 || row[0] > 155 {
		t.Errorf("mid-coverage gray = %d, want roughly half", row[0])
	}
}

func TestFillImageWritesMaskedPixels(t *testing.T) {
	src := image.NewUniform(color.RGBA{R: 100, G: 150, B: 200, A: 255})
	dst := image.NewRGBA(image.Rect(0, 0, 4, 1))
	FillImage(dst, 0, 4, 0, []CoverageStep{{X: 0, Delta: FullCoverage}}, src)
	r, g, b, _ := dst.At(0, 0).RGBA()
	if r>>8 == 0 && g>>8 == 0 && b>>8 == 0 {
		t.Error("FillImage left destination pixel untouched")
	}
}
