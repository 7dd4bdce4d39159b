package xlsnap

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var allBorderStyles = []BorderStyle{
	BorderNone, BorderHairline, BorderThin, BorderMedium, BorderThick,
	BorderDouble, BorderDotted, BorderDashed, BorderDashDot, BorderDashDotDot,
	BorderMediumDashed, BorderMediumDashDot, BorderMediumDashDotDot,
	BorderSlantDashDot,
}

func TestStrokeWidth_Total(t *testing.T) {
	for _, bs := range allBorderStyles {
		w := strokeWidth(bs)
		if bs == BorderNone {
			assert.Zero(t, w)
		} else {
			assert.Greater(t, w, 0.0, "style %s", bs)
		}
	}
	// unrecognized values stroke like thin rather than vanishing
	assert.Equal(t, 1.0, strokeWidth(BorderStyle(99)))
}

func TestStrokeWidth_Mapping(t *testing.T) {
	assert.Equal(t, 0.5, strokeWidth(BorderHairline))
	assert.Equal(t, 1.0, strokeWidth(BorderThin))
	assert.Equal(t, 1.0, strokeWidth(BorderDouble))
	assert.Equal(t, 2.0, strokeWidth(BorderMedium))
	assert.Equal(t, 2.0, strokeWidth(BorderDashDot))
	assert.Equal(t, 2.0, strokeWidth(BorderMediumDashDotDot))
	assert.Equal(t, 2.0, strokeWidth(BorderSlantDashDot))
	assert.Equal(t, 3.0, strokeWidth(BorderThick))
}

func TestDashPattern(t *testing.T) {
	assert.Equal(t, []float64{2, 2}, dashPattern(BorderDotted))
	assert.Equal(t, []float64{5, 3}, dashPattern(BorderDashed))
	assert.Equal(t, []float64{5, 3}, dashPattern(BorderMediumDashed))
	assert.Equal(t, []float64{5, 3, 2, 3}, dashPattern(BorderDashDot))
	assert.Equal(t, []float64{5, 3, 2, 3}, dashPattern(BorderMediumDashDot))
	assert.Equal(t, []float64{5, 3, 2, 3, 2, 3}, dashPattern(BorderDashDotDot))
	assert.Equal(t, []float64{5, 3, 2, 3, 2, 3}, dashPattern(BorderMediumDashDotDot))
	assert.Nil(t, dashPattern(BorderThin))
	assert.Nil(t, dashPattern(BorderThick))
	assert.Nil(t, dashPattern(BorderDouble))
}

func TestHexColor(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}

	assert.Equal(t, red, hexColor("FF0000", black))
	assert.Equal(t, red, hexColor("#FF0000", black))
	assert.Equal(t, red, hexColor("FFFF0000", black), "ARGB drops the alpha channel")
	assert.Equal(t, color.RGBA{0x12, 0x34, 0x56, 255}, hexColor("123456", black))

	// malformed values fall back instead of failing the render
	assert.Equal(t, black, hexColor("", black))
	assert.Equal(t, white, hexColor("zzzzzz", white))
	assert.Equal(t, black, hexColor("F00", black))
}

func TestBorderStyleString(t *testing.T) {
	for _, bs := range allBorderStyles {
		assert.NotEqual(t, "unknown", bs.String())
	}
	assert.Equal(t, "unknown", BorderStyle(99).String())
}
