package xlsnap

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/tdewolff/canvas"
)

const (
	defaultFontSize = 10.0
	minFontSize     = 6.0
	ellipsis        = "..."
)

// fontCache resolves (bold, italic) to a loaded font family, trying the
// configured family names in order; the first available wins. Families are
// loaded lazily and cached per style for the renderer's lifetime.
type fontCache struct {
	candidates []string

	mu       sync.Mutex
	families map[canvas.FontStyle]*canvas.FontFamily
}

func newFontCache(candidates []string) *fontCache {
	return &fontCache{
		candidates: candidates,
		families:   map[canvas.FontStyle]*canvas.FontFamily{},
	}
}

// fontStyle maps a cell font descriptor to the canvas style.
func fontStyle(f Font) canvas.FontStyle {
	style := canvas.FontRegular
	if f.Bold {
		style = canvas.FontBold
	}
	if f.Italic {
		style |= canvas.FontItalic
	}
	return style
}

// face builds a font face for the cell font, substituting the default size
// when the descriptor's size is unset or implausibly small.
func (fc *fontCache) face(f Font, fallback color.RGBA) (*canvas.FontFace, error) {
	size := f.Size
	if size < minFontSize {
		size = defaultFontSize
	}
	style := fontStyle(f)
	family, style, err := fc.ensure(style)
	if err != nil {
		return nil, err
	}
	return family.Face(size, hexColor(f.Color, fallback), style, canvas.FontNormal), nil
}

func (fc *fontCache) ensure(style canvas.FontStyle) (*canvas.FontFamily, canvas.FontStyle, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.ensureLocked(style)
}

func (fc *fontCache) ensureLocked(style canvas.FontStyle) (*canvas.FontFamily, canvas.FontStyle, error) {
	if family, ok := fc.families[style]; ok {
		return family, style, nil
	}
	for _, name := range fc.candidates {
		family := canvas.NewFontFamily(name)
		if err := family.LoadSystemFont(name, style); err != nil {
			continue
		}
		fc.families[style] = family
		return family, style, nil
	}
	// The requested style exists in no candidate family; retry regular so a
	// missing bold or italic face degrades instead of failing the render.
	if style != canvas.FontRegular {
		family, _, err := fc.ensureLocked(canvas.FontRegular)
		if err != nil {
			return nil, canvas.FontRegular, err
		}
		fc.families[style] = family
		return family, canvas.FontRegular, nil
	}
	return nil, canvas.FontRegular, fmt.Errorf("load font: no usable family among %v", fc.candidates)
}

// fitText truncates text so it fits avail pixels, appending an ellipsis when
// anything was cut. The scan shrinks the prefix one rune at a time from the
// full length down, so ties always resolve to the longest fitting prefix; in
// the degenerate case the ellipsis alone is returned.
func fitText(face *canvas.FontFace, text string, avail float64) string {
	if face.TextWidth(text) <= avail {
		return text
	}
	runes := []rune(text)
	for k := len(runes); k >= 1; k-- {
		short := string(runes[:k]) + ellipsis
		if face.TextWidth(short) <= avail {
			return short
		}
	}
	return ellipsis
}

// baselineFor centers the face's ascent+descent extent inside a box of
// height h starting at y, returning the baseline position.
func baselineFor(face *canvas.FontFace, y, h float64) float64 {
	m := face.Metrics()
	top := y + (h-(m.Ascent+m.Descent))/2
	return top + m.Ascent
}

// drawCellText paints a cell's display text: left-inset, vertically centered,
// truncated to the box. Empty text draws nothing.
func drawCellText(ctx *canvas.Context, face *canvas.FontFace, text string, x, y, w, h float64) {
	if text == "" {
		return
	}
	fitted := fitText(face, text, w-cellInsetTotal)
	line := canvas.NewTextLine(face, fitted, canvas.Left)
	ctx.DrawText(x+cellTextInset, baselineFor(face, y, h), line)
}

// drawCenteredText paints text horizontally centered at cx, vertically
// centered in the band [y, y+h). Used for header labels.
func drawCenteredText(ctx *canvas.Context, face *canvas.FontFace, text string, cx, y, h float64) {
	if text == "" {
		return
	}
	line := canvas.NewTextLine(face, text, canvas.Center)
	ctx.DrawText(cx, baselineFor(face, y, h), line)
}
