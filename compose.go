package xlsnap

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
)

var (
	compositeBg      = hexColor("eeeeee", white)
	compositeGapFill = hexColor("bfbfbf", white)
)

// RenderAll renders every worksheet independently and returns a mapping from
// worksheet name to PNG bytes. When two sheets share a name the later one
// silently overwrites the earlier entry; callers needing uniqueness must
// disambiguate upstream.
func (r *Renderer) RenderAll(wb Workbook) (map[string][]byte, error) {
	out := make(map[string][]byte)
	for _, s := range wb.Sheets() {
		rs, err := r.RenderSheet(s)
		if err != nil {
			return nil, err
		}
		out[rs.Name] = rs.PNG
	}
	return out, nil
}

// RenderSheetByName renders the first worksheet with the given name.
func (r *Renderer) RenderSheetByName(wb Workbook, name string) (*RenderedSheet, error) {
	for _, s := range wb.Sheets() {
		if s.Name() == name {
			return r.RenderSheet(s)
		}
	}
	return nil, fmt.Errorf("worksheet %q not found", name)
}

// RenderCombined renders every worksheet and stacks the images vertically
// into one PNG, separated by fixed gray gaps on a light-gray background.
// The composite is as wide as the widest sheet. A workbook with zero sheets
// yields the placeholder image.
func (r *Renderer) RenderCombined(wb Workbook) ([]byte, error) {
	sheets := wb.Sheets()
	if len(sheets) == 0 {
		rs, err := r.placeholder("")
		if err != nil {
			return nil, err
		}
		return rs.PNG, nil
	}

	images := make([]image.Image, 0, len(sheets))
	width, height := 0, 0
	for i, s := range sheets {
		rs, err := r.RenderSheet(s)
		if err != nil {
			return nil, err
		}
		img, err := png.Decode(bytes.NewReader(rs.PNG))
		if err != nil {
			return nil, fmt.Errorf("decode %q: %w", rs.Name, err)
		}
		images = append(images, img)
		if w := img.Bounds().Dx(); w > width {
			width = w
		}
		height += img.Bounds().Dy()
		if i > 0 {
			height += int(compositeGap)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(compositeBg), image.Point{}, draw.Src)

	y := 0
	for i, img := range images {
		if i > 0 {
			gap := image.Rect(0, y, width, y+int(compositeGap))
			draw.Draw(dst, gap, image.NewUniform(compositeGapFill), image.Point{}, draw.Src)
			y += int(compositeGap)
		}
		b := img.Bounds()
		rect := image.Rect(0, y, b.Dx(), y+b.Dy())
		draw.Draw(dst, rect, img, b.Min, draw.Src)
		y += b.Dy()
	}

	return encodePNG(dst)
}
