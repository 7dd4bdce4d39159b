package uoffice

import (
	"strings"

	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"

	"github.com/xlsnap/xlsnap"
)

// resolveStyle fills c from the workbook stylesheet entry styleID and
// reports whether the cell carries any style at all. Malformed or missing
// style records are skipped; the engine substitutes defaults.
func resolveStyle(wb *spreadsheet.Workbook, styleID uint32, c *xlsnap.Cell) bool {
	xfs := wb.StyleSheet.X().CellXfs
	if xfs == nil || int(styleID) >= len(xfs.Xf) {
		return false
	}

	styled := false
	if font := fontProps(wb.StyleSheet, styleID); font != nil {
		if len(font.Sz) > 0 {
			c.Font.Size = font.Sz[0].ValAttr
		}
		if len(font.Color) > 0 && font.Color[0].RgbAttr != nil {
			c.Font.Color = normalizeColor(*font.Color[0].RgbAttr)
		}
		c.Font.Bold = boolProp(font.B)
		c.Font.Italic = boolProp(font.I)
		styled = true
	}
	if fill := fillProps(wb.StyleSheet, styleID); fill != nil && fill.PatternFill != nil {
		if fg := fill.PatternFill.FgColor; fg != nil {
			if fg.RgbAttr != nil {
				c.Fill = normalizeColor(*fg.RgbAttr)
			} else if fg.ThemeAttr != nil {
				if hex, ok := themeColorToRGB(wb, int(*fg.ThemeAttr)); ok {
					c.Fill = hex
				}
			}
			styled = true
		}
	}
	if border := borderProps(wb.StyleSheet, styleID); border != nil {
		c.Top = borderEdge(border.Top)
		c.Bottom = borderEdge(border.Bottom)
		c.Left = borderEdge(border.Left)
		c.Right = borderEdge(border.Right)
		styled = true
	}
	return styled
}

func fontProps(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Font {
	xf := ss.X().CellXfs.Xf[styleID]
	if xf.FontIdAttr == nil {
		return nil
	}
	idx := int(*xf.FontIdAttr)
	if idx < 0 || idx >= len(ss.X().Fonts.Font) {
		return nil
	}
	return ss.X().Fonts.Font[idx]
}

func fillProps(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Fill {
	xf := ss.X().CellXfs.Xf[styleID]
	if xf.FillIdAttr == nil {
		return nil
	}
	idx := int(*xf.FillIdAttr)
	if idx < 0 || idx >= len(ss.X().Fills.Fill) {
		return nil
	}
	return ss.X().Fills.Fill[idx]
}

func borderProps(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Border {
	xf := ss.X().CellXfs.Xf[styleID]
	if xf.BorderIdAttr == nil {
		return nil
	}
	idx := int(*xf.BorderIdAttr)
	if idx < 0 || idx >= len(ss.X().Borders.Border) {
		return nil
	}
	return ss.X().Borders.Border[idx]
}

func boolProp(props []*sml.CT_BooleanProperty) bool {
	return len(props) > 0 && (props[0].ValAttr == nil || *props[0].ValAttr)
}

func borderEdge(pr *sml.CT_BorderPr) xlsnap.Border {
	if pr == nil {
		return xlsnap.Border{}
	}
	b := xlsnap.Border{Style: borderStyle(pr.StyleAttr)}
	if pr.Color != nil && pr.Color.RgbAttr != nil {
		b.Color = normalizeColor(*pr.Color.RgbAttr)
	}
	return b
}

// borderStyle maps the OOXML border style enum to the engine enum.
func borderStyle(st sml.ST_BorderStyle) xlsnap.BorderStyle {
	switch st {
	case sml.ST_BorderStyleThin:
		return xlsnap.BorderThin
	case sml.ST_BorderStyleMedium:
		return xlsnap.BorderMedium
	case sml.ST_BorderStyleDashed:
		return xlsnap.BorderDashed
	case sml.ST_BorderStyleDotted:
		return xlsnap.BorderDotted
	case sml.ST_BorderStyleThick:
		return xlsnap.BorderThick
	case sml.ST_BorderStyleDouble:
		return xlsnap.BorderDouble
	case sml.ST_BorderStyleHair:
		return xlsnap.BorderHairline
	case sml.ST_BorderStyleMediumDashed:
		return xlsnap.BorderMediumDashed
	case sml.ST_BorderStyleDashDot:
		return xlsnap.BorderDashDot
	case sml.ST_BorderStyleMediumDashDot:
		return xlsnap.BorderMediumDashDot
	case sml.ST_BorderStyleDashDotDot:
		return xlsnap.BorderDashDotDot
	case sml.ST_BorderStyleMediumDashDotDot:
		return xlsnap.BorderMediumDashDotDot
	case sml.ST_BorderStyleSlantDashDot:
		return xlsnap.BorderSlantDashDot
	default:
		return xlsnap.BorderNone
	}
}

// normalizeColor converts an 8-digit ARGB hex (as used in XLSX) to a
// 6-digit RGB string. Other lengths are returned unchanged.
func normalizeColor(hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 8 {
		return hex[2:]
	}
	return hex
}

// themeColorToRGB resolves a theme color index to an RGB hex string. Tint is
// not applied. Returns false when the index is invalid or unresolvable.
func themeColorToRGB(wb *spreadsheet.Workbook, themeIdx int) (string, bool) {
	themes := wb.Themes()
	if len(themes) == 0 || themes[0] == nil {
		return "", false
	}
	scheme := themes[0].ThemeElements.ClrScheme

	var clr *dml.CT_Color
	switch themeIdx {
	case 0:
		clr = scheme.Dk1
	case 1:
		clr = scheme.Lt1
	case 2:
		clr = scheme.Dk2
	case 3:
		clr = scheme.Lt2
	case 4:
		clr = scheme.Accent1
	case 5:
		clr = scheme.Accent2
	case 6:
		clr = scheme.Accent3
	case 7:
		clr = scheme.Accent4
	case 8:
		clr = scheme.Accent5
	case 9:
		clr = scheme.Accent6
	case 10:
		clr = scheme.Hlink
	case 11:
		clr = scheme.FolHlink
	default:
		return "", false
	}
	if clr == nil {
		return "", false
	}
	if clr.SrgbClr != nil && clr.SrgbClr.ValAttr != "" {
		return clr.SrgbClr.ValAttr, true
	}
	if clr.SysClr != nil && clr.SysClr.LastClrAttr != nil {
		return *clr.SysClr.LastClrAttr, true
	}
	return "", false
}
