package service

import "github.com/rabinshresthaaa/CoverPage/pkg/docx"

// DefaultStyles returns the style sheet every run inherits from: a serif
// face in all script slots at 12pt, plus the Normal and Table Normal styles.
func DefaultStyles() docx.Styles {
	size := docx.PointsToHalfPoints(baseFontSize)
	fonts := docx.Fonts{
		ASCII:    fontFamily,
		HAnsi:    fontFamily,
		EastAsia: fontFamily,
		CS:       fontFamily,
	}

	return docx.Styles{
		Defaults: docx.DocDefaults{
			Run: docx.RunDefaults{Props: docx.RunProperties{
				Fonts:  &fonts,
				Size:   &docx.Size{Val: size},
				SizeCS: &docx.Size{Val: size},
			}},
			Paragraph: docx.ParagraphDefaults{Props: docx.ParagraphProperties{
				Spacing: &docx.Spacing{
					After:    docx.TwipsPtr(defaultAfter),
					Line:     docx.TwipsPtr(defaultLine),
					LineRule: "auto",
				},
			}},
		},
		Styles: []docx.Style{
			{
				Type:    "paragraph",
				Default: "1",
				ID:      "Normal",
				Name:    docx.Val{Val: "Normal"},
				QFormat: docx.On(),
			},
			{
				Type:       "table",
				Default:    "1",
				ID:         "TableNormal",
				Name:       docx.Val{Val: "Normal Table"},
				UIPriority: &docx.Val{Val: "99"},
				SemiHidden: docx.On(),
				TableProps: &docx.TableStyleProperties{
					Indent: docx.TableWidth{W: 0, Type: docx.WidthDxa},
					CellMargins: docx.CellMargins{
						Top:    docx.TableWidth{W: 0, Type: docx.WidthDxa},
						Left:   docx.TableWidth{W: 108, Type: docx.WidthDxa},
						Bottom: docx.TableWidth{W: 0, Type: docx.WidthDxa},
						Right:  docx.TableWidth{W: 108, Type: docx.WidthDxa},
					},
				},
			},
		},
	}
}
