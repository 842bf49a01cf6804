package service

import "github.com/rabinshresthaaa/CoverPage/pkg/docx"

// TightSpacing removes space before and after and uses single line height.
func TightSpacing() *docx.Spacing {
	return &docx.Spacing{
		Before:   docx.TwipsPtr(0),
		After:    docx.TwipsPtr(0),
		Line:     docx.TwipsPtr(singleLine),
		LineRule: "auto",
	}
}

// CenterText returns one centered paragraph holding a single run.
// A nil spacing inherits the document defaults.
func CenterText(text string, size docx.Points, bold bool, spacing *docx.Spacing) docx.Paragraph {
	return CenterLines([]string{text}, size, bold, spacing)
}

// CenterLines returns one centered paragraph with one run in which the
// lines are separated by line breaks rather than paragraph breaks.
func CenterLines(lines []string, size docx.Points, bold bool, spacing *docx.Spacing) docx.Paragraph {
	content := make([]docx.RunContent, 0, 2*len(lines))
	for i, line := range lines {
		if i > 0 {
			content = append(content, docx.Break{})
		}
		content = append(content, docx.NewText(line))
	}

	return docx.Paragraph{
		Props: &docx.ParagraphProperties{
			Spacing:       spacing,
			Justification: &docx.Val{Val: docx.JustifyCenter},
		},
		Runs: []docx.Run{{
			Props:   textProps(size, bold),
			Content: content,
		}},
	}
}

// Spacer returns an empty paragraph of n line breaks.
func Spacer(n int) docx.Paragraph {
	runs := make([]docx.Run, n)
	for i := range runs {
		runs[i] = docx.Run{Content: []docx.RunContent{docx.Break{}}}
	}
	return docx.Paragraph{Runs: runs}
}

func textProps(size docx.Points, bold bool) *docx.RunProperties {
	hp := docx.PointsToHalfPoints(size)
	props := &docx.RunProperties{
		Size:   &docx.Size{Val: hp},
		SizeCS: &docx.Size{Val: hp},
	}
	if bold {
		props.Bold = docx.On()
		props.BoldCS = docx.On()
	}
	return props
}

// alignedText is a left or right aligned paragraph used inside table cells.
func alignedText(text, jc string, props *docx.RunProperties) docx.Paragraph {
	return docx.Paragraph{
		Props: &docx.ParagraphProperties{
			Spacing:       TightSpacing(),
			Justification: &docx.Val{Val: jc},
		},
		Runs: []docx.Run{{
			Props:   props,
			Content: []docx.RunContent{docx.NewText(text)},
		}},
	}
}

// headingProps marks the SUBMITTED BY/TO labels.
func headingProps() *docx.RunProperties {
	return &docx.RunProperties{
		Bold:      docx.On(),
		BoldCS:    docx.On(),
		Underline: &docx.Val{Val: "single"},
	}
}
