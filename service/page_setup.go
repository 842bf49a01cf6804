package service

import "github.com/rabinshresthaaa/CoverPage/pkg/docx"

// PageSetup returns the section properties for an A4 page with one inch margins.
func PageSetup() docx.SectionProperties {
	return docx.SectionProperties{
		PageSize: docx.PageSize{Width: pageWidth, Height: pageHeight},
		PageMargin: docx.PageMargin{
			Top:    pageMargin,
			Right:  pageMargin,
			Bottom: pageMargin,
			Left:   pageMargin,
			Header: headerDistance,
			Footer: headerDistance,
		},
	}
}
