package service

import (
	"github.com/rabinshresthaaa/CoverPage/model"
	"github.com/rabinshresthaaa/CoverPage/pkg/docx"
)

// SubmittedTable returns the two column "submitted by / submitted to" block.
func SubmittedTable(input model.CoverPageInput) docx.Table {
	left := []docx.Paragraph{
		alignedText(submittedByLabel, docx.JustifyLeft, headingProps()),
		alignedText("Name: "+input.StudentName, docx.JustifyLeft, nil),
		alignedText("Roll: "+input.RollNumber, docx.JustifyLeft, nil),
		alignedText("Date: "+input.FormattedDate(), docx.JustifyLeft, nil),
	}
	right := []docx.Paragraph{
		alignedText(submittedToLabel, docx.JustifyRight, headingProps()),
		alignedText(input.TeacherName, docx.JustifyRight, nil),
		alignedText(departmentName, docx.JustifyRight, nil),
	}
	return twoColumnTable(docx.TableRow{Cells: []docx.TableCell{halfCell(left), halfCell(right)}})
}

// SignatureTable returns the signature lines. The row never splits across pages.
func SignatureTable() docx.Table {
	left := []docx.Paragraph{
		alignedText(signatureRule, docx.JustifyLeft, nil),
		alignedText(externalSignature, docx.JustifyLeft, nil),
	}
	right := []docx.Paragraph{
		alignedText(signatureRule, docx.JustifyRight, nil),
		alignedText(internalSignature, docx.JustifyRight, nil),
	}
	return twoColumnTable(docx.TableRow{
		Props: &docx.RowProperties{CantSplit: docx.On()},
		Cells: []docx.TableCell{halfCell(left), halfCell(right)},
	})
}

func twoColumnTable(row docx.TableRow) docx.Table {
	col := docx.GridColumn{W: contentWidth / 2}
	return docx.Table{
		Props: docx.TableProperties{
			Style:  &docx.Val{Val: "TableNormal"},
			Width:  docx.TableWidth{W: docx.PctFull, Type: docx.WidthPct},
			Layout: &docx.TableLayout{Type: "fixed"},
		},
		Grid: docx.TableGrid{Columns: []docx.GridColumn{col, col}},
		Rows: []docx.TableRow{row},
	}
}

func halfCell(paragraphs []docx.Paragraph) docx.TableCell {
	return docx.TableCell{
		Props:      &docx.CellProperties{Width: docx.TableWidth{W: docx.PctFull / 2, Type: docx.WidthPct}},
		Paragraphs: paragraphs,
	}
}
