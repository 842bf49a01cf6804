package docx

import "encoding/xml"

// Width types for w:tblW and w:tcW.
const (
	WidthPct = "pct"
	WidthDxa = "dxa"
)

// PctFull is 100% in fiftieths of a percent.
const PctFull = 5000

// Table is a w:tbl element.
type Table struct {
	XMLName xml.Name        `xml:"w:tbl"`
	Props   TableProperties `xml:"w:tblPr"`
	Grid    TableGrid       `xml:"w:tblGrid"`
	Rows    []TableRow      `xml:"w:tr"`
}

func (Table) block() {}

// TableProperties fields are declared in schema order.
type TableProperties struct {
	Style  *Val         `xml:"w:tblStyle,omitempty"`
	Width  TableWidth   `xml:"w:tblW"`
	Layout *TableLayout `xml:"w:tblLayout,omitempty"`
}

type TableWidth struct {
	W    int    `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type TableLayout struct {
	Type string `xml:"w:type,attr"`
}

type TableGrid struct {
	Columns []GridColumn `xml:"w:gridCol"`
}

type GridColumn struct {
	W Twips `xml:"w:w,attr"`
}

type TableRow struct {
	Props *RowProperties `xml:"w:trPr,omitempty"`
	Cells []TableCell    `xml:"w:tc"`
}

// RowProperties with CantSplit set keeps the row on a single page.
type RowProperties struct {
	CantSplit *OnOff `xml:"w:cantSplit,omitempty"`
}

// TableCell must hold at least one paragraph.
type TableCell struct {
	Props      *CellProperties `xml:"w:tcPr,omitempty"`
	Paragraphs []Paragraph     `xml:"w:p"`
}

type CellProperties struct {
	Width TableWidth `xml:"w:tcW"`
}

// CellMargins is the w:tblCellMar element of a table style.
type CellMargins struct {
	Top    TableWidth `xml:"w:top"`
	Left   TableWidth `xml:"w:left"`
	Bottom TableWidth `xml:"w:bottom"`
	Right  TableWidth `xml:"w:right"`
}
