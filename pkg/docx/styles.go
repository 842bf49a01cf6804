package docx

import "encoding/xml"

// Styles is the root of word/styles.xml.
type Styles struct {
	XMLName  xml.Name    `xml:"w:styles"`
	W        string      `xml:"xmlns:w,attr"`
	Defaults DocDefaults `xml:"w:docDefaults"`
	Styles   []Style     `xml:"w:style"`
}

type DocDefaults struct {
	Run       RunDefaults       `xml:"w:rPrDefault"`
	Paragraph ParagraphDefaults `xml:"w:pPrDefault"`
}

type RunDefaults struct {
	Props RunProperties `xml:"w:rPr"`
}

type ParagraphDefaults struct {
	Props ParagraphProperties `xml:"w:pPr"`
}

// Style is a single w:style definition. Fields are declared in schema order.
type Style struct {
	Type       string                `xml:"w:type,attr"`
	Default    string                `xml:"w:default,attr,omitempty"`
	ID         string                `xml:"w:styleId,attr"`
	Name       Val                   `xml:"w:name"`
	UIPriority *Val                  `xml:"w:uiPriority,omitempty"`
	SemiHidden *OnOff                `xml:"w:semiHidden,omitempty"`
	QFormat    *OnOff                `xml:"w:qFormat,omitempty"`
	TableProps *TableStyleProperties `xml:"w:tblPr,omitempty"`
}

type TableStyleProperties struct {
	Indent      TableWidth  `xml:"w:tblInd"`
	CellMargins CellMargins `xml:"w:tblCellMar"`
}
