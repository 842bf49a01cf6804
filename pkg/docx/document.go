package docx

import "encoding/xml"

// Namespaces declared on the document root.
const (
	NamespaceW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	NamespaceR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	NamespaceWP  = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	NamespaceA   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	NamespacePic = "http://schemas.openxmlformats.org/drawingml/2006/picture"
)

// Justification values for w:jc.
const (
	JustifyLeft   = "left"
	JustifyCenter = "center"
	JustifyRight  = "right"
)

// Document is the root of word/document.xml.
type Document struct {
	XMLName xml.Name `xml:"w:document"`
	W       string   `xml:"xmlns:w,attr"`
	R       string   `xml:"xmlns:r,attr"`
	WP      string   `xml:"xmlns:wp,attr"`
	A       string   `xml:"xmlns:a,attr"`
	Pic     string   `xml:"xmlns:pic,attr"`
	Body    Body     `xml:"w:body"`
}

// NewDocument wraps body in a document root with the namespaces it needs.
func NewDocument(body Body) Document {
	return Document{
		W:    NamespaceW,
		R:    NamespaceR,
		WP:   NamespaceWP,
		A:    NamespaceA,
		Pic:  NamespacePic,
		Body: body,
	}
}

// Block is a body-level element: a Paragraph or a Table.
type Block interface {
	block()
}

// Body holds the block content followed by the final section properties.
type Body struct {
	Blocks []Block
	Sect   *SectionProperties `xml:"w:sectPr,omitempty"`
}

// SectionProperties fixes page geometry.
type SectionProperties struct {
	PageSize   PageSize   `xml:"w:pgSz"`
	PageMargin PageMargin `xml:"w:pgMar"`
}

type PageSize struct {
	Width  Twips `xml:"w:w,attr"`
	Height Twips `xml:"w:h,attr"`
}

type PageMargin struct {
	Top    Twips `xml:"w:top,attr"`
	Right  Twips `xml:"w:right,attr"`
	Bottom Twips `xml:"w:bottom,attr"`
	Left   Twips `xml:"w:left,attr"`
	Header Twips `xml:"w:header,attr"`
	Footer Twips `xml:"w:footer,attr"`
	Gutter Twips `xml:"w:gutter,attr"`
}

// Paragraph is a w:p element.
type Paragraph struct {
	XMLName xml.Name             `xml:"w:p"`
	Props   *ParagraphProperties `xml:"w:pPr,omitempty"`
	Runs    []Run                `xml:"w:r"`
}

func (Paragraph) block() {}

// ParagraphProperties fields are declared in schema order.
type ParagraphProperties struct {
	Spacing       *Spacing `xml:"w:spacing,omitempty"`
	Justification *Val     `xml:"w:jc,omitempty"`
}

// Spacing overrides inherited paragraph spacing. Nil attributes are inherited.
type Spacing struct {
	Before   *Twips `xml:"w:before,attr,omitempty"`
	After    *Twips `xml:"w:after,attr,omitempty"`
	Line     *Twips `xml:"w:line,attr,omitempty"`
	LineRule string `xml:"w:lineRule,attr,omitempty"`
}

// Run is a w:r element.
type Run struct {
	XMLName xml.Name       `xml:"w:r"`
	Props   *RunProperties `xml:"w:rPr,omitempty"`
	Content []RunContent
}

// RunContent is Text, Break or Drawing.
type RunContent interface {
	runContent()
}

// RunProperties fields are declared in schema order.
type RunProperties struct {
	Fonts     *Fonts `xml:"w:rFonts,omitempty"`
	Bold      *OnOff `xml:"w:b,omitempty"`
	BoldCS    *OnOff `xml:"w:bCs,omitempty"`
	Size      *Size  `xml:"w:sz,omitempty"`
	SizeCS    *Size  `xml:"w:szCs,omitempty"`
	Underline *Val   `xml:"w:u,omitempty"`
}

// Fonts names a font family per script category.
type Fonts struct {
	ASCII    string `xml:"w:ascii,attr,omitempty"`
	HAnsi    string `xml:"w:hAnsi,attr,omitempty"`
	EastAsia string `xml:"w:eastAsia,attr,omitempty"`
	CS       string `xml:"w:cs,attr,omitempty"`
}

// Size is a font size in half-points.
type Size struct {
	Val HalfPoints `xml:"w:val,attr"`
}

// Val is any element carrying a single w:val attribute.
type Val struct {
	Val string `xml:"w:val,attr"`
}

// OnOff is a toggle element such as w:b. An empty Val means on.
type OnOff struct {
	Val string `xml:"w:val,attr,omitempty"`
}

// Text is a w:t element. Whitespace is always preserved.
type Text struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Value   string   `xml:",chardata"`
}

func (Text) runContent() {}

// NewText returns a whitespace-preserving text node.
func NewText(s string) Text {
	return Text{Space: "preserve", Value: s}
}

// Break is a w:br line break.
type Break struct {
	XMLName xml.Name `xml:"w:br"`
}

func (Break) runContent() {}

// On is the shared "toggle on" value.
func On() *OnOff {
	return &OnOff{}
}

// TwipsPtr returns a pointer to t, for optional spacing attributes.
func TwipsPtr(t Twips) *Twips {
	return &t
}
