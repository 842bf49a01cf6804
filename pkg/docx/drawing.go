package docx

import "encoding/xml"

const pictureURI = "http://schemas.openxmlformats.org/drawingml/2006/picture"

// Drawing is an inline picture anchored in a run.
type Drawing struct {
	XMLName xml.Name `xml:"w:drawing"`
	Inline  Inline   `xml:"wp:inline"`
}

func (Drawing) runContent() {}

type Inline struct {
	DistT        int               `xml:"distT,attr"`
	DistB        int               `xml:"distB,attr"`
	DistL        int               `xml:"distL,attr"`
	DistR        int               `xml:"distR,attr"`
	Extent       Extent            `xml:"wp:extent"`
	EffectExtent EffectExtent      `xml:"wp:effectExtent"`
	DocPr        DocPr             `xml:"wp:docPr"`
	FrameProps   GraphicFrameProps `xml:"wp:cNvGraphicFramePr"`
	Graphic      Graphic           `xml:"a:graphic"`
}

type Extent struct {
	CX EMU `xml:"cx,attr"`
	CY EMU `xml:"cy,attr"`
}

type EffectExtent struct {
	L EMU `xml:"l,attr"`
	T EMU `xml:"t,attr"`
	R EMU `xml:"r,attr"`
	B EMU `xml:"b,attr"`
}

// DocPr ids must be unique within the document.
type DocPr struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type GraphicFrameProps struct {
	Locks GraphicFrameLocks `xml:"a:graphicFrameLocks"`
}

type GraphicFrameLocks struct {
	NoChangeAspect int `xml:"noChangeAspect,attr,omitempty"`
}

type Graphic struct {
	Data GraphicData `xml:"a:graphicData"`
}

type GraphicData struct {
	URI     string  `xml:"uri,attr"`
	Picture Picture `xml:"pic:pic"`
}

type Picture struct {
	NonVisual PictureNonVisual `xml:"pic:nvPicPr"`
	BlipFill  BlipFill         `xml:"pic:blipFill"`
	Shape     ShapeProperties  `xml:"pic:spPr"`
}

type PictureNonVisual struct {
	DrawingProps DocPr    `xml:"pic:cNvPr"`
	PictureProps struct{} `xml:"pic:cNvPicPr"`
}

type BlipFill struct {
	Blip    Blip    `xml:"a:blip"`
	Stretch Stretch `xml:"a:stretch"`
}

// Blip points at an image part through its relationship id.
type Blip struct {
	Embed            string `xml:"r:embed,attr"`
	CompressionState string `xml:"cstate,attr,omitempty"`
}

type Stretch struct {
	FillRect struct{} `xml:"a:fillRect"`
}

type ShapeProperties struct {
	Transform Transform2D    `xml:"a:xfrm"`
	Geometry  PresetGeometry `xml:"a:prstGeom"`
}

type Transform2D struct {
	Offset  Offset `xml:"a:off"`
	Extents Extent `xml:"a:ext"`
}

type Offset struct {
	X EMU `xml:"x,attr"`
	Y EMU `xml:"y,attr"`
}

type PresetGeometry struct {
	Preset      string   `xml:"prst,attr"`
	AdjustValue struct{} `xml:"a:avLst"`
}

// InlineImage builds an aspect-locked inline drawing of width x height pixels
// referencing the image part relID.
func InlineImage(relID string, id int, name string, width, height Pixels) Drawing {
	ext := Extent{CX: PixelsToEMU(width), CY: PixelsToEMU(height)}
	return Drawing{
		Inline: Inline{
			Extent: ext,
			DocPr:  DocPr{ID: id, Name: name},
			FrameProps: GraphicFrameProps{
				Locks: GraphicFrameLocks{NoChangeAspect: 1},
			},
			Graphic: Graphic{
				Data: GraphicData{
					URI: pictureURI,
					Picture: Picture{
						NonVisual: PictureNonVisual{
							DrawingProps: DocPr{ID: 0, Name: name},
						},
						BlipFill: BlipFill{
							Blip: Blip{Embed: relID, CompressionState: "print"},
						},
						Shape: ShapeProperties{
							Transform: Transform2D{Extents: ext},
							Geometry:  PresetGeometry{Preset: "rect"},
						},
					},
				},
			},
		},
	}
}
