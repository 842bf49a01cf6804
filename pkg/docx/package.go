package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"
)

// ContentType is the MIME type of a .docx package.
const ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

const (
	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relCoreProperties = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relImage          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"

	ctRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	ctMain          = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ctStyles        = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ctCore          = "application/vnd.openxmlformats-package.core-properties+xml"

	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
)

// Part names inside the package.
const (
	PartDocument = "word/document.xml"
	PartStyles   = "word/styles.xml"
	PartCore     = "docProps/core.xml"
)

// Entries carry a fixed timestamp so identical input yields identical bytes.
var entryTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

var ErrStylesAlreadySet = errors.New("docx: styles already registered")

// CoreProperties is the subset of docProps/core.xml the package writes.
type CoreProperties struct {
	Title          string
	Creator        string
	Subject        string
	LastModifiedBy string
}

type mediaPart struct {
	name        string
	contentType string
	data        []byte
}

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// Package collects the resources of one document until it is written.
// It is not safe for concurrent use; build one per document.
type Package struct {
	styles    *Styles
	core      *CoreProperties
	media     []mediaPart
	rels      []relationship
	nextRel   int
	nextImage int
	nextDocPr int
}

// NewPackage returns an empty package.
func NewPackage() *Package {
	return &Package{nextRel: 1, nextImage: 1, nextDocPr: 1}
}

func (p *Package) addRel(typ, target string) string {
	id := fmt.Sprintf("rId%d", p.nextRel)
	p.nextRel++
	p.rels = append(p.rels, relationship{ID: id, Type: typ, Target: target})
	return id
}

// SetStyles registers the styles part. It may be called once.
func (p *Package) SetStyles(s Styles) (string, error) {
	if p.styles != nil {
		return "", ErrStylesAlreadySet
	}
	s.W = NamespaceW
	p.styles = &s
	return p.addRel(relStyles, "styles.xml"), nil
}

// SetCoreProperties sets the document title and author metadata.
func (p *Package) SetCoreProperties(c CoreProperties) {
	p.core = &c
}

// AddImage stores data as word/media/imageN.ext and returns its relationship id.
func (p *Package) AddImage(ext, contentType string, data []byte) string {
	name := fmt.Sprintf("media/image%d.%s", p.nextImage, ext)
	p.nextImage++
	p.media = append(p.media, mediaPart{name: name, contentType: contentType, data: data})
	return p.addRel(relImage, name)
}

// NextDrawingID returns a document-unique id for wp:docPr.
func (p *Package) NextDrawingID() int {
	id := p.nextDocPr
	p.nextDocPr++
	return id
}

// Bytes serializes the package with body as the main document.
func (p *Package) Bytes(body Body) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Write(&buf, body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes the package as a zip archive to w.
func (p *Package) Write(w io.Writer, body Body) error {
	zw := zip.NewWriter(w)

	parts := []xmlPart{
		{"[Content_Types].xml", p.contentTypes()},
		{"_rels/.rels", p.packageRels()},
		{PartDocument, NewDocument(body)},
		{"word/_rels/document.xml.rels", relationships{Xmlns: nsRelationships, Items: p.rels}},
	}
	if p.styles != nil {
		parts = append(parts, xmlPart{PartStyles, p.styles})
	}
	if p.core != nil {
		parts = append(parts, xmlPart{PartCore, newCoreXML(*p.core)})
	}

	for _, part := range parts {
		if err := writeXMLEntry(zw, part.name, part.v); err != nil {
			zw.Close()
			return err
		}
	}
	for _, m := range p.media {
		if err := writeEntry(zw, "word/"+m.name, m.data); err != nil {
			zw.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("docx: closing archive: %w", err)
	}
	return nil
}

type xmlPart struct {
	name string
	v    any
}

func writeXMLEntry(zw *zip.Writer, name string, v any) error {
	data, err := xml.Marshal(v)
	if err != nil {
		return fmt.Errorf("docx: encoding %s: %w", name, err)
	}
	return writeEntry(zw, name, append([]byte(xml.Header), data...))
}

func writeEntry(zw *zip.Writer, name string, data []byte) error {
	fw, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: entryTime,
	})
	if err != nil {
		return fmt.Errorf("docx: creating %s: %w", name, err)
	}
	if _, err := fw.Write(data); err != nil {
		return fmt.Errorf("docx: writing %s: %w", name, err)
	}
	return nil
}

type relationships struct {
	XMLName xml.Name       `xml:"Relationships"`
	Xmlns   string         `xml:"xmlns,attr"`
	Items   []relationship `xml:"Relationship"`
}

func (p *Package) packageRels() relationships {
	items := []relationship{{ID: "rId1", Type: relOfficeDocument, Target: PartDocument}}
	if p.core != nil {
		items = append(items, relationship{ID: "rId2", Type: relCoreProperties, Target: PartCore})
	}
	return relationships{Xmlns: nsRelationships, Items: items}
}

type contentTypes struct {
	XMLName   xml.Name       `xml:"Types"`
	Xmlns     string         `xml:"xmlns,attr"`
	Defaults  []defaultType  `xml:"Default"`
	Overrides []overrideType `xml:"Override"`
}

type defaultType struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type overrideType struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

func (p *Package) contentTypes() contentTypes {
	exts := map[string]string{}
	for _, m := range p.media {
		exts[extOf(m.name)] = m.contentType
	}
	keys := make([]string, 0, len(exts))
	for k := range exts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ct := contentTypes{
		Xmlns: nsContentTypes,
		Defaults: []defaultType{
			{Extension: "rels", ContentType: ctRelationships},
			{Extension: "xml", ContentType: "application/xml"},
		},
		Overrides: []overrideType{
			{PartName: "/" + PartDocument, ContentType: ctMain},
		},
	}
	for _, k := range keys {
		ct.Defaults = append(ct.Defaults, defaultType{Extension: k, ContentType: exts[k]})
	}
	if p.styles != nil {
		ct.Overrides = append(ct.Overrides, overrideType{PartName: "/" + PartStyles, ContentType: ctStyles})
	}
	if p.core != nil {
		ct.Overrides = append(ct.Overrides, overrideType{PartName: "/" + PartCore, ContentType: ctCore})
	}
	return ct
}

func extOf(name string) string {
	for i := len(name) - 1; i >= 0 && name[i] != '/'; i-- {
		if name[i] == '.' {
			return name[i+1:]
		}
	}
	return ""
}

type coreXML struct {
	XMLName        xml.Name `xml:"cp:coreProperties"`
	CP             string   `xml:"xmlns:cp,attr"`
	DC             string   `xml:"xmlns:dc,attr"`
	Title          string   `xml:"dc:title,omitempty"`
	Subject        string   `xml:"dc:subject,omitempty"`
	Creator        string   `xml:"dc:creator,omitempty"`
	LastModifiedBy string   `xml:"cp:lastModifiedBy,omitempty"`
}

func newCoreXML(c CoreProperties) coreXML {
	return coreXML{
		CP:      "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
		DC:      "http://purl.org/dc/elements/1.1/",
		Title:   c.Title,
		Subject: c.Subject,
		Creator: c.Creator,

		LastModifiedBy: c.LastModifiedBy,
	}
}
