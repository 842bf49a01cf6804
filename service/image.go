package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/rabinshresthaaa/CoverPage/pkg/docx"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

type imageFormat struct {
	ext         string
	contentType string
}

// Keyed by the format name image.DecodeConfig reports.
var imageFormats = map[string]imageFormat{
	"png":  {ext: "png", contentType: "image/png"},
	"jpeg": {ext: "jpeg", contentType: "image/jpeg"},
	"gif":  {ext: "gif", contentType: "image/gif"},
	"bmp":  {ext: "bmp", contentType: "image/bmp"},
	"tiff": {ext: "tiff", contentType: "image/tiff"},
}

// EmbedImage registers asset as an image part of pkg and returns a centered
// paragraph drawing it at width x height pixels.
func EmbedImage(pkg *docx.Package, asset Asset, width, height docx.Pixels, name string) (docx.Paragraph, error) {
	f, err := detectFormat(asset)
	if err != nil {
		return docx.Paragraph{}, err
	}

	relID := pkg.AddImage(f.ext, f.contentType, asset.Data)
	drawing := docx.InlineImage(relID, pkg.NextDrawingID(), name, width, height)

	return docx.Paragraph{
		Props: &docx.ParagraphProperties{
			Spacing:       TightSpacing(),
			Justification: &docx.Val{Val: docx.JustifyCenter},
		},
		Runs: []docx.Run{{Content: []docx.RunContent{drawing}}},
	}, nil
}

// CheckAsset loads name from source and verifies it is a supported image.
func CheckAsset(ctx context.Context, source AssetSource, name string) error {
	asset, err := source.Load(ctx, name)
	if err != nil {
		return err
	}
	_, err = detectFormat(asset)
	return err
}

func detectFormat(asset Asset) (imageFormat, error) {
	if len(asset.Data) == 0 {
		return imageFormat{}, fmt.Errorf("%w: %s is empty", ErrInvalidAsset, asset.Name)
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(asset.Data))
	if err != nil {
		return imageFormat{}, fmt.Errorf("%w: %s: %v", ErrInvalidAsset, asset.Name, err)
	}
	f, ok := imageFormats[format]
	if !ok {
		return imageFormat{}, fmt.Errorf("%w: %s: unsupported format %s", ErrInvalidAsset, asset.Name, format)
	}
	return f, nil
}
