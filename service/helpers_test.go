package service

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/rabinshresthaaa/CoverPage/config"
	"github.com/rabinshresthaaa/CoverPage/model"
	"golang.org/x/image/bmp"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(w, h)); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func bmpBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, testImage(w, h)); err != nil {
		t.Fatalf("Failed to encode bmp: %v", err)
	}
	return buf.Bytes()
}

func testAssetsConfig() *config.AssetsConfig {
	return &config.AssetsConfig{
		Source: config.SourceFile,
		Logo:   config.ImageConfig{Name: "tu-logo.png", Width: 200, Height: 200},
		Line:   config.ImageConfig{Width: 600, Height: 4},
	}
}

func sampleInput() model.CoverPageInput {
	return model.CoverPageInput{
		SubjectName:    "Physics",
		StudentName:    "Jane Doe",
		RollNumber:     "12",
		TeacherName:    "Dr. Smith",
		SubmissionDate: time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC),
	}
}
