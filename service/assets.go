package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Asset is an image file loaded for embedding.
type Asset struct {
	Name string
	Data []byte
}

// AssetSource loads named image assets.
type AssetSource interface {
	Load(ctx context.Context, name string) (Asset, error)
}

// FileAssetSource reads assets from a directory on disk.
type FileAssetSource struct {
	Root string
}

func NewFileAssetSource(root string) *FileAssetSource {
	return &FileAssetSource{Root: root}
}

// Load reads Root/name. Names must stay inside Root.
func (s *FileAssetSource) Load(ctx context.Context, name string) (Asset, error) {
	if err := ctx.Err(); err != nil {
		return Asset{}, err
	}
	if name == "" || !filepath.IsLocal(name) {
		return Asset{}, fmt.Errorf("%w: invalid asset name %q", ErrMissingAsset, name)
	}

	path := filepath.Join(s.Root, name)
	f, err := os.Open(path)
	if err != nil {
		return Asset{}, fmt.Errorf("%w: %v", ErrMissingAsset, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Asset{}, fmt.Errorf("%w: reading %s: %v", ErrMissingAsset, path, err)
	}
	return Asset{Name: name, Data: data}, nil
}

// MapAssetSource serves assets from memory, keyed by name.
type MapAssetSource map[string][]byte

func (m MapAssetSource) Load(ctx context.Context, name string) (Asset, error) {
	data, ok := m[name]
	if !ok {
		return Asset{}, fmt.Errorf("%w: %s", ErrMissingAsset, name)
	}
	return Asset{Name: name, Data: data}, nil
}
