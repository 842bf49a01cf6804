package cli

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/rabinshresthaaa/CoverPage/server"
	"github.com/rabinshresthaaa/CoverPage/service"
	"github.com/spf13/cobra"
)

var uploadName string

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Inspect and publish cover page images",
}

var assetsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that every configured image loads and decodes",
	Args:  cobra.NoArgs,
	RunE:  runAssetsCheck,
}

var assetsUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload an image to the MinIO asset bucket",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssetsUpload,
}

func init() {
	assetsUploadCmd.Flags().StringVar(&uploadName, "name", "", "object name (defaults to the file name)")
	assetsCmd.AddCommand(assetsCheckCmd, assetsUploadCmd)
	rootCmd.AddCommand(assetsCmd)
}

func runAssetsCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx := contextOrBackground(cmd)
	source, err := server.NewAssetSource(ctx, cfg)
	if err != nil {
		return err
	}

	failed := 0
	for _, img := range []struct {
		name          string
		width, height int
	}{
		{cfg.Assets.Logo.Name, cfg.Assets.Logo.Width, cfg.Assets.Logo.Height},
		{cfg.Assets.Line.Name, cfg.Assets.Line.Width, cfg.Assets.Line.Height},
	} {
		if img.name == "" {
			continue
		}
		if err := service.CheckAsset(ctx, source, img.name); err != nil {
			cmd.Printf("FAIL %s: %v\n", img.name, err)
			failed++
			continue
		}
		cmd.Printf("ok   %s (%dx%d px)\n", img.name, img.width, img.height)
	}

	if failed > 0 {
		return fmt.Errorf("%d asset(s) failed", failed)
	}
	return nil
}

func runAssetsUpload(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Minio.Endpoint == "" {
		return fmt.Errorf("minio.endpoint is not configured")
	}

	path := args[0]
	name := uploadName
	if name == "" {
		name = filepath.Base(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	ctx := contextOrBackground(cmd)
	source, err := service.NewMinioAssetSource(&cfg.Minio)
	if err != nil {
		return err
	}
	if err := source.EnsureBucket(ctx); err != nil {
		return err
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := source.UploadAsset(ctx, name, f, info.Size(), contentType); err != nil {
		return err
	}

	cmd.Printf("Uploaded %s to %s\n", path, source.ObjectURL(name))
	return nil
}
