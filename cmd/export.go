package cmd

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/YahyaAf/portfolio/internal/content"
	"github.com/YahyaAf/portfolio/internal/server"
	"github.com/YahyaAf/portfolio/internal/theme"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the portfolio to static files",
	Long: `The export command renders index.html and copies the embedded
static assets and the images directory into the output directory,
ready for any static host. Project links point straight at their
repositories since no server is there to count clicks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out := cfg.Site.ExportDir
		if cmd.Flags().Changed("out") {
			out = exportDir
		}
		return runExport(out, cfg.Site.ImagesDir)
	},
}

func runExport(out, imagesDir string) error {
	log.Printf("Exporting portfolio to %s", out)
	if err := os.RemoveAll(out); err != nil {
		return fmt.Errorf("failed to remove output directory '%s': %w", out, err)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", out, err)
	}

	renderer, err := server.NewRenderer()
	if err != nil {
		return err
	}
	// The stored preference is only known in the browser.
	data, err := server.NewPageData(content.Default(), theme.Default, false, false)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(out, "index.html"))
	if err != nil {
		return fmt.Errorf("creating index.html: %w", err)
	}
	if err := renderer.Render(f, data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing index.html: %w", err)
	}

	if err := copyFS(server.Static(), filepath.Join(out, "static")); err != nil {
		return fmt.Errorf("copying static assets: %w", err)
	}

	if imagesDir != "" {
		if _, err := os.Stat(imagesDir); err == nil {
			if err := copyFS(os.DirFS(imagesDir), filepath.Join(out, "images")); err != nil {
				return fmt.Errorf("copying images: %w", err)
			}
		} else {
			log.Printf("Images directory '%s' not found, skipping copy", imagesDir)
		}
	}

	log.Println("Export complete")
	return nil
}

// copyFS writes every file of src under dst.
func copyFS(src fs.FS, dst string) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "public", "output directory")
	rootCmd.AddCommand(exportCmd)
}
