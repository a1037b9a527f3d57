package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/youruser/cardgen/internal/contact"
	imagepkg "github.com/youruser/cardgen/internal/image"
	"github.com/youruser/cardgen/internal/logging"
	"github.com/youruser/cardgen/internal/util"
)

func newRenderCmd(load configLoader) *cobra.Command {
	var (
		info         contact.Info
		templatePath string
		debug        bool
		out          string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single business card to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			tpl, err := openTemplate(templatePath)
			if err != nil {
				return err
			}
			if err := renderCard(newComposer(cfg), info, tpl, debug, out); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&info.Name, "name", "", "Contact name")
	f.StringVar(&info.Email, "email", "", "Contact email")
	f.StringVar(&info.Phone, "phone", "", "Contact phone number")
	f.StringVar(&info.URL, "url", "", "Contact website (optional)")
	f.StringVar(&templatePath, "template", "", "Custom PNG template, resampled to 1000x600")
	f.BoolVar(&debug, "debug", false, "Draw alignment guides")
	f.StringVarP(&out, "out", "o", "business-card.png", "Output PNG path")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("phone")
	return cmd
}

func newBatchCmd(load configLoader) *cobra.Command {
	var (
		csvPath      string
		outDir       string
		templatePath string
		debug        bool
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Render one card per row of a CSV file (name,email,phone,url)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			tpl, err := openTemplate(templatePath)
			if err != nil {
				return err
			}
			written, err := renderBatch(newComposer(cfg), csvPath, outDir, tpl, debug)
			for _, p := range written {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&csvPath, "csv", "", "CSV file with a name,email,phone,url header")
	f.StringVar(&outDir, "out", "cards", "Output directory")
	f.StringVar(&templatePath, "template", "", "Custom PNG template, resampled to 1000x600")
	f.BoolVar(&debug, "debug", false, "Draw alignment guides")
	_ = cmd.MarkFlagRequired("csv")
	return cmd
}

// openTemplate applies the same rules as uploads: .png only, must decode.
// An empty path selects the configured default template.
func openTemplate(path string) (image.Image, error) {
	if path == "" {
		return nil, nil
	}
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		return nil, fmt.Errorf("template %s: must be a .png file", path)
	}
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return imagepkg.DecodeTemplate(fp)
}

func renderCard(c *imagepkg.Composer, info contact.Info, tpl image.Image, debug bool, out string) error {
	card, err := c.Compose(info, tpl, debug)
	if err != nil {
		return fmt.Errorf("compose %q: %w", info.Name, err)
	}
	b, err := imagepkg.EncodePNG(card)
	if err != nil {
		return err
	}
	return os.WriteFile(out, b, 0o644)
}

// renderBatch writes <slug>.png per contact into outDir and returns the paths
// written. Repeated names get a numeric suffix.
func renderBatch(c *imagepkg.Composer, csvPath, outDir string, tpl image.Image, debug bool) ([]string, error) {
	contacts, err := contact.LoadContactsCSV(csvPath)
	if err != nil {
		return nil, err
	}
	if err := util.EnsureDir(outDir); err != nil {
		return nil, err
	}

	seen := map[string]int{}
	var written []string
	for _, info := range contacts {
		slug := info.Slug()
		seen[slug]++
		if n := seen[slug]; n > 1 {
			slug += "-" + strconv.Itoa(n)
		}
		out := filepath.Join(outDir, slug+".png")
		if err := renderCard(c, info, tpl, debug, out); err != nil {
			return written, err
		}
		logging.Debug("card written", "path", out)
		written = append(written, out)
	}
	logging.Info("batch complete", "cards", len(written), "out", outDir)
	return written, nil
}
