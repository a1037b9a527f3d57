package imagepkg

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontSource says which tier of the font lookup produced a face.
type FontSource int

const (
	FontSystem FontSource = iota
	FontEmbedded
	FontBitmap
)

func (s FontSource) String() string {
	switch s {
	case FontSystem:
		return "system"
	case FontEmbedded:
		return "embedded"
	default:
		return "bitmap"
	}
}

// FontSpec names the preferred system font and where to look for it.
type FontSpec struct {
	Name string
	Dirs []string
}

// FontResult is the outcome of a font lookup. It always carries a usable Face.
type FontResult struct {
	Face   font.Face
	Source FontSource
	Path   string
}

func (r FontResult) Close() error {
	if r.Face == nil {
		return nil
	}
	return r.Face.Close()
}

// LookupFont resolves spec at size pixels. A named system font is tried
// first, then the embedded Go Regular face, then basicfont. It never fails.
func LookupFont(spec FontSpec, size float64) FontResult {
	if spec.Name != "" {
		for _, p := range fontCandidates(spec) {
			face, err := loadFace(p, size)
			if err == nil {
				return FontResult{Face: face, Source: FontSystem, Path: p}
			}
		}
	}

	if f, err := opentype.Parse(goregular.TTF); err == nil {
		face, err := newFace(f, size)
		if err == nil {
			return FontResult{Face: face, Source: FontEmbedded}
		}
	}
	return FontResult{Face: basicfont.Face7x13, Source: FontBitmap}
}

func loadFace(path string, size float64) (font.Face, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(b)
	if err != nil {
		return nil, err
	}
	return newFace(f, size)
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// fontCandidates lists file paths that may hold spec.Name, in search order.
func fontCandidates(spec FontSpec) []string {
	if filepath.IsAbs(spec.Name) {
		return []string{spec.Name}
	}

	names := []string{spec.Name}
	if lower := strings.ToLower(spec.Name); lower != spec.Name {
		names = append(names, lower)
	}

	var out []string
	for _, dir := range append(append([]string{}, spec.Dirs...), systemFontDirs()...) {
		for _, n := range names {
			if filepath.Ext(n) != "" {
				out = append(out, filepath.Join(dir, n))
				continue
			}
			out = append(out, filepath.Join(dir, n+".ttf"), filepath.Join(dir, n+".otf"))
		}
	}
	return out
}

func systemFontDirs() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"/Library/Fonts", "/System/Library/Fonts", "/System/Library/Fonts/Supplemental"}
	case "windows":
		return []string{filepath.Join(os.Getenv("WINDIR"), "Fonts")}
	}
	dirs := []string{
		"/usr/share/fonts/truetype/msttcorefonts",
		"/usr/share/fonts/truetype",
		"/usr/share/fonts/TTF",
		"/usr/local/share/fonts",
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".fonts"), filepath.Join(home, ".local/share/fonts"))
	}
	return dirs
}
