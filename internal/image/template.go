package imagepkg

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
)

// Canonical size uploaded templates are resampled to.
const (
	TemplateWidth  = 1000
	TemplateHeight = 600
)

var (
	// ErrTemplateUnavailable means the default template could not be read.
	ErrTemplateUnavailable = errors.New("default template unavailable")
	// ErrInvalidTemplate means an uploaded template is not a decodable image.
	ErrInvalidTemplate = errors.New("template is not a valid image")
)

// LoadTemplate opens and decodes the template at path. The file is read on
// every call and never modified.
func LoadTemplate(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateUnavailable, err)
	}
	return img, nil
}

// DecodeTemplate decodes an uploaded template image.
func DecodeTemplate(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	return img, nil
}

// NormalizeTemplate flattens img onto opaque white and resamples it to
// TemplateWidth x TemplateHeight.
func NormalizeTemplate(img image.Image) *image.NRGBA {
	resized := imaging.Resize(img, TemplateWidth, TemplateHeight, imaging.Lanczos)
	bg := imaging.New(TemplateWidth, TemplateHeight, color.White)
	return imaging.Overlay(bg, resized, image.Pt(0, 0), 1.0)
}
