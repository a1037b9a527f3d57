package imagepkg

import (
	"fmt"
	"image/color"
	"math"
)

// Layout positions card elements as fractions of the template size.
// X values are fractions of width, Y values fractions of height.
type Layout struct {
	TextX   float64 `yaml:"text_x"`
	NameY   float64 `yaml:"name_y"`
	PhoneY  float64 `yaml:"phone_y"`
	EmailY  float64 `yaml:"email_y"`
	URLY    float64 `yaml:"url_y"`
	QRX     float64 `yaml:"qr_x"`
	QRY     float64 `yaml:"qr_y"`
	QRScale float64 `yaml:"qr_scale"`

	FontSize     float64 `yaml:"font_size"`
	QRPadding    int     `yaml:"qr_padding"`
	MarkerRadius int     `yaml:"marker_radius"`

	TextColor  color.RGBA  `yaml:"-"`
	DebugColor color.NRGBA `yaml:"-"`
}

// DefaultLayout matches the stock business card template.
func DefaultLayout() Layout {
	return Layout{
		TextX:        0.15,
		NameY:        0.30,
		PhoneY:       0.45,
		EmailY:       0.60,
		URLY:         0.72,
		QRX:          0.61,
		QRY:          0.36,
		QRScale:      0.40,
		FontSize:     25,
		QRPadding:    10,
		MarkerRadius: 5,
		TextColor:    color.RGBA{R: 0, G: 28, B: 84, A: 255},
		DebugColor:   color.NRGBA{R: 255, G: 0, B: 0, A: 128},
	}
}

func (l Layout) Validate() error {
	fracs := []struct {
		name string
		v    float64
	}{
		{"text_x", l.TextX},
		{"name_y", l.NameY},
		{"phone_y", l.PhoneY},
		{"email_y", l.EmailY},
		{"url_y", l.URLY},
		{"qr_x", l.QRX},
		{"qr_y", l.QRY},
		{"qr_scale", l.QRScale},
	}
	for _, f := range fracs {
		if math.IsNaN(f.v) || f.v < 0 || f.v > 1 {
			return fmt.Errorf("layout %s must be within [0,1], got %v", f.name, f.v)
		}
	}
	if l.QRScale == 0 {
		return fmt.Errorf("layout qr_scale must be positive")
	}
	if l.FontSize <= 0 {
		return fmt.Errorf("layout font_size must be positive, got %v", l.FontSize)
	}
	if l.QRPadding < 0 || l.MarkerRadius < 0 {
		return fmt.Errorf("layout qr_padding and marker_radius must not be negative")
	}
	return nil
}

// Anchors are absolute pixel positions for one template size.
type Anchors struct {
	TextX  int
	NameY  int
	PhoneY int
	EmailY int
	URLY   int
	QRX    int
	QRY    int
	QRSize int
}

// Anchors resolves the layout against a width x height template.
func (l Layout) Anchors(width, height int) Anchors {
	w, h := float64(width), float64(height)
	return Anchors{
		TextX:  scale(w, l.TextX),
		NameY:  scale(h, l.NameY),
		PhoneY: scale(h, l.PhoneY),
		EmailY: scale(h, l.EmailY),
		URLY:   scale(h, l.URLY),
		QRX:    scale(w, l.QRX),
		QRY:    scale(h, l.QRY),
		QRSize: scale(h, l.QRScale),
	}
}

func scale(dim, frac float64) int {
	return int(math.Round(dim * frac))
}
