package imagepkg

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/youruser/cardgen/internal/contact"
	"github.com/youruser/cardgen/internal/logging"
)

// Composer renders business cards. It is safe for concurrent use; every
// call opens its own copy of the default template.
type Composer struct {
	layout       Layout
	templatePath string
	fonts        FontSpec
}

func NewComposer(layout Layout, templatePath string, fonts FontSpec) *Composer {
	return &Composer{layout: layout, templatePath: templatePath, fonts: fonts}
}

func (c *Composer) Layout() Layout {
	return c.layout
}

// Compose draws info and its vCard QR code onto a template. A nil tpl selects
// the default template at its native size; any other image is normalized to
// TemplateWidth x TemplateHeight first. With debug set, centerlines and
// anchor markers are drawn over the result.
func (c *Composer) Compose(info contact.Info, tpl image.Image, debug bool) (image.Image, error) {
	var base *image.NRGBA
	if tpl != nil {
		base = NormalizeTemplate(tpl)
	} else {
		img, err := LoadTemplate(c.templatePath)
		if err != nil {
			return nil, err
		}
		base = imaging.Clone(img)
	}

	width, height := base.Bounds().Dx(), base.Bounds().Dy()
	a := c.layout.Anchors(width, height)
	if a.QRSize < 1 {
		return nil, fmt.Errorf("template %dx%d too small for a QR code", width, height)
	}

	fr := LookupFont(c.fonts, c.layout.FontSize)
	defer fr.Close()
	if fr.Source != FontSystem {
		logging.Debug("font fallback", "font", c.fonts.Name, "source", fr.Source.String())
	}

	dc := gg.NewContextForImage(base)
	dc.SetFontFace(fr.Face)
	dc.SetColor(c.layout.TextColor)
	for _, t := range []struct {
		text string
		y    int
	}{
		{info.Name, a.NameY},
		{info.Phone, a.PhoneY},
		{info.Email, a.EmailY},
		{info.URL, a.URLY},
	} {
		if t.text == "" {
			continue
		}
		dc.DrawString(t.text, float64(a.TextX), textBaseline(fr.Face, t.text, t.y))
	}
	card := imaging.Clone(dc.Image())

	vcf, err := contact.EncodeContact(info)
	if err != nil {
		return nil, err
	}
	qr, err := MakeQR(vcf)
	if err != nil {
		return nil, fmt.Errorf("make qr: %w", err)
	}
	scaled := imaging.Resize(qr, a.QRSize, a.QRSize, imaging.NearestNeighbor)

	pad := c.layout.QRPadding
	bg := imaging.New(a.QRSize+2*pad, a.QRSize+2*pad, color.White)
	card = imaging.Paste(card, bg, image.Pt(a.QRX-pad, a.QRY-pad))
	card = imaging.Paste(card, scaled, image.Pt(a.QRX, a.QRY))

	if !debug {
		return card, nil
	}
	return drawGuides(card, c.layout.DebugGuides(width, height), c.layout.DebugColor), nil
}

// textBaseline returns the baseline y that vertically centers the rendered
// bounding box of s on anchorY.
func textBaseline(face font.Face, s string, anchorY int) float64 {
	b, _ := font.BoundString(face, s)
	top := float64(b.Min.Y) / 64
	bottom := float64(b.Max.Y) / 64
	return float64(anchorY) - (bottom-top)/2 - top
}

// EncodePNG serializes a composed card.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
