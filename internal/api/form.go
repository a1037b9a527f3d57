package api

import (
	"errors"
	"fmt"
	"image"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/youruser/cardgen/internal/contact"
	imagepkg "github.com/youruser/cardgen/internal/image"
)

var (
	ErrInvalidForm         = errors.New("invalid form submission")
	ErrMissingField        = errors.New("missing required field")
	ErrUnsupportedTemplate = errors.New("template must be a .png file")
	ErrTemplateTooLarge    = errors.New("template file is too large")
)

// formOverhead is the body allowance on top of the upload limit for the text
// fields and multipart framing.
const formOverhead = 64 << 10

type cardForm struct {
	Name  string `form:"name"`
	Email string `form:"email"`
	Phone string `form:"phone"`
	URL   string `form:"url"`
	Debug string `form:"debug"`
}

type cardRequest struct {
	Form     cardForm
	Contact  contact.Info
	Template image.Image
	Debug    bool
}

// parseCardRequest reads the card form. The optional "template" upload must
// be a decodable .png no larger than maxUpload bytes; the body is capped
// before parsing so oversized uploads are never spooled. The raw form values
// are returned even when validation fails.
func parseCardRequest(c *gin.Context, maxUpload int64) (cardRequest, error) {
	if maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUpload+formOverhead)
	}
	var f cardForm
	if err := c.ShouldBind(&f); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return cardRequest{Form: f}, ErrTemplateTooLarge
		}
		return cardRequest{Form: f}, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}
	req := cardRequest{
		Form: f,
		Contact: contact.Info{
			Name:  strings.TrimSpace(f.Name),
			Email: strings.TrimSpace(f.Email),
			Phone: strings.TrimSpace(f.Phone),
			URL:   strings.TrimSpace(f.URL),
		},
		Debug: parseFlag(f.Debug),
	}
	for _, field := range []struct{ name, v string }{
		{"name", req.Contact.Name},
		{"email", req.Contact.Email},
		{"phone", req.Contact.Phone},
	} {
		if field.v == "" {
			return req, fmt.Errorf("%w: %s", ErrMissingField, field.name)
		}
	}

	tpl, err := readTemplate(c, maxUpload)
	if err != nil {
		return req, err
	}
	req.Template = tpl
	return req, nil
}

func readTemplate(c *gin.Context, maxUpload int64) (image.Image, error) {
	fh, err := c.FormFile("template")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".png") {
		return nil, ErrUnsupportedTemplate
	}
	if maxUpload > 0 && fh.Size > maxUpload {
		return nil, ErrTemplateTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	defer f.Close()
	return imagepkg.DecodeTemplate(f)
}

func parseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
