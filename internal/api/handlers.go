package api

import (
	"encoding/base64"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/youruser/cardgen/internal/contact"
	imagepkg "github.com/youruser/cardgen/internal/image"
	"github.com/youruser/cardgen/internal/logging"
)

const (
	defaultQRSize = 400
	maxQRSize     = 2048
)

type Handler struct {
	composer       *imagepkg.Composer
	maxUploadBytes int64
}

func NewHandler(composer *imagepkg.Composer, maxUploadBytes int64) *Handler {
	return &Handler{composer: composer, maxUploadBytes: maxUploadBytes}
}

type pageData struct {
	Form      cardForm
	Error     string
	CardImage template.URL
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageData{})
}

// generate renders the card and embeds it in the form page
func (h *Handler) generate(c *gin.Context) {
	req, err := parseCardRequest(c, h.maxUploadBytes)
	form := req.Form
	if err != nil {
		c.HTML(http.StatusBadRequest, "index.html", pageData{Form: form, Error: userMessage(err)})
		return
	}
	b, err := h.render(c, req)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "index.html", pageData{Form: form, Error: userMessage(err)})
		return
	}
	img := template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(b))
	c.HTML(http.StatusOK, "index.html", pageData{Form: form, CardImage: img})
}

// cardPNG returns the raw card; ?download=1 makes it an attachment
func (h *Handler) cardPNG(c *gin.Context) {
	req, err := parseCardRequest(c, h.maxUploadBytes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": userMessage(err)})
		return
	}
	b, err := h.render(c, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": userMessage(err)})
		return
	}
	if parseFlag(c.Query("download")) {
		c.Header("Content-Disposition", `attachment; filename="business-card.png"`)
	}
	c.Data(http.StatusOK, "image/png", b)
}

// qr returns a PNG of the vCard QR for the contact in the query string
func (h *Handler) qr(c *gin.Context) {
	info, ok := queryContact(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one of name, email, phone or url is required"})
		return
	}
	size := defaultQRSize
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 {
		size = min(v, maxQRSize)
	}

	vcf, err := contact.EncodeContact(info)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	b, err := imagepkg.GenerateQRPNG(string(vcf), size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// vcard returns the contact as a .vcf download
func (h *Handler) vcard(c *gin.Context) {
	info, ok := queryContact(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one of name, email, phone or url is required"})
		return
	}
	vcf, err := contact.EncodeContact(info)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+info.Slug()+`.vcf"`)
	c.Data(http.StatusOK, "text/vcard; charset=utf-8", vcf)
}

func (h *Handler) render(c *gin.Context, req cardRequest) ([]byte, error) {
	card, err := h.composer.Compose(req.Contact, req.Template, req.Debug)
	if err != nil {
		logging.Error("compose card", requestIDKey, c.GetString(requestIDKey), "error", err)
		return nil, err
	}
	b, err := imagepkg.EncodePNG(card)
	if err != nil {
		logging.Error("encode card", requestIDKey, c.GetString(requestIDKey), "error", err)
		return nil, err
	}
	return b, nil
}

func queryContact(c *gin.Context) (contact.Info, bool) {
	info := contact.Info{
		Name:  c.Query("name"),
		Email: c.Query("email"),
		Phone: c.Query("phone"),
		URL:   c.Query("url"),
	}
	return info, info != contact.Info{}
}

// userMessage maps errors to text that is safe to show in the form.
func userMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidForm):
		return ErrInvalidForm.Error()
	case errors.Is(err, ErrMissingField),
		errors.Is(err, ErrUnsupportedTemplate),
		errors.Is(err, ErrTemplateTooLarge):
		return err.Error()
	case errors.Is(err, imagepkg.ErrInvalidTemplate):
		return "uploaded template could not be read as an image"
	case errors.Is(err, imagepkg.ErrTemplateUnavailable):
		return "card template is unavailable"
	}
	return "could not generate card"
}
