package api

import "github.com/gin-gonic/gin"

// NewRouter builds the gin engine serving the card form and API.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.MaxMultipartMemory = h.maxUploadBytes
	r.SetHTMLTemplate(pageTemplate)
	RegisterRoutes(r, h)
	return r
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/", h.index)
	r.POST("/generate", h.generate)

	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.POST("/card", h.cardPNG)
		api.GET("/qr", h.qr)
		api.GET("/vcard", h.vcard)
	}
}
