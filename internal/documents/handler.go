package documents

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"justicehub-backend/internal/shared/server/middleware"
	"justicehub-backend/internal/shared/server/respond"
)

// multipartSlack covers form encoding overhead above the file size limit so
// oversize files reach the size check and get the explanatory error.
const multipartSlack = 1 << 20

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to an authenticated router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/cases/:id/documents", h.upload)
	rg.GET("/cases/:id/documents", h.list)
	rg.DELETE("/documents/:id", h.delete)
}

func (h *Handler) upload(c *gin.Context) {
	p := middleware.PrincipalFromContext(c)
	caseID := c.Param("id")

	if h.Svc.MaxFileUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.Svc.MaxFileUpload+multipartSlack)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.HandleError(c, ErrNoFile)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.HandleError(c, ErrNoFile)
		return
	}
	defer file.Close()

	doc, err := h.Svc.Attach(c.Request.Context(), p, caseID, fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		respond.HandleError(c, err)
		return
	}

	respond.Data(c, http.StatusOK, toResponse(doc))
}

func (h *Handler) list(c *gin.Context) {
	p := middleware.PrincipalFromContext(c)

	docs, err := h.Svc.ListForCase(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respond.HandleError(c, err)
		return
	}

	resp := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		resp = append(resp, toResponse(doc))
	}
	respond.List(c, resp, len(resp))
}

func (h *Handler) delete(c *gin.Context) {
	p := middleware.PrincipalFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), p, c.Param("id")); err != nil {
		respond.HandleError(c, err)
		return
	}

	respond.Data(c, http.StatusOK, gin.H{})
}
