package cases

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"justicehub-backend/internal/shared/apperr"
	"justicehub-backend/internal/shared/server/middleware"
	"justicehub-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches case routes to an authenticated router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/cases", h.list)
	rg.POST("/cases", h.create)
	rg.GET("/cases/:id", h.get)
	rg.PUT("/cases/:id", h.update)
	rg.DELETE("/cases/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	p := middleware.PrincipalFromContext(c)

	list, err := h.Svc.List(c.Request.Context(), p)
	if err != nil {
		respond.HandleError(c, err)
		return
	}

	resp := make([]CaseDetailResponse, 0, len(list))
	for _, cw := range list {
		resp = append(resp, toDetailResponse(cw))
	}
	respond.List(c, resp, len(resp))
}

func (h *Handler) get(c *gin.Context) {
	p := middleware.PrincipalFromContext(c)

	cw, err := h.Svc.Get(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respond.HandleError(c, err)
		return
	}

	respond.Data(c, http.StatusOK, toDetailResponse(cw))
}

func (h *Handler) create(c *gin.Context) {
	p := middleware.PrincipalFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.HandleError(c, apperr.Validation("Invalid request body"))
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), p, CreateInput{
		CaseType:      req.CaseType,
		Title:         req.Title,
		Description:   req.Description,
		PoliceStation: req.PoliceStation,
		Location:      req.Location,
		Status:        req.Status,
	})
	if err != nil {
		respond.HandleError(c, err)
		return
	}

	respond.Data(c, http.StatusCreated, toResponse(created))
}

func (h *Handler) update(c *gin.Context) {
	p := middleware.PrincipalFromContext(c)

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.HandleError(c, apperr.Validation("Invalid request body"))
		return
	}

	updated, err := h.Svc.Update(c.Request.Context(), p, c.Param("id"), UpdateInput{
		CaseType:      req.CaseType,
		Title:         req.Title,
		Description:   req.Description,
		PoliceStation: req.PoliceStation,
		Location:      req.Location,
		Status:        req.Status,
	})
	if err != nil {
		respond.HandleError(c, err)
		return
	}

	respond.Data(c, http.StatusOK, toResponse(updated))
}

func (h *Handler) delete(c *gin.Context) {
	p := middleware.PrincipalFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), p, c.Param("id")); err != nil {
		respond.HandleError(c, err)
		return
	}

	respond.Data(c, http.StatusOK, gin.H{})
}
