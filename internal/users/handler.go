package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"justicehub-backend/internal/shared/server/middleware"
	"justicehub-backend/internal/shared/server/respond"
	"justicehub-backend/internal/shared/telemetry"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
	Env string
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, env string) *Handler {
	return &Handler{Svc: svc, Env: env}
}

// RegisterPublicRoutes attaches unauthenticated auth routes.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.register)
	rg.POST("/login", h.login)
	rg.POST("/forgotpassword", h.forgotPassword)
	rg.PUT("/resetpassword/:token", h.resetPassword)
}

// RegisterProtectedRoutes attaches routes requiring a bearer token.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.me)
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.HandleError(c, respond.BindingError(err))
		return
	}

	_, token, err := h.Svc.Register(c.Request.Context(), RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		respond.HandleError(c, err)
		return
	}

	respond.Token(c, http.StatusCreated, token)
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.HandleError(c, respond.BindingError(err))
		return
	}

	_, token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respond.HandleError(c, err)
		return
	}

	respond.Token(c, http.StatusOK, token)
}

func (h *Handler) me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	user, err := h.Svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		respond.HandleError(c, err)
		return
	}

	respond.Data(c, http.StatusOK, toResponse(user))
}

func (h *Handler) forgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.HandleError(c, respond.BindingError(err))
		return
	}

	token, err := h.Svc.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		respond.HandleError(c, err)
		return
	}

	// Without an outbound mailer the raw token is only exposed in
	// non-production environments.
	if h.Env != "production" {
		respond.Data(c, http.StatusOK, gin.H{"resetToken": token})
		return
	}
	telemetry.Info("auth.reset_token_issued", map[string]any{"email_domain": emailDomain(req.Email)})
	respond.Data(c, http.StatusOK, gin.H{})
}

func (h *Handler) resetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.HandleError(c, respond.BindingError(err))
		return
	}

	_, token, err := h.Svc.ResetPassword(c.Request.Context(), c.Param("token"), req.Password)
	if err != nil {
		respond.HandleError(c, err)
		return
	}

	respond.Token(c, http.StatusOK, token)
}

func emailDomain(email string) string {
	for i := len(email) - 1; i >= 0; i-- {
		if email[i] == '@' {
			return email[i+1:]
		}
	}
	return ""
}
