package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ralph-xpert-backend/internal/domain"
	"ralph-xpert-backend/pkg/apperror"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler registers the admin login route. The route lives under
// /admin for historical reasons but is itself public.
func NewAuthHandler(public *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}
	public.POST("/admin/login", handler.Login)
}

// Login godoc
// @Summary      Admin Login
// @Description  Exchange admin credentials for a 24h bearer token.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        credentials  body  domain.LoginRequest  true  "Admin Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// The login contract only knows 401: a malformed body is just a
		// failed credential check, as it always was.
		c.Error(apperror.Unauthorized("Identifiants incorrects"))
		return
	}

	token, user, err := h.authUC.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    user,
	})
}
