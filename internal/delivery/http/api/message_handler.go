package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ralph-xpert-backend/internal/domain"
	"ralph-xpert-backend/pkg/apperror"
)

type MessageHandler struct {
	messageUC domain.MessageUsecase
}

func NewMessageHandler(public, admin *gin.RouterGroup, messageUC domain.MessageUsecase) {
	handler := &MessageHandler{messageUC: messageUC}

	public.POST("/messages", handler.Submit)

	admin.GET("/messages", handler.ListAll)
	admin.PATCH("/messages/:id", handler.SetRead)
	admin.DELETE("/messages/:id", handler.Delete)
}

// Submit godoc
// @Summary      Send a contact-form message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        message  body  domain.MessageRequest  true  "Message"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /messages [post]
func (h *MessageHandler) Submit(c *gin.Context) {
	var req domain.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Champs requis manquants"))
		return
	}

	msg, err := h.messageUC.Submit(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Message envoyé avec succès",
		"messageId": msg.ID,
	})
}

func (h *MessageHandler) ListAll(c *gin.Context) {
	messages, err := h.messageUC.ListAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"messages": messages,
	})
}

type setReadRequest struct {
	// Pointer so an explicit false still binds.
	Read *bool `json:"read" binding:"required"`
}

func (h *MessageHandler) SetRead(c *gin.Context) {
	var req setReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Corps de requête invalide"))
		return
	}

	if err := h.messageUC.SetReadState(c.Request.Context(), c.Param("id"), *req.Read); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Statut mis à jour",
	})
}

func (h *MessageHandler) Delete(c *gin.Context) {
	if err := h.messageUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message supprimé",
	})
}
