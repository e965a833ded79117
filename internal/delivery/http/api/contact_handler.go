package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ralph-xpert-backend/internal/domain"
	"ralph-xpert-backend/pkg/apperror"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

func NewContactHandler(public, admin *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{contactUC: contactUC}

	// Public Routes - no authentication required
	public.POST("/contacts", handler.Submit)
	public.GET("/contacts/recent", handler.Recent)
	public.GET("/contacts/search", handler.Search)

	// Admin Routes
	admin.GET("/contacts", handler.ListAll)
	admin.GET("/contacts/:id", handler.GetByID)
	admin.PATCH("/contacts/:id", handler.Update)
	admin.DELETE("/contacts/:id", handler.Delete)
	admin.DELETE("/contacts", handler.DeleteAll)
}

// Submit godoc
// @Summary      Register a contact
// @Description  Public registration of a phone number. Duplicate numbers are rejected.
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        contact  body  domain.ContactRequest  true  "Contact"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /contacts [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Tous les champs sont requis"))
		return
	}

	contact, err := h.contactUC.Submit(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Contact enregistré avec succès",
		"contact": contact,
	})
}

// Recent returns the five most recent registrations plus the total count,
// for the public ticker on the landing page.
func (h *ContactHandler) Recent(c *gin.Context) {
	contacts, total, err := h.contactUC.ListRecent(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"contacts": contacts,
		"total":    total,
	})
}

// Search godoc
// @Summary      Search contacts
// @Description  Public substring search over name and full number, capped at 10 rows.
// @Tags         contacts
// @Produce      json
// @Param        q    query  string  true  "Search term (min 2 characters)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /contacts/search [get]
func (h *ContactHandler) Search(c *gin.Context) {
	contacts, err := h.contactUC.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"contacts": contacts,
		"total":    len(contacts),
	})
}

func (h *ContactHandler) ListAll(c *gin.Context) {
	contacts, err := h.contactUC.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"contacts": contacts,
	})
}

func (h *ContactHandler) GetByID(c *gin.Context) {
	contact, err := h.contactUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"contact": contact,
	})
}

func (h *ContactHandler) Update(c *gin.Context) {
	var req domain.ContactUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Corps de requête invalide"))
		return
	}

	contact, err := h.contactUC.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Contact modifié avec succès",
		"contact": contact,
	})
}

func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.contactUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Contact supprimé avec succès",
	})
}

func (h *ContactHandler) DeleteAll(c *gin.Context) {
	if err := h.contactUC.DeleteAll(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Tous les contacts ont été supprimés",
	})
}
