package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"ralph-xpert-backend/internal/domain"
	"ralph-xpert-backend/pkg/apperror"
	"ralph-xpert-backend/pkg/vcard"
)

// AdminHandler serves the dashboard stats and the VCF export.
type AdminHandler struct {
	statsUC  domain.StatsUsecase
	exportUC domain.ExportUsecase
	product  string
}

func NewAdminHandler(admin *gin.RouterGroup, statsUC domain.StatsUsecase, exportUC domain.ExportUsecase, product string) {
	handler := &AdminHandler{
		statsUC:  statsUC,
		exportUC: exportUC,
		product:  product,
	}

	admin.GET("/stats", handler.Stats)
	admin.GET("/download/vcf", handler.DownloadVCF)
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.statsUC.Compute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}

// DownloadVCF godoc
// @Summary      Download all contacts as a vCard file
// @Tags         admin
// @Produce      plain
// @Success      200  {string}  string  "text/vcard payload"
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /admin/download/vcf [get]
func (h *AdminHandler) DownloadVCF(c *gin.Context) {
	content, total, err := h.exportUC.GenerateVCF(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if content == "" {
		c.Error(apperror.NotFound("Aucun contact à exporter"))
		return
	}

	filename := vcard.ExportFilename(h.product, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("X-Total-Contacts", strconv.FormatInt(total, 10))
	c.Data(http.StatusOK, "text/vcard", []byte(content))
}
