package report

import (
	"fmt"
	"net/http"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// List names the report types the generate endpoint accepts.
func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"types": []string{TypeForm16, TypeMusterRoll, TypePFESI},
	}, nil)
}

// Generate streams a rendered PDF. ?download=1 switches the disposition from
// inline view to attachment.
func (h *Handler) Generate(c *gin.Context) {
	doc, err := h.service.Generate(c.Request.Context(), c.Param("type"), c.GetString("user_id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	disposition := "inline"
	if c.Query("download") == "1" || c.Query("download") == "true" {
		disposition = "attachment"
	}

	c.Header("Content-Disposition", fmt.Sprintf(`%s; filename="%s"`, disposition, doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Bytes)
}
