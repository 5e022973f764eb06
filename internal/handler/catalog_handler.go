package handler

import (
	"net/http"

	"sellos/internal/middleware"
	"sellos/internal/service"
	"sellos/pkg/response"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	auth           *middleware.TokenVerifier
}

func NewCatalogHandler(catalogService service.CatalogService, auth *middleware.TokenVerifier) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, auth: auth}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	readers := h.auth.RequireRole(middleware.RoleAdmin, middleware.RoleOperator)

	router.GET("/api/sellos/datos", readers, h.GetFormData)
	router.GET("/api/acts/:code", readers, h.GetAct)
}

// GetFormData returns the selector contents of the stamp form
// @Summary      Stamp form data
// @Description  Acts, currencies, clients and products used to populate the form
// @Tags         catalog
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=service.FormDataResponse}
// @Failure      500  {object}  response.Response
// @Router       /api/sellos/datos [get]
func (h *CatalogHandler) GetFormData(c *gin.Context) {
	data, err := h.catalogService.GetFormData(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, data))
}

// GetAct returns the configuration of one act
// @Summary      Get act
// @Tags         catalog
// @Security     BearerAuth
// @Produce      json
// @Param        code  path      string  true  "Act code"
// @Success      200   {object}  response.Response{data=service.ActResponse}
// @Failure      404   {object}  response.Response
// @Router       /api/acts/{code} [get]
func (h *CatalogHandler) GetAct(c *gin.Context) {
	act, err := h.catalogService.GetAct(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, service.ActResponseOf(act)))
}
