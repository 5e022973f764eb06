package handler

import (
	"net/http"

	"sellos/internal/middleware"
	"sellos/internal/service"
	"sellos/pkg/pagination"
	"sellos/pkg/response"

	"github.com/gin-gonic/gin"
)

type PartyHandler struct {
	partyService service.PartyService
	auth         *middleware.TokenVerifier
}

func NewPartyHandler(partyService service.PartyService, auth *middleware.TokenVerifier) *PartyHandler {
	return &PartyHandler{partyService: partyService, auth: auth}
}

func (h *PartyHandler) RegisterRoutes(router *gin.RouterGroup) {
	readers := h.auth.RequireRole(middleware.RoleAdmin, middleware.RoleOperator)

	clients := router.Group("/api/clients", readers)
	{
		clients.GET("", h.SearchClients)
		clients.GET("/:cuit", h.GetClient)
	}
	router.GET("/api/datosente/:cuit", readers, h.GetRegistry)
}

// SearchClients returns paginated clients matching a business name or CUIT prefix
// @Summary      Search clients
// @Tags         clients
// @Security     BearerAuth
// @Produce      json
// @Param        search  query     string  false  "Business name fragment or CUIT prefix"
// @Param        page    query     int     false  "Page number (default: 1)"
// @Param        limit   query     int     false  "Items per page (default: 20)"
// @Success      200     {object}  response.Response
// @Router       /api/clients [get]
func (h *PartyHandler) SearchClients(c *gin.Context) {
	p := pagination.Parse(c)

	clients, total, err := h.partyService.Search(c.Request.Context(), c.Query("search"), p.Page, p.Limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, clients, p.Page, p.Limit, total))
}

// GetClient resolves a party by CUIT
// @Summary      Get client
// @Tags         clients
// @Security     BearerAuth
// @Produce      json
// @Param        cuit  path      string  true  "11 digit CUIT"
// @Success      200   {object}  response.Response{data=service.PartyResponse}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /api/clients/{cuit} [get]
func (h *PartyHandler) GetClient(c *gin.Context) {
	party, err := h.partyService.Resolve(c.Request.Context(), c.Param("cuit"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, party))
}

// GetRegistry returns the registry data (district, next numbers) of a client
// @Summary      Get client registry data
// @Tags         clients
// @Security     BearerAuth
// @Produce      json
// @Param        cuit  path      string  true  "11 digit CUIT"
// @Success      200   {object}  response.Response{data=service.RegistryResponse}
// @Failure      404   {object}  response.Response
// @Router       /api/datosente/{cuit} [get]
func (h *PartyHandler) GetRegistry(c *gin.Context) {
	reg, err := h.partyService.Registry(c.Request.Context(), c.Param("cuit"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, reg))
}
