package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"sellos/internal/middleware"
	"sellos/internal/sellado"
	"sellos/internal/service"
	"sellos/pkg/pagination"
	"sellos/pkg/response"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type StampHandler struct {
	stampService service.StampService
	auth         *middleware.TokenVerifier
}

func NewStampHandler(stampService service.StampService, auth *middleware.TokenVerifier) *StampHandler {
	return &StampHandler{stampService: stampService, auth: auth}
}

func (h *StampHandler) RegisterRoutes(router *gin.RouterGroup) {
	sellos := router.Group("/api/sellos")
	sellos.Use(h.auth.RequireRole(middleware.RoleAdmin, middleware.RoleOperator))
	{
		sellos.POST("/form", h.NewForm)
		sellos.POST("/form/edit", h.EditForm)
		sellos.POST("/preview", h.Preview)
		sellos.POST("", h.CreateStampRecord)
		sellos.GET("", h.ListStampRecords)
		sellos.GET("/export", h.ExportStampRecords)
		sellos.GET("/:id", h.GetStampRecord)
	}
}

// NewForm opens a working set for an act with its default dates and rates
// @Summary      New stamp form
// @Tags         sellos
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.NewFormRequest  false  "Act code (default 01)"
// @Success      200      {object}  response.Response{data=service.FormResponse}
// @Failure      404      {object}  response.Response
// @Router       /api/sellos/form [post]
func (h *StampHandler) NewForm(c *gin.Context) {
	var req service.NewFormRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
			return
		}
	}

	res, err := h.stampService.NewForm(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// EditForm applies one edit to a working set and returns it recalculated
// @Summary      Edit stamp form
// @Description  Ops: set_field, set_date, set_offset, select_act, copy_base, reset
// @Tags         sellos
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.EditFormRequest  true  "Form and edit"
// @Success      200      {object}  response.Response{data=service.FormResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/sellos/form/edit [post]
func (h *StampHandler) EditForm(c *gin.Context) {
	var req service.EditFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	res, err := h.stampService.Edit(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// Preview recalculates and validates a working set without saving it
// @Summary      Preview stamp record
// @Tags         sellos
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      sellado.Form  true  "Working set"
// @Success      200      {object}  response.Response{data=service.FormResponse}
// @Router       /api/sellos/preview [post]
func (h *StampHandler) Preview(c *gin.Context) {
	var form sellado.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	res, err := h.stampService.Preview(c.Request.Context(), form)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// CreateStampRecord registers a stamp record once the form passes every check
// @Summary      Create stamp record
// @Tags         sellos
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      sellado.Form  true  "Working set"
// @Success      201      {object}  response.Response{data=service.StampRecordResponse}
// @Failure      404      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/sellos [post]
func (h *StampHandler) CreateStampRecord(c *gin.Context) {
	var form sellado.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	record, err := h.stampService.Create(c.Request.Context(), form, middleware.OperatorID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, record))
}

// ListStampRecords returns paginated stamp records, newest first
// @Summary      List stamp records
// @Tags         sellos
// @Security     BearerAuth
// @Produce      json
// @Param        buyer_cuit   query     string  false  "Buyer CUIT"
// @Param        seller_cuit  query     string  false  "Seller CUIT"
// @Param        act_code     query     string  false  "Act code"
// @Param        from         query     string  false  "Control date from (YYYY-MM-DD)"
// @Param        to           query     string  false  "Control date to (YYYY-MM-DD)"
// @Param        page         query     int     false  "Page number (default: 1)"
// @Param        limit        query     int     false  "Items per page (default: 20)"
// @Success      200          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Router       /api/sellos [get]
func (h *StampHandler) ListStampRecords(c *gin.Context) {
	var req service.ListStampRecordsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid query: "+err.Error()))
		return
	}
	p := pagination.Parse(c)

	records, total, err := h.stampService.List(c.Request.Context(), req, p.Page, p.Limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, records, p.Page, p.Limit, total))
}

// GetStampRecord returns one stamp record
// @Summary      Get stamp record
// @Tags         sellos
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Record ID"
// @Success      200  {object}  response.Response{data=service.StampRecordResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/sellos/{id} [get]
func (h *StampHandler) GetStampRecord(c *gin.Context) {
	record, err := h.stampService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, record))
}

// ExportStampRecords downloads the matching records as an XLSX workbook
// @Summary      Export stamp records
// @Tags         sellos
// @Security     BearerAuth
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        buyer_cuit   query  string  false  "Buyer CUIT"
// @Param        seller_cuit  query  string  false  "Seller CUIT"
// @Param        act_code     query  string  false  "Act code"
// @Param        from         query  string  false  "Control date from (YYYY-MM-DD)"
// @Param        to           query  string  false  "Control date to (YYYY-MM-DD)"
// @Success      200  {file}    file
// @Failure      400  {object}  response.Response
// @Router       /api/sellos/export [get]
func (h *StampHandler) ExportStampRecords(c *gin.Context) {
	var req service.ListStampRecordsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid query: "+err.Error()))
		return
	}

	var buf bytes.Buffer
	if _, err := h.stampService.Export(c.Request.Context(), req, &buf, middleware.OperatorID(c)); err != nil {
		writeError(c, err)
		return
	}

	filename := fmt.Sprintf("sellos_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
