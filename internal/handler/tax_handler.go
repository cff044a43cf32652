package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type TaxHandler struct {
	taxService service.TaxService
}

func NewTaxHandler(taxService service.TaxService) *TaxHandler {
	return &TaxHandler{taxService: taxService}
}

func (h *TaxHandler) RegisterRoutes(router *gin.RouterGroup) {
	taxes := router.Group("/api/taxes", middleware.RequireAuth())
	{
		taxes.GET("", h.ListTaxes)
		taxes.POST("", h.CreateTax)
		taxes.PUT("/:id", h.UpdateTax)
		taxes.DELETE("/:id", h.DeleteTax)
	}
}

// @Summary      List taxes
// @Description  All configured taxes including the system Ad Spend row
// @Tags         Taxes
// @Produce      json
// @Success      200 {object} response.Response{data=[]service.TaxResponse}
// @Security     BearerAuth
// @Router       /api/taxes [get]
func (h *TaxHandler) ListTaxes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	taxes, err := h.taxService.ListTaxes(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, taxes))
}

// @Summary      Create tax
// @Tags         Taxes
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateTaxRequest  true  "Create Tax Payload"
// @Success      201 {object} response.Response{data=service.TaxResponse}
// @Failure      400 {object} response.Response
// @Security     BearerAuth
// @Router       /api/taxes [post]
func (h *TaxHandler) CreateTax(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CreateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	tax, err := h.taxService.CreateTax(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, tax))
}

// @Summary      Update tax
// @Description  System taxes are read-only and reject updates
// @Tags         Taxes
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Tax ID"
// @Param        payload  body      service.UpdateTaxRequest  true  "Update Tax Payload"
// @Success      200 {object} response.Response{data=service.TaxResponse}
// @Failure      400 {object} response.Response
// @Security     BearerAuth
// @Router       /api/taxes/{id} [put]
func (h *TaxHandler) UpdateTax(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.UpdateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	tax, err := h.taxService.UpdateTax(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, tax))
}

// @Summary      Delete tax
// @Description  System taxes are read-only and reject deletion
// @Tags         Taxes
// @Produce      json
// @Param        id  path  string  true  "Tax ID"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response
// @Security     BearerAuth
// @Router       /api/taxes/{id} [delete]
func (h *TaxHandler) DeleteTax(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.taxService.DeleteTax(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": true}))
}
