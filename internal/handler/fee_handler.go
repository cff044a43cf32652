package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type FeeHandler struct {
	feeService service.FeeService
}

func NewFeeHandler(feeService service.FeeService) *FeeHandler {
	return &FeeHandler{feeService: feeService}
}

func (h *FeeHandler) RegisterRoutes(router *gin.RouterGroup) {
	fees := router.Group("/api/fees", middleware.RequireAuth())
	{
		fees.GET("", h.ListFees)
		fees.POST("", h.CreateFee)
		fees.PUT("/:id", h.UpdateFee)
		fees.DELETE("/:id", h.DeleteFee)
	}
}

// @Summary      List fees
// @Tags         Fees
// @Produce      json
// @Param        method query string false "Only fees configured for this payment method (pix, boleto, card)"
// @Success      200 {object} response.Response{data=[]service.FeeResponse}
// @Security     BearerAuth
// @Router       /api/fees [get]
func (h *FeeHandler) ListFees(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	fees, err := h.feeService.ListFees(c.Request.Context(), userID, c.Query("method"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, fees))
}

// @Summary      Create fee
// @Tags         Fees
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateFeeRequest  true  "Create Fee Payload"
// @Success      201 {object} response.Response{data=service.FeeResponse}
// @Failure      400 {object} response.Response
// @Security     BearerAuth
// @Router       /api/fees [post]
func (h *FeeHandler) CreateFee(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CreateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	fee, err := h.feeService.CreateFee(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, fee))
}

// @Summary      Update fee
// @Tags         Fees
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Fee ID"
// @Param        payload  body      service.UpdateFeeRequest  true  "Update Fee Payload"
// @Success      200 {object} response.Response{data=service.FeeResponse}
// @Failure      400 {object} response.Response
// @Security     BearerAuth
// @Router       /api/fees/{id} [put]
func (h *FeeHandler) UpdateFee(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.UpdateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	fee, err := h.feeService.UpdateFee(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, fee))
}

// @Summary      Delete fee
// @Tags         Fees
// @Produce      json
// @Param        id  path  string  true  "Fee ID"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response
// @Security     BearerAuth
// @Router       /api/fees/{id} [delete]
func (h *FeeHandler) DeleteFee(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.feeService.DeleteFee(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": true}))
}
