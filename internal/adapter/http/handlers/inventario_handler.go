package handlers

import (
	"errors"
	"net/http"

	request "informatica_xpto/internal/adapter/http/dto/request"
	response "informatica_xpto/internal/adapter/http/dto/response"
	"informatica_xpto/internal/usecase"
	"informatica_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidItemPayload = pkg.NewDomainErrorSimple("INVALID_ITEM_INPUT", "Invalid inventory item payload", http.StatusBadRequest)

// InventarioHandler handles HTTP requests for the component stock.
//
// Quantity edits through this handler replace the stored count; the
// reconciliation and assembly flows never come through here.

type InventarioHandler struct {
	usecase usecase.IInventarioUseCase
}

func NewInventarioHandler(uc usecase.IInventarioUseCase) *InventarioHandler {
	return &InventarioHandler{usecase: uc}
}

func (h *InventarioHandler) Create(c *gin.Context) {
	var payload request.InventoryItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Create(c.Request.Context(), c.Param("empresa_id"), payload.ToEntity())
	if err != nil {
		appErr := mapInventarioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInventoryItem(item))
}

func (h *InventarioHandler) GetByID(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("empresa_id"), c.Param("item_id"))
	if err != nil {
		appErr := mapInventarioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInventoryItem(item))
}

func (h *InventarioHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), c.Param("empresa_id"))
	if err != nil {
		appErr := mapInventarioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInventoryItems(items))
}

func (h *InventarioHandler) Update(c *gin.Context) {
	var payload request.InventoryItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Update(c.Request.Context(), c.Param("empresa_id"), c.Param("item_id"), payload.ToEntity())
	if err != nil {
		appErr := mapInventarioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInventoryItem(item))
}

func (h *InventarioHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("empresa_id"), c.Param("item_id")); err != nil {
		appErr := mapInventarioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapInventarioError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmpresaID), errors.Is(err, usecase.ErrInvalidItemID), errors.Is(err, usecase.ErrInvalidItemInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInventoryItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Inventory item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
