package handlers

import (
	"errors"
	"log"
	"net/http"

	request "informatica_xpto/internal/adapter/http/dto/request"
	response "informatica_xpto/internal/adapter/http/dto/response"
	"informatica_xpto/internal/domain/entities"
	"informatica_xpto/internal/usecase"
	"informatica_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPedidoPayload = pkg.NewDomainErrorSimple("INVALID_PEDIDO_INPUT", "Invalid pedido payload", http.StatusBadRequest)

// PedidoHandler handles HTTP requests for sales orders.
//
// Status changes and deletion go through the reconciliation flow so stock and
// the financial ledger stay consistent with what the operator sees.

type PedidoHandler struct {
	usecase   usecase.IPedidoUseCase
	reconcile usecase.IReconcileUseCase
}

func NewPedidoHandler(uc usecase.IPedidoUseCase, reconcile usecase.IReconcileUseCase) *PedidoHandler {
	return &PedidoHandler{usecase: uc, reconcile: reconcile}
}

func (h *PedidoHandler) Create(c *gin.Context) {
	var payload request.PedidoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPedidoPayload.HTTPStatus, errInvalidPedidoPayload.ToHTTPError())
		return
	}

	pedido, err := h.usecase.Create(c.Request.Context(), c.Param("empresa_id"), payload.ToEntity())
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPedido(pedido))
}

func (h *PedidoHandler) GetByID(c *gin.Context) {
	pedido, err := h.usecase.GetByID(c.Request.Context(), c.Param("empresa_id"), c.Param("pedido_id"))
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPedido(pedido))
}

func (h *PedidoHandler) List(c *gin.Context) {
	pedidos, err := h.usecase.List(c.Request.Context(), c.Param("empresa_id"))
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPedidos(pedidos))
}

// Update edits the descriptive fields only; status never changes here.
func (h *PedidoHandler) Update(c *gin.Context) {
	var payload request.PedidoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPedidoPayload.HTTPStatus, errInvalidPedidoPayload.ToHTTPError())
		return
	}

	pedido, err := h.usecase.Update(c.Request.Context(), c.Param("empresa_id"), c.Param("pedido_id"), payload.ToEntity())
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPedido(pedido))
}

// ChangeStatus drives the stock-and-finance reconciliation for one pedido.
func (h *PedidoHandler) ChangeStatus(c *gin.Context) {
	pedidoID := c.Param("pedido_id")
	var payload request.StatusChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPedidoPayload.HTTPStatus, errInvalidPedidoPayload.ToHTTPError())
		return
	}
	log.Printf("[pedido][handler] status change start pedido_id=%s new_status=%s", pedidoID, payload.Status)

	result, err := h.reconcile.ReconcilePedido(c.Request.Context(), c.Param("empresa_id"), pedidoID, entities.PedidoStatus(payload.Status), payload.ValorFinal)
	if err != nil {
		log.Printf("[pedido][handler] status change failed pedido_id=%s err=%v", pedidoID, err)
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[pedido][handler] status change success pedido_id=%s status=%s stock_adjusted=%t posted=%t",
		pedidoID, result.Status, result.StockAdjusted, result.Posted)

	c.JSON(http.StatusOK, response.FromReconcileResult(result))
}

// Delete cancels the pedido first when it still consumes stock, so the units
// return before the record disappears.
func (h *PedidoHandler) Delete(c *gin.Context) {
	if err := h.reconcile.DeletePedido(c.Request.Context(), c.Param("empresa_id"), c.Param("pedido_id")); err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapPedidoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmpresaID), errors.Is(err, usecase.ErrInvalidPedidoID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPedidoNotFound):
		return pkg.NewDomainErrorSimple("PEDIDO_NOT_FOUND", "Pedido not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInventoryItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Inventory item referenced by the pedido not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Insufficient stock for this transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Invalid status transition", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidFinalValue):
		return pkg.NewDomainErrorSimple("INVALID_FINAL_VALUE", "A positive final value is required to deliver", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Concurrent update, retry the operation", http.StatusConflict)
	case errors.Is(err, usecase.ErrPartialSuccess):
		return pkg.NewDomainError("PARTIAL_SUCCESS", "Status updated but the financial posting failed; retry the posting", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
