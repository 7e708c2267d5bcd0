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

var errInvalidMontagemPayload = pkg.NewDomainErrorSimple("INVALID_MONTAGEM_INPUT", "Invalid montagem payload", http.StatusBadRequest)

// MontagemHandler handles HTTP requests for the PC-assembly flow.

type MontagemHandler struct {
	usecase    usecase.IMontagemUseCase
	inventario usecase.IInventarioUseCase
}

func NewMontagemHandler(uc usecase.IMontagemUseCase, inventario usecase.IInventarioUseCase) *MontagemHandler {
	return &MontagemHandler{usecase: uc, inventario: inventario}
}

// ListAvailable returns in-stock components, optionally narrowed by category
// and by the socket/RAM type compatibility of parts already chosen.
func (h *MontagemHandler) ListAvailable(c *gin.Context) {
	filter := usecase.ComponentFilter{
		Categoria: entities.Categoria(c.Query("categoria")),
		Socket:    c.Query("socket"),
		RAMType:   c.Query("ram_type"),
	}

	items, err := h.usecase.ListAvailable(c.Request.Context(), c.Param("empresa_id"), filter)
	if err != nil {
		appErr := mapMontagemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInventoryItems(items))
}

// QuoteBuild prices a candidate build without touching stock.
func (h *MontagemHandler) QuoteBuild(c *gin.Context) {
	var payload request.QuoteBuildRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMontagemPayload.HTTPStatus, errInvalidMontagemPayload.ToHTTPError())
		return
	}

	items := make([]entities.InventoryItem, 0, len(payload.ComponentIDs))
	for _, id := range payload.ComponentIDs {
		item, err := h.inventario.GetByID(c.Request.Context(), c.Param("empresa_id"), id)
		if err != nil {
			appErr := mapMontagemError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		items = append(items, item)
	}

	quote := h.usecase.QuoteBuild(items, payload.ProfitMargin)
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// SalvarPCMontado assembles a PC, consuming one unit of each component.
func (h *MontagemHandler) SalvarPCMontado(c *gin.Context) {
	var payload request.SalvarPCMontadoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMontagemPayload.HTTPStatus, errInvalidMontagemPayload.ToHTTPError())
		return
	}
	log.Printf("[montagem][handler] salvar start name=%q components=%d", payload.Name, len(payload.ComponentIDs))

	pc, err := h.usecase.SalvarPCMontado(c.Request.Context(), c.Param("empresa_id"), payload.Name, payload.ComponentIDs, payload.ProfitMargin)
	if err != nil {
		log.Printf("[montagem][handler] salvar failed name=%q err=%v", payload.Name, err)
		appErr := mapMontagemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPCMontado(pc))
}

// FinalizarPedido turns a quoted build into a Pendente sales order and posts
// the production expense.
func (h *MontagemHandler) FinalizarPedido(c *gin.Context) {
	var payload request.FinalizarPedidoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMontagemPayload.HTTPStatus, errInvalidMontagemPayload.ToHTTPError())
		return
	}

	pedido, err := h.usecase.FinalizarPedido(c.Request.Context(), c.Param("empresa_id"), payload.ToInput())
	if err != nil {
		appErr := mapMontagemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPedido(pedido))
}

func mapMontagemError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmpresaID),
		errors.Is(err, usecase.ErrInvalidPCName),
		errors.Is(err, usecase.ErrInvalidClientName),
		errors.Is(err, usecase.ErrInvalidItemID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyComponentList):
		return pkg.NewDomainErrorSimple("EMPTY_COMPONENT_LIST", "At least one component is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInventoryItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Inventory item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIncompleteBuild):
		return pkg.NewDomainErrorSimple("INCOMPLETE_BUILD", "Build is missing a core component category", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrIncompatibleBuild):
		return pkg.NewDomainErrorSimple("INCOMPATIBLE_BUILD", "Selected components are not compatible", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Insufficient stock for this build", http.StatusConflict)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Concurrent update, retry the operation", http.StatusConflict)
	case errors.Is(err, usecase.ErrPartialSuccess):
		return pkg.NewDomainError("PARTIAL_SUCCESS", "Stock was consumed but the record write failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
