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

var errInvalidClientePayload = pkg.NewDomainErrorSimple("INVALID_CLIENTE_INPUT", "Invalid cliente payload", http.StatusBadRequest)

// ClienteHandler handles HTTP requests for the customer registry.

type ClienteHandler struct {
	usecase usecase.IClienteUseCase
}

func NewClienteHandler(uc usecase.IClienteUseCase) *ClienteHandler {
	return &ClienteHandler{usecase: uc}
}

func (h *ClienteHandler) Create(c *gin.Context) {
	var payload request.ClienteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientePayload.HTTPStatus, errInvalidClientePayload.ToHTTPError())
		return
	}

	cliente, err := h.usecase.Create(c.Request.Context(), c.Param("empresa_id"), payload.ToEntity())
	if err != nil {
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCliente(cliente))
}

func (h *ClienteHandler) GetByID(c *gin.Context) {
	cliente, err := h.usecase.GetByID(c.Request.Context(), c.Param("empresa_id"), c.Param("cliente_id"))
	if err != nil {
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCliente(cliente))
}

func (h *ClienteHandler) List(c *gin.Context) {
	clientes, err := h.usecase.List(c.Request.Context(), c.Param("empresa_id"))
	if err != nil {
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClientes(clientes))
}

func (h *ClienteHandler) Update(c *gin.Context) {
	var payload request.ClienteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientePayload.HTTPStatus, errInvalidClientePayload.ToHTTPError())
		return
	}

	cliente, err := h.usecase.Update(c.Request.Context(), c.Param("empresa_id"), c.Param("cliente_id"), payload.ToEntity())
	if err != nil {
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCliente(cliente))
}

func (h *ClienteHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("empresa_id"), c.Param("cliente_id")); err != nil {
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapClienteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmpresaID), errors.Is(err, usecase.ErrInvalidClienteID), errors.Is(err, usecase.ErrInvalidClienteNom):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClienteNotFound):
		return pkg.NewDomainErrorSimple("CLIENTE_NOT_FOUND", "Cliente not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
