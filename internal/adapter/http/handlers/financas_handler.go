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

var errInvalidTransacaoPayload = pkg.NewDomainErrorSimple("INVALID_TRANSACAO_INPUT", "Invalid transação payload", http.StatusBadRequest)

// FinancasHandler handles HTTP requests for the financial ledger.

type FinancasHandler struct {
	usecase usecase.IFinancasUseCase
}

func NewFinancasHandler(uc usecase.IFinancasUseCase) *FinancasHandler {
	return &FinancasHandler{usecase: uc}
}

func (h *FinancasHandler) Adicionar(c *gin.Context) {
	var payload request.TransacaoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransacaoPayload.HTTPStatus, errInvalidTransacaoPayload.ToHTTPError())
		return
	}

	transacao, err := h.usecase.Adicionar(c.Request.Context(), c.Param("empresa_id"), payload.ToEntity())
	if err != nil {
		appErr := mapFinancasError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTransacao(transacao))
}

func (h *FinancasHandler) AdicionarVenda(c *gin.Context) {
	var payload request.VendaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransacaoPayload.HTTPStatus, errInvalidTransacaoPayload.ToHTTPError())
		return
	}

	transacao, err := h.usecase.AdicionarVenda(c.Request.Context(), c.Param("empresa_id"), payload.ToInput())
	if err != nil {
		appErr := mapFinancasError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTransacao(transacao))
}

func (h *FinancasHandler) Listar(c *gin.Context) {
	transacoes, err := h.usecase.Listar(c.Request.Context(), c.Param("empresa_id"))
	if err != nil {
		appErr := mapFinancasError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransacoes(transacoes))
}

// Atualizar edits a ledger entry; a value change on a linked Receita is
// pushed back onto the originating pedido/OS.
func (h *FinancasHandler) Atualizar(c *gin.Context) {
	var payload request.TransacaoUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransacaoPayload.HTTPStatus, errInvalidTransacaoPayload.ToHTTPError())
		return
	}

	transacao, err := h.usecase.Atualizar(c.Request.Context(), c.Param("empresa_id"), c.Param("transacao_id"), payload.ToUpdate())
	if err != nil {
		appErr := mapFinancasError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransacao(transacao))
}

func (h *FinancasHandler) Deletar(c *gin.Context) {
	if err := h.usecase.Deletar(c.Request.Context(), c.Param("empresa_id"), c.Param("transacao_id")); err != nil {
		appErr := mapFinancasError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *FinancasHandler) Resumo(c *gin.Context) {
	resumo, err := h.usecase.Resumo(c.Request.Context(), c.Param("empresa_id"))
	if err != nil {
		appErr := mapFinancasError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromResumoFinanceiro(resumo))
}

func mapFinancasError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmpresaID),
		errors.Is(err, usecase.ErrInvalidTransacaoID),
		errors.Is(err, usecase.ErrInvalidTransacaoTipo),
		errors.Is(err, usecase.ErrInvalidTransacaoVal):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransacaoNotFound):
		return pkg.NewDomainErrorSimple("TRANSACAO_NOT_FOUND", "Transação not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPedidoNotFound):
		return pkg.NewDomainErrorSimple("PEDIDO_NOT_FOUND", "Linked pedido not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOSNotFound):
		return pkg.NewDomainErrorSimple("OS_NOT_FOUND", "Linked ordem de serviço not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
