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

var errInvalidOSPayload = pkg.NewDomainErrorSimple("INVALID_OS_INPUT", "Invalid ordem de serviço payload", http.StatusBadRequest)

// OrdemServicoHandler handles HTTP requests for repair tickets.

type OrdemServicoHandler struct {
	usecase   usecase.IOrdemServicoUseCase
	reconcile usecase.IReconcileUseCase
}

func NewOrdemServicoHandler(uc usecase.IOrdemServicoUseCase, reconcile usecase.IReconcileUseCase) *OrdemServicoHandler {
	return &OrdemServicoHandler{usecase: uc, reconcile: reconcile}
}

func (h *OrdemServicoHandler) Create(c *gin.Context) {
	var payload request.OrdemServicoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
		return
	}

	os, err := h.usecase.Create(c.Request.Context(), c.Param("empresa_id"), payload.ToEntity())
	if err != nil {
		appErr := mapOrdemServicoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrdemServico(os))
}

func (h *OrdemServicoHandler) GetByID(c *gin.Context) {
	os, err := h.usecase.GetByID(c.Request.Context(), c.Param("empresa_id"), c.Param("os_id"))
	if err != nil {
		appErr := mapOrdemServicoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrdemServico(os))
}

func (h *OrdemServicoHandler) List(c *gin.Context) {
	ordens, err := h.usecase.List(c.Request.Context(), c.Param("empresa_id"))
	if err != nil {
		appErr := mapOrdemServicoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrdensServico(ordens))
}

func (h *OrdemServicoHandler) Update(c *gin.Context) {
	var payload request.OrdemServicoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
		return
	}

	os, err := h.usecase.Update(c.Request.Context(), c.Param("empresa_id"), c.Param("os_id"), payload.ToEntity())
	if err != nil {
		appErr := mapOrdemServicoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrdemServico(os))
}

// ChangeStatus drives the finance reconciliation for one repair ticket. The
// first transition into Entregue/Pago requires a positive final value and
// posts the service revenue.
func (h *OrdemServicoHandler) ChangeStatus(c *gin.Context) {
	osID := c.Param("os_id")
	var payload request.StatusChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
		return
	}
	log.Printf("[os][handler] status change start os_id=%s new_status=%s", osID, payload.Status)

	os, posted, err := h.reconcile.ReconcileOS(c.Request.Context(), c.Param("empresa_id"), osID, entities.OSStatus(payload.Status), payload.ValorFinal)
	if err != nil {
		log.Printf("[os][handler] status change failed os_id=%s err=%v", osID, err)
		appErr := mapOrdemServicoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[os][handler] status change success os_id=%s status=%s posted=%t", osID, os.Status, posted)

	c.JSON(http.StatusOK, response.FromOrdemServico(os))
}

func (h *OrdemServicoHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("empresa_id"), c.Param("os_id")); err != nil {
		appErr := mapOrdemServicoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapOrdemServicoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmpresaID), errors.Is(err, usecase.ErrInvalidOSID), errors.Is(err, usecase.ErrInvalidOSInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOSNotFound):
		return pkg.NewDomainErrorSimple("OS_NOT_FOUND", "Ordem de serviço not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Invalid status transition", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidFinalValue):
		return pkg.NewDomainErrorSimple("INVALID_FINAL_VALUE", "A positive final value is required to finalize", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Concurrent update, retry the operation", http.StatusConflict)
	case errors.Is(err, usecase.ErrPartialSuccess):
		return pkg.NewDomainError("PARTIAL_SUCCESS", "Status updated but the financial posting failed; retry the posting", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
