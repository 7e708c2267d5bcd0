package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	response "informatica_xpto/internal/adapter/http/dto/response"
	"informatica_xpto/internal/usecase"
	"informatica_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// PagamentoHandler handles HTTP requests for pedido payments.

type PagamentoHandler struct {
	usecase usecase.IPagamentoUseCase
}

func NewPagamentoHandler(uc usecase.IPagamentoUseCase) *PagamentoHandler {
	return &PagamentoHandler{usecase: uc}
}

// CreateByPedidoID charges a delivered pedido using pedido_id in path.
func (h *PagamentoHandler) CreateByPedidoID(c *gin.Context) {
	pedidoID := c.Param("pedido_id")
	log.Printf("[pagamento][handler] create start pedido_id=%s", pedidoID)
	mockMode := isPaymentGatewayMockEnabled()
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[pagamento][handler] payload invalid in mock mode; fallback to empty payload pedido_id=%s err=%v", pedidoID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[pagamento][handler] invalid payload pedido_id=%s err=%v", pedidoID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), c.Param("empresa_id"), pedidoID, mpPayload)
	if err != nil {
		log.Printf("[pagamento][handler] create failed pedido_id=%s err=%v", pedidoID, err)
		appErr := mapPagamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[pagamento][handler] create success pedido_id=%s pagamento_id=%s status=%s", pedidoID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromPagamento(created))
}

// GetByPedidoID returns the latest payment for a pedido.
func (h *PagamentoHandler) GetByPedidoID(c *gin.Context) {
	pedidoID := c.Param("pedido_id")

	pagamentos, err := h.usecase.ListByPedidoID(c.Request.Context(), c.Param("empresa_id"), pedidoID)
	if err != nil {
		appErr := mapPagamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(pagamentos) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAGAMENTO_NOT_FOUND", "Pagamento not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := pagamentos[0]
	for _, p := range pagamentos[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromPagamento(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPagamentoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmpresaID), errors.Is(err, usecase.ErrInvalidPedidoID), errors.Is(err, usecase.ErrInvalidMPPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPedidoNotFound):
		return pkg.NewDomainErrorSimple("PEDIDO_NOT_FOUND", "Pedido not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPedidoNotDelivered):
		return pkg.NewDomainErrorSimple("PEDIDO_NOT_DELIVERED", "Pedido must be delivered with a final value before charging", http.StatusConflict)
	case errors.Is(err, usecase.ErrPagamentoNotFound):
		return pkg.NewDomainErrorSimple("PAGAMENTO_NOT_FOUND", "Pagamento not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
