package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"informatica_xpto/internal/domain/entities"
	"informatica_xpto/internal/usecase/interfaces"
)

var (
	ErrPagamentoNotFound  = errors.New("pagamento not found")
	ErrInvalidMPPayload   = errors.New("invalid mercado pago payload")
	ErrPedidoNotDelivered = errors.New("pedido not delivered")
)

// IPagamentoUseCase registers a provider payment for a delivered pedido.
//
// The charged amount is always the pedido's valor_final; the caller payload
// only carries payment method and payer data.

type IPagamentoUseCase interface {
	CreateAndApprove(ctx context.Context, empresaID, pedidoID string, mpPayload json.RawMessage) (entities.Pagamento, error)
	GetByID(ctx context.Context, empresaID, id string) (entities.Pagamento, error)
	ListByPedidoID(ctx context.Context, empresaID, pedidoID string) ([]entities.Pagamento, error)
}

type PagamentoUseCase struct {
	repo    interfaces.IPagamentoRepository
	pedidos interfaces.IPedidoRepository
	gateway interfaces.IPaymentGateway
}

var _ IPagamentoUseCase = (*PagamentoUseCase)(nil)

func NewPagamentoUseCase(repo interfaces.IPagamentoRepository, pedidos interfaces.IPedidoRepository, gateway interfaces.IPaymentGateway) *PagamentoUseCase {
	return &PagamentoUseCase{repo: repo, pedidos: pedidos, gateway: gateway}
}

func (u *PagamentoUseCase) CreateAndApprove(ctx context.Context, empresaID, pedidoID string, mpPayload json.RawMessage) (entities.Pagamento, error) {
	log.Printf("[pagamento][usecase] create-and-approve start pedido_id=%q payload_len=%d", pedidoID, len(mpPayload))
	mockMode := isPaymentGatewayMockEnabled()
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return entities.Pagamento{}, ErrInvalidEmpresaID
	}
	pedidoID = strings.TrimSpace(pedidoID)
	if pedidoID == "" {
		return entities.Pagamento{}, ErrInvalidPedidoID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[pagamento][usecase] invalid payload pedido_id=%s", pedidoID)
			return entities.Pagamento{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Printf("[pagamento][usecase] gateway not configured pedido_id=%s", pedidoID)
		return entities.Pagamento{}, errors.New("payment gateway not configured")
	}

	p, err := u.pedidos.GetByID(ctx, empresaID, pedidoID)
	if err != nil {
		return entities.Pagamento{}, err
	}
	if p.ID == "" {
		return entities.Pagamento{}, ErrPedidoNotFound
	}
	if !mockMode && (p.Status != entities.PedidoStatusEntregues || !p.Finalized()) {
		log.Printf("[pagamento][usecase] pedido not delivered pedido_id=%s status=%s", pedidoID, p.Status)
		return entities.Pagamento{}, ErrPedidoNotDelivered
	}

	// The source of truth for the amount is the pedido's finalized value.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = pedidoID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Pedido %s", shortID(pedidoID, 6))
		}
		reqMap["transaction_amount"] = p.ValorFinal
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		log.Printf("[pagamento][usecase] payment gateway failed pedido_id=%s err=%v", pedidoID, err)
		return entities.Pagamento{}, err
	}
	log.Printf("[pagamento][usecase] payment gateway success pedido_id=%s provider_payment_id=%s provider_status=%s", pedidoID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[pagamento][usecase] provider response unmarshal failed pedido_id=%s err=%v", pedidoID, err)
	}

	pg := entities.Pagamento{
		ID:           providerPaymentID,
		EmpresaID:    empresaID,
		PedidoID:     pedidoID,
		Date:         time.Now().UTC(),
		Status:       entities.PagamentoStatusAprovado,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, pg)
	if err != nil {
		log.Printf("[pagamento][usecase] pagamento repository create failed pedido_id=%s pagamento_id=%s err=%v", pedidoID, pg.ID, err)
		return entities.Pagamento{}, err
	}
	return created, nil
}

func (u *PagamentoUseCase) GetByID(ctx context.Context, empresaID, id string) (entities.Pagamento, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return entities.Pagamento{}, ErrInvalidEmpresaID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Pagamento{}, ErrPagamentoNotFound
	}

	pg, err := u.repo.GetByID(ctx, empresaID, id)
	if err != nil {
		return entities.Pagamento{}, err
	}
	if pg.ID == "" {
		return entities.Pagamento{}, ErrPagamentoNotFound
	}
	return pg, nil
}

func (u *PagamentoUseCase) ListByPedidoID(ctx context.Context, empresaID, pedidoID string) ([]entities.Pagamento, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return nil, ErrInvalidEmpresaID
	}
	pedidoID = strings.TrimSpace(pedidoID)
	if pedidoID == "" {
		return nil, ErrInvalidPedidoID
	}
	return u.repo.ListByPedidoID(ctx, empresaID, pedidoID)
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
