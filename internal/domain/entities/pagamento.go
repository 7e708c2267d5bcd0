package entities

import (
	"encoding/json"
	"time"
)

// PagamentoStatus represents the payment processing outcome.

type PagamentoStatus string

const (
	PagamentoStatusPendente PagamentoStatus = "pendente"
	PagamentoStatusAprovado PagamentoStatus = "aprovado"
	PagamentoStatusNegado   PagamentoStatus = "negado"
)

// Pagamento is a provider payment registered against a delivered pedido.
//
// Storage model:
//   - PK: empresa_id (tenant), SK: id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - MPPayload is an optional parsed representation, useful for debugging.
type Pagamento struct {
	ID        string          `json:"id"`
	EmpresaID string          `json:"empresa_id"`
	PedidoID  string          `json:"pedido_id"`
	Date      time.Time       `json:"date"`
	Status    PagamentoStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
