package response

import (
	"time"

	"informatica_xpto/internal/domain/entities"
)

type PagamentoResponse struct {
	ID       string    `json:"id"`
	PedidoID string    `json:"pedido_id"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromPagamento(p entities.Pagamento) PagamentoResponse {
	return PagamentoResponse{
		ID:           p.ID,
		PedidoID:     p.PedidoID,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}
