package request

import "encoding/json"

// PagamentoCreateRequest is the payload for charging a delivered pedido.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago
// schemas.
type PagamentoCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
