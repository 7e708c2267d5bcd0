package entities

import "time"

// PedidoStatus represents the lifecycle of a sales order (pedido).
//
// Domain notes:
//   - Status values are the Portuguese labels shown to the operator.
//   - Cancelado is terminal: no transition leaves it.
//   - Entregues is terminal for stock purposes only; the record stays
//     readable and may still be cancelled (stock is credited back).

type PedidoStatus string

const (
	PedidoStatusPendente    PedidoStatus = "Pendente"
	PedidoStatusProcessando PedidoStatus = "Processando"
	PedidoStatusEnviados    PedidoStatus = "Enviados"
	PedidoStatusEntregues   PedidoStatus = "Entregues"
	PedidoStatusCancelado   PedidoStatus = "Cancelado"
)

// PedidoStatuses lists every valid pedido status.
var PedidoStatuses = []PedidoStatus{
	PedidoStatusPendente,
	PedidoStatusProcessando,
	PedidoStatusEnviados,
	PedidoStatusEntregues,
	PedidoStatusCancelado,
}

func (s PedidoStatus) Valid() bool {
	for _, v := range PedidoStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Consuming reports whether inventory is considered spent at this status.
// The consuming set is {Enviados, Entregues}.
func (s PedidoStatus) Consuming() bool {
	return s == PedidoStatusEnviados || s == PedidoStatusEntregues
}

// StockMultiplier computes the inventory effect of a status transition.
//
// The effect depends only on consuming-set membership, never on the path:
//   - entering the set  -> -1 (debit: stock leaves)
//   - leaving the set   -> +1 (credit: stock returns)
//   - no membership change -> 0
func StockMultiplier(old, new PedidoStatus) int {
	was := old.Consuming()
	is := new.Consuming()
	switch {
	case is && !was:
		return -1
	case was && !is:
		return 1
	default:
		return 0
	}
}

// ComponentLine is one inventory reference inside a pedido. Relationships are
// by id only; the snapshot of name/price is kept for display even if the
// inventory item is later edited.
type ComponentLine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	SKU      string  `json:"sku,omitempty"`
	Price    float64 `json:"price"`
	Qty      float64 `json:"qty"`
}

// Pedido is the sales order persisted in DynamoDB.
//
// Storage model:
//   - PK: empresa_id (tenant), SK: id
//
// Monetary representation:
//   - Total is the estimated sale value from the quote.
//   - ValorFinal is the agreed sale amount, set on the first transition into
//     Entregues and pushed back by linked revenue edits.
type Pedido struct {
	ID              string          `json:"id"`
	EmpresaID       string          `json:"empresa_id"`
	ClienteID       string          `json:"cliente_id,omitempty"`
	ClientName      string          `json:"client_name"`
	Components      []ComponentLine `json:"components"`
	CostPrice       float64         `json:"cost_price"`
	Total           float64         `json:"total"`
	ValorFinal      float64         `json:"valor_final"`
	ProfitMargin    float64         `json:"profit_margin"`
	Status          PedidoStatus    `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	DataCriacao     time.Time       `json:"data_criacao"`
	DataAtualizacao time.Time       `json:"data_atualizacao"`
	DataEntrega     time.Time       `json:"data_entrega"`
}

// Finalized reports whether the pedido already carries an agreed sale value.
// Revenue is posted only on the first finalization.
func (p Pedido) Finalized() bool {
	return p.ValorFinal > 0
}
