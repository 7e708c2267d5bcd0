package response

import (
	"time"

	"informatica_xpto/internal/domain/entities"
	"informatica_xpto/internal/usecase"
)

type ComponentLineResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	SKU      string  `json:"sku,omitempty"`
	Price    float64 `json:"price"`
	Qty      float64 `json:"qty"`
}

type PedidoResponse struct {
	ID              string                  `json:"id"`
	ClienteID       string                  `json:"cliente_id,omitempty"`
	ClientName      string                  `json:"client_name"`
	Components      []ComponentLineResponse `json:"components"`
	CostPrice       float64                 `json:"cost_price"`
	Total           float64                 `json:"total"`
	ValorFinal      float64                 `json:"valor_final"`
	ProfitMargin    float64                 `json:"profit_margin"`
	Status          string                  `json:"status"`
	Notes           string                  `json:"notes,omitempty"`
	DataCriacao     time.Time               `json:"data_criacao"`
	DataAtualizacao time.Time               `json:"data_atualizacao"`
	DataEntrega     *time.Time              `json:"data_entrega,omitempty"`
}

func FromPedido(p entities.Pedido) PedidoResponse {
	components := make([]ComponentLineResponse, 0, len(p.Components))
	for _, c := range p.Components {
		components = append(components, ComponentLineResponse{
			ID:       c.ID,
			Name:     c.Name,
			Category: c.Category,
			SKU:      c.SKU,
			Price:    c.Price,
			Qty:      c.Qty,
		})
	}
	res := PedidoResponse{
		ID:              p.ID,
		ClienteID:       p.ClienteID,
		ClientName:      p.ClientName,
		Components:      components,
		CostPrice:       p.CostPrice,
		Total:           p.Total,
		ValorFinal:      p.ValorFinal,
		ProfitMargin:    p.ProfitMargin,
		Status:          string(p.Status),
		Notes:           p.Notes,
		DataCriacao:     p.DataCriacao,
		DataAtualizacao: p.DataAtualizacao,
	}
	if !p.DataEntrega.IsZero() {
		entrega := p.DataEntrega
		res.DataEntrega = &entrega
	}
	return res
}

func FromPedidos(pedidos []entities.Pedido) []PedidoResponse {
	out := make([]PedidoResponse, 0, len(pedidos))
	for _, p := range pedidos {
		out = append(out, FromPedido(p))
	}
	return out
}

// ReconcileResponse reports the outcome of a status change.
type ReconcileResponse struct {
	Status        string `json:"status"`
	StockAdjusted bool   `json:"stock_adjusted"`
	Posted        bool   `json:"posted"`
}

func FromReconcileResult(r usecase.ReconcileResult) ReconcileResponse {
	return ReconcileResponse{
		Status:        string(r.Status),
		StockAdjusted: r.StockAdjusted,
		Posted:        r.Posted,
	}
}
