package request

import (
	"informatica_xpto/internal/domain/entities"
	"informatica_xpto/internal/usecase"
)

// QuoteBuildRequest asks for the pricing of a candidate build by inventory
// item ids.
type QuoteBuildRequest struct {
	ComponentIDs []string `json:"component_ids" binding:"required"`
	ProfitMargin float64  `json:"profit_margin"`
}

// SalvarPCMontadoRequest assembles a PC from stock, consuming one unit of
// each referenced component.
type SalvarPCMontadoRequest struct {
	Name         string   `json:"name" binding:"required"`
	ComponentIDs []string `json:"component_ids" binding:"required"`
	ProfitMargin float64  `json:"profit_margin"`
}

// FinalizarPedidoRequest turns a quoted build into a Pendente sales order.
type FinalizarPedidoRequest struct {
	ClienteID    string                 `json:"cliente_id"`
	ClientName   string                 `json:"client_name" binding:"required"`
	Notes        string                 `json:"notes"`
	Components   []ComponentLineRequest `json:"components" binding:"required"`
	CostPrice    float64                `json:"cost_price"`
	ProfitMargin float64                `json:"profit_margin"`
}

func (r FinalizarPedidoRequest) ToInput() usecase.FinalizarPedidoInput {
	components := make([]entities.ComponentLine, 0, len(r.Components))
	for _, c := range r.Components {
		components = append(components, c.ToEntity())
	}
	return usecase.FinalizarPedidoInput{
		ClienteID:    r.ClienteID,
		ClientName:   r.ClientName,
		Notes:        r.Notes,
		Components:   components,
		CostPrice:    r.CostPrice,
		ProfitMargin: r.ProfitMargin,
	}
}
