package request

import "informatica_xpto/internal/domain/entities"

// ComponentLineRequest is one inventory reference inside a pedido payload.
type ComponentLineRequest struct {
	ID       string  `json:"id" binding:"required"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	SKU      string  `json:"sku"`
	Price    float64 `json:"price"`
	Qty      float64 `json:"qty"`
}

func (r ComponentLineRequest) ToEntity() entities.ComponentLine {
	return entities.ComponentLine{
		ID:       r.ID,
		Name:     r.Name,
		Category: r.Category,
		SKU:      r.SKU,
		Price:    r.Price,
		Qty:      r.Qty,
	}
}

// PedidoRequest is the payload for creating or updating a sales order. Status
// is optional on create; when present and different from Pendente the order
// is reconciled into it right after creation.
type PedidoRequest struct {
	ClienteID    string                 `json:"cliente_id"`
	ClientName   string                 `json:"client_name" binding:"required"`
	Components   []ComponentLineRequest `json:"components"`
	CostPrice    float64                `json:"cost_price"`
	Total        float64                `json:"total"`
	ProfitMargin float64                `json:"profit_margin"`
	Status       string                 `json:"status"`
	Notes        string                 `json:"notes"`
}

func (r PedidoRequest) ToEntity() entities.Pedido {
	components := make([]entities.ComponentLine, 0, len(r.Components))
	for _, c := range r.Components {
		components = append(components, c.ToEntity())
	}
	return entities.Pedido{
		ClienteID:    r.ClienteID,
		ClientName:   r.ClientName,
		Components:   components,
		CostPrice:    r.CostPrice,
		Total:        r.Total,
		ProfitMargin: r.ProfitMargin,
		Status:       entities.PedidoStatus(r.Status),
		Notes:        r.Notes,
	}
}

// StatusChangeRequest is the payload of the status PATCH routes. ValorFinal
// is required only on the first transition into the delivered status.
type StatusChangeRequest struct {
	Status     string   `json:"status" binding:"required"`
	ValorFinal *float64 `json:"valor_final"`
}
