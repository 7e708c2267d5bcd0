package response

import (
	"testing"
	"time"

	"informatica_xpto/internal/domain/entities"
	"informatica_xpto/internal/usecase"
)

func TestFromPedido(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Pedido{
		ID:         "ped-1",
		EmpresaID:  "emp-1",
		ClientName: "Maria",
		Components: []entities.ComponentLine{
			{ID: "cpu-1", Name: "Ryzen 5 5600", Price: 800, Qty: 1},
		},
		CostPrice:       800,
		Total:           1000,
		ValorFinal:      1500,
		Status:          entities.PedidoStatusEntregues,
		DataCriacao:     now,
		DataAtualizacao: now,
		DataEntrega:     now,
	}

	res := FromPedido(p)
	if res.ID != "ped-1" || res.ClientName != "Maria" || res.Status != "Entregues" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.Components) != 1 || res.Components[0].ID != "cpu-1" {
		t.Fatalf("unexpected components: %+v", res.Components)
	}
	if res.ValorFinal != 1500 || res.Total != 1000 {
		t.Fatalf("unexpected values: %+v", res)
	}
	if res.DataEntrega == nil || !res.DataEntrega.Equal(now) {
		t.Fatalf("unexpected delivery date: %+v", res.DataEntrega)
	}
}

func TestFromPedidoOmitsZeroDeliveryDate(t *testing.T) {
	res := FromPedido(entities.Pedido{ID: "ped-1", Status: entities.PedidoStatusPendente})
	if res.DataEntrega != nil {
		t.Fatalf("undelivered pedido must not carry a delivery date: %+v", res.DataEntrega)
	}
}

func TestFromReconcileResult(t *testing.T) {
	res := FromReconcileResult(usecase.ReconcileResult{
		Status:        entities.PedidoStatusEnviados,
		StockAdjusted: true,
	})
	if res.Status != "Enviados" || !res.StockAdjusted || res.Posted {
		t.Fatalf("unexpected mapping: %+v", res)
	}
}
